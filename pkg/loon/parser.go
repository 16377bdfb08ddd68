package loon

// The grammar is LL(1): the parser eagerly consumes one token and that token
// alone determines the production. No backtracking.
//
//	<expr> := <identifier> | <integer> | <boolean>
//	        | ( + <expr> <expr> ) | ( - <expr> <expr> )
//	        | ( * <expr> <expr> ) | ( / <expr> <expr> )
//	        | ( < <expr> <expr> )
//	        | ( && <expr> <expr> ) | ( || <expr> <expr> )
//	        | ( ! <expr> )
//	        | ( if <expr> then <expr> else <expr> )
//	        | ( let <identifier> = <expr> in <expr> )

// Parse consumes the token sequence and returns the AST root. The first
// grammar mismatch aborts with a ParseError; no partial tree is returned.
func Parse(toks []Token) (Node, error) {
	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, &ParseError{Offset: tok.Pos, Msg: "unexpected " + tok.String() + " after expression"}
	}
	return root, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next(expected string) (Token, error) {
	tok, ok := p.peek()
	if !ok {
		return Token{}, &ParseError{Offset: -1, Msg: "expected " + expected}
	}
	p.pos++
	return tok, nil
}

func (p *parser) expectKeyword(text string) error {
	tok, err := p.next("keyword " + quote(text))
	if err != nil {
		return err
	}
	if !tok.IsKeyword(text) {
		return &ParseError{Offset: tok.Pos, Msg: "expected keyword " + quote(text) + ", got " + tok.String()}
	}
	return nil
}

func (p *parser) parseExpr() (Node, error) {
	tok, err := p.next("expression")
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenIdent:
		return NewVar(tok.Text), nil
	case TokenInt:
		return NewIntLit(tok.Int), nil
	case TokenBool:
		return NewBoolLit(tok.Bool), nil
	case TokenKeyword:
		if tok.Text == "(" {
			return p.parseForm()
		}
	}
	return nil, &ParseError{Offset: tok.Pos, Msg: "expected expression, got " + tok.String()}
}

// parseForm parses the remainder of a parenthesized form; the opening "("
// has already been consumed. The next token selects the production.
func (p *parser) parseForm() (Node, error) {
	tok, err := p.next("operator, \"if\", or \"let\"")
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenKeyword {
		return nil, &ParseError{Offset: tok.Pos, Msg: "expected operator, \"if\", or \"let\", got " + tok.String()}
	}

	switch tok.Text {
	case "+", "-", "*", "/", "<", "&&", "||":
		return p.parseBinary(tok.Text)
	case "!":
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword(")"); err != nil {
			return nil, err
		}
		return NewNot(operand), nil
	case "if":
		return p.parseIf()
	case "let":
		return p.parseLet()
	default:
		return nil, &ParseError{Offset: tok.Pos, Msg: "expected operator, \"if\", or \"let\", got " + tok.String()}
	}
}

func (p *parser) parseBinary(op string) (Node, error) {
	l, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	r, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(")"); err != nil {
		return nil, err
	}
	switch op {
	case "+":
		return NewAdd(l, r), nil
	case "-":
		return NewSub(l, r), nil
	case "*":
		return NewMul(l, r), nil
	case "/":
		return NewDiv(l, r), nil
	case "<":
		return NewLt(l, r), nil
	case "&&":
		return NewAnd(l, r), nil
	default: // "||"
		return NewOr(l, r), nil
	}
}

func (p *parser) parseIf() (Node, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("else"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(")"); err != nil {
		return nil, err
	}
	return NewIf(cond, then, els), nil
}

func (p *parser) parseLet() (Node, error) {
	head, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	v, ok := head.(*Var)
	if !ok {
		return nil, &ParseError{Offset: p.lastPos(), Msg: "\"let\" must bind a variable"}
	}
	if err := p.expectKeyword("="); err != nil {
		return nil, err
	}
	bound, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("in"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(")"); err != nil {
		return nil, err
	}
	return NewLet(v, bound, body), nil
}

// lastPos is the offset of the most recently consumed token, for errors
// about an expression that parsed but is the wrong shape.
func (p *parser) lastPos() int {
	if p.pos == 0 {
		return -1
	}
	return p.toks[p.pos-1].Pos
}

func quote(s string) string { return "\"" + s + "\"" }
