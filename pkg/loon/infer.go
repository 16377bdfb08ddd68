package loon

import (
	"github.com/pkg/errors"

	"github.com/loon-lang/loon/pkg/unionfind"
)

// Rendered base type names.
const (
	TypeInt  = "INT"
	TypeBool = "BOOL"
)

// constraint equates two type slots.
type constraint struct {
	a, b int
}

// Infer numbers the tree, generates equality constraints from each node's
// typing rule, and solves them with a union-find over the slot domain. On
// success it returns the per-variable type report; an inconsistent
// constraint set returns a UnifyError.
func Infer(root Node) (*Report, error) {
	if root == nil {
		return nil, errors.New("cannot infer a nil expression")
	}

	count := AssignSlots(root)
	g := &constraintGen{intSlot: count, boolSlot: count + 1}
	g.generate(root)

	uf := unionfind.New(count + 2)
	for _, c := range g.cons {
		if err := g.unify(uf, c); err != nil {
			return nil, err
		}
	}

	return buildReport(root, uf, count), nil
}

// constraintGen accumulates constraints for one inference run. intSlot and
// boolSlot are the two reserved slots appended after the AST-derived ones;
// any slot below intSlot is a type variable.
type constraintGen struct {
	intSlot  int
	boolSlot int
	cons     []constraint
}

func (g *constraintGen) emit(a, b int) {
	g.cons = append(g.cons, constraint{a: a, b: b})
}

// generate walks the tree pre-order; each node's constraints are emitted
// before its children's. The order is fixed so that reported generic class
// ids are reproducible across runs.
func (g *constraintGen) generate(root Node) {
	root.Walk(func(n Node) bool {
		switch n := n.(type) {
		case *Var:
			// A variable constrains nothing by itself.
		case *IntLit:
			g.emit(n.Slot(), g.intSlot)
		case *BoolLit:
			g.emit(n.Slot(), g.boolSlot)
		case *Add:
			g.arith(n.Slot(), n.L, n.R)
		case *Sub:
			g.arith(n.Slot(), n.L, n.R)
		case *Mul:
			g.arith(n.Slot(), n.L, n.R)
		case *Div:
			g.arith(n.Slot(), n.L, n.R)
		case *Lt:
			g.emit(n.Slot(), g.boolSlot)
			g.emit(n.L.Slot(), g.intSlot)
			g.emit(n.R.Slot(), g.intSlot)
		case *And:
			g.logical(n.Slot(), n.L, n.R)
		case *Or:
			g.logical(n.Slot(), n.L, n.R)
		case *Not:
			g.emit(n.Slot(), g.boolSlot)
			g.emit(n.Operand.Slot(), g.boolSlot)
		case *If:
			g.emit(n.Slot(), n.Then.Slot())
			g.emit(n.Cond.Slot(), g.boolSlot)
			g.emit(n.Then.Slot(), n.Else.Slot())
		case *Let:
			g.emit(n.Slot(), n.Body.Slot())
			g.emit(n.Var.Slot(), n.Bound.Slot())
		}
		return true
	})
}

func (g *constraintGen) arith(s int, l, r Node) {
	g.emit(s, g.intSlot)
	g.emit(l.Slot(), g.intSlot)
	g.emit(r.Slot(), g.intSlot)
}

func (g *constraintGen) logical(s int, l, r Node) {
	g.emit(s, g.boolSlot)
	g.emit(l.Slot(), g.boolSlot)
	g.emit(r.Slot(), g.boolSlot)
}

func (g *constraintGen) isTypeVar(slot int) bool {
	return slot < g.intSlot
}

func (g *constraintGen) baseName(slot int) string {
	if slot == g.intSlot {
		return TypeInt
	}
	return TypeBool
}

// unify merges the two classes named by c. A type variable always joins
// into the other root, so a class anchored to a base type keeps that base
// slot as its root. Two distinct base-type roots cannot merge.
func (g *constraintGen) unify(uf *unionfind.Forest, c constraint) error {
	rx, ry := uf.Find(c.a), uf.Find(c.b)
	switch {
	case g.isTypeVar(rx):
		uf.Join(rx, ry)
	case g.isTypeVar(ry):
		uf.Join(ry, rx)
	case rx == ry:
		// Already the same base type.
	default:
		return &UnifyError{Left: g.baseName(rx), Right: g.baseName(ry)}
	}
	return nil
}
