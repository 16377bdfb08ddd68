package loon

// Node is one syntactic construct. The set of implementations is closed
// (the thirteen types below); passes dispatch over it with exhaustive type
// switches. Nodes form a tree: every non-leaf owns its children exclusively,
// and nothing mutates a node after parsing except the single slot
// assignment.
type Node interface {
	// Slot returns the type slot assigned by AssignSlots, or -1 before
	// numbering has run.
	Slot() int

	setSlot(int)

	// Walk visits the node, then its children left to right, depth first.
	// fn returning false skips the node's children.
	Walk(fn func(Node) bool)
}

// slotHolder is embedded in every node to carry its type slot.
type slotHolder struct {
	slot int
}

func unassigned() slotHolder { return slotHolder{slot: -1} }

func (h *slotHolder) Slot() int { return h.slot }
func (h *slotHolder) setSlot(s int) { h.slot = s }

// Var is a variable reference. Variable identity is by name alone: the
// grammar has no scoping, so every occurrence of a name anywhere in the
// expression denotes the same variable.
type Var struct {
	slotHolder
	Name string
}

// IntLit is an integer literal.
type IntLit struct {
	slotHolder
	Value int
}

// BoolLit is a boolean literal.
type BoolLit struct {
	slotHolder
	Value bool
}

// Add is (+ a b).
type Add struct {
	slotHolder
	L, R Node
}

// Sub is (- a b).
type Sub struct {
	slotHolder
	L, R Node
}

// Mul is (* a b).
type Mul struct {
	slotHolder
	L, R Node
}

// Div is (/ a b).
type Div struct {
	slotHolder
	L, R Node
}

// Lt is (< a b).
type Lt struct {
	slotHolder
	L, R Node
}

// And is (&& a b).
type And struct {
	slotHolder
	L, R Node
}

// Or is (|| a b).
type Or struct {
	slotHolder
	L, R Node
}

// Not is (! a).
type Not struct {
	slotHolder
	Operand Node
}

// If is (if cond then a else b).
type If struct {
	slotHolder
	Cond, Then, Else Node
}

// Let is (let v = bound in body).
type Let struct {
	slotHolder
	Var         *Var
	Bound, Body Node
}

func NewVar(name string) *Var    { return &Var{slotHolder: unassigned(), Name: name} }
func NewIntLit(v int) *IntLit    { return &IntLit{slotHolder: unassigned(), Value: v} }
func NewBoolLit(v bool) *BoolLit { return &BoolLit{slotHolder: unassigned(), Value: v} }
func NewAdd(l, r Node) *Add      { return &Add{slotHolder: unassigned(), L: l, R: r} }
func NewSub(l, r Node) *Sub      { return &Sub{slotHolder: unassigned(), L: l, R: r} }
func NewMul(l, r Node) *Mul      { return &Mul{slotHolder: unassigned(), L: l, R: r} }
func NewDiv(l, r Node) *Div      { return &Div{slotHolder: unassigned(), L: l, R: r} }
func NewLt(l, r Node) *Lt        { return &Lt{slotHolder: unassigned(), L: l, R: r} }
func NewAnd(l, r Node) *And      { return &And{slotHolder: unassigned(), L: l, R: r} }
func NewOr(l, r Node) *Or        { return &Or{slotHolder: unassigned(), L: l, R: r} }
func NewNot(operand Node) *Not   { return &Not{slotHolder: unassigned(), Operand: operand} }

func NewIf(cond, then, els Node) *If {
	return &If{slotHolder: unassigned(), Cond: cond, Then: then, Else: els}
}

func NewLet(v *Var, bound, body Node) *Let {
	return &Let{slotHolder: unassigned(), Var: v, Bound: bound, Body: body}
}

func (n *Var) Walk(fn func(Node) bool) { fn(n) }
func (n *IntLit) Walk(fn func(Node) bool) { fn(n) }
func (n *BoolLit) Walk(fn func(Node) bool) { fn(n) }

func (n *Add) Walk(fn func(Node) bool) { walkBinary(n, n.L, n.R, fn) }
func (n *Sub) Walk(fn func(Node) bool) { walkBinary(n, n.L, n.R, fn) }
func (n *Mul) Walk(fn func(Node) bool) { walkBinary(n, n.L, n.R, fn) }
func (n *Div) Walk(fn func(Node) bool) { walkBinary(n, n.L, n.R, fn) }
func (n *Lt) Walk(fn func(Node) bool) { walkBinary(n, n.L, n.R, fn) }
func (n *And) Walk(fn func(Node) bool) { walkBinary(n, n.L, n.R, fn) }
func (n *Or) Walk(fn func(Node) bool) { walkBinary(n, n.L, n.R, fn) }

func (n *Not) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	n.Operand.Walk(fn)
}

func (n *If) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	n.Cond.Walk(fn)
	n.Then.Walk(fn)
	n.Else.Walk(fn)
}

func (n *Let) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	n.Var.Walk(fn)
	n.Bound.Walk(fn)
	n.Body.Walk(fn)
}

func walkBinary(n Node, l, r Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	l.Walk(fn)
	r.Walk(fn)
}
