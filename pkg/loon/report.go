package loon

import (
	"fmt"
	"sort"

	"github.com/loon-lang/loon/pkg/unionfind"
)

// Report maps each distinct variable name in an expression to its rendered
// type: "INT", "BOOL", or "GENERICS-<id>" where id is the variable's
// partition root. The expression's own type is deliberately not reported;
// only variables are surfaced.
type Report struct {
	order []string // first-appearance order, pre-order walk
	types map[string]string
}

func buildReport(root Node, uf *unionfind.Forest, count int) *Report {
	r := &Report{types: map[string]string{}}
	root.Walk(func(n Node) bool {
		v, ok := n.(*Var)
		if !ok {
			return true
		}
		if _, seen := r.types[v.Name]; seen {
			// Same name, same slot, same root. Nothing new.
			return true
		}
		r.order = append(r.order, v.Name)
		r.types[v.Name] = renderType(uf.Find(v.Slot()), count)
		return true
	})
	return r
}

func renderType(root, count int) string {
	switch root {
	case count:
		return TypeInt
	case count + 1:
		return TypeBool
	default:
		return fmt.Sprintf("GENERICS-%d", root)
	}
}

// Len returns the number of distinct variables reported.
func (r *Report) Len() int {
	return len(r.order)
}

// TypeOf returns the rendered type of the named variable.
func (r *Report) TypeOf(name string) (string, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Names returns the variable names, alphabetical when sorted is set,
// otherwise in first-appearance order.
func (r *Report) Names(sorted bool) []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	if sorted {
		sort.Strings(names)
	}
	return names
}

// Lines renders one "<name> :: <TYPE>" line per variable, ordered as Names.
func (r *Report) Lines(sorted bool) []string {
	names := r.Names(sorted)
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = name + " :: " + r.types[name]
	}
	return lines
}
