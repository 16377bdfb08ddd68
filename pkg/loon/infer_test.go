package loon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInfer(t *testing.T, source string) *Report {
	t.Helper()
	report, err := Infer(mustParse(t, source))
	require.NoError(t, err)
	return report
}

func inferErr(t *testing.T, source string) *UnifyError {
	t.Helper()
	_, err := Infer(mustParse(t, source))
	require.Error(t, err)

	var unifyErr *UnifyError
	require.ErrorAs(t, err, &unifyErr)
	return unifyErr
}

func typeOf(t *testing.T, report *Report, name string) string {
	t.Helper()
	typ, ok := report.TypeOf(name)
	require.True(t, ok, "variable %q missing from report", name)
	return typ
}

func TestInferLiteralRoundTrip(t *testing.T) {
	report := mustInfer(t, "(let x = 1 in x)")
	assert.Equal(t, 1, report.Len())
	assert.Equal(t, TypeInt, typeOf(t, report, "x"))
}

func TestInferBooleanCondition(t *testing.T) {
	// The condition position forces BOOL regardless of the branches.
	report := mustInfer(t, "(if x then 0 else 1)")
	assert.Equal(t, TypeBool, typeOf(t, report, "x"))
}

func TestInferClosedExpressions(t *testing.T) {
	// Well-typed variable-free expressions report nothing, at any depth.
	for _, source := range []string{
		"1",
		"true",
		"(- 1 2)",
		"(! (&& true (|| false true)))",
		"(if (< 1 2) then (* 3 4) else (/ 5 6))",
		"(if (< 1 2) then (if true then 1 else 2) else (+ 3 (- 4 (* 5 (/ 6 -7)))))",
	} {
		t.Run(source, func(t *testing.T) {
			report := mustInfer(t, source)
			assert.Equal(t, 0, report.Len())
		})
	}
}

func TestInferDeeplyBoundVariable(t *testing.T) {
	report := mustInfer(t, "(let k = (if true then 1 else (+ 2 (- 3 (* 4 (/ 5 -6))))) in 0)")
	assert.Equal(t, 1, report.Len())
	assert.Equal(t, TypeInt, typeOf(t, report, "k"))
}

func TestInferVariableSharing(t *testing.T) {
	// Every occurrence of a name resolves to one type.
	report := mustInfer(t, "(if (< x 1) then x else x)")
	assert.Equal(t, 1, report.Len())
	assert.Equal(t, TypeInt, typeOf(t, report, "x"))
}

func TestInferArithmeticForcesInt(t *testing.T) {
	for _, source := range []string{"(+ x y)", "(- x y)", "(* x y)", "(/ x y)"} {
		t.Run(source, func(t *testing.T) {
			report := mustInfer(t, source)
			assert.Equal(t, TypeInt, typeOf(t, report, "x"))
			assert.Equal(t, TypeInt, typeOf(t, report, "y"))
		})
	}
}

func TestInferComparisonForcesInt(t *testing.T) {
	report := mustInfer(t, "(< x y)")
	assert.Equal(t, TypeInt, typeOf(t, report, "x"))
	assert.Equal(t, TypeInt, typeOf(t, report, "y"))
}

func TestInferLogicalForcesBool(t *testing.T) {
	for _, source := range []string{"(&& x y)", "(|| x y)"} {
		t.Run(source, func(t *testing.T) {
			report := mustInfer(t, source)
			assert.Equal(t, TypeBool, typeOf(t, report, "x"))
			assert.Equal(t, TypeBool, typeOf(t, report, "y"))
		})
	}

	t.Run("(! x)", func(t *testing.T) {
		report := mustInfer(t, "(! x)")
		assert.Equal(t, TypeBool, typeOf(t, report, "x"))
	})
}

func TestInferGenericPropagation(t *testing.T) {
	// x and y share one generic class, z and w another, and the INT type of
	// the inner body leaks into neither.
	report := mustInfer(t, "(let x = y in (let z = w in 0))")
	require.Equal(t, 4, report.Len())

	xt := typeOf(t, report, "x")
	yt := typeOf(t, report, "y")
	zt := typeOf(t, report, "z")
	wt := typeOf(t, report, "w")

	for name, typ := range map[string]string{"x": xt, "y": yt, "z": zt, "w": wt} {
		assert.True(t, strings.HasPrefix(typ, "GENERICS-"), "%s should be generic, got %s", name, typ)
	}
	assert.Equal(t, xt, yt)
	assert.Equal(t, zt, wt)
	assert.NotEqual(t, xt, zt)
}

func TestInferGenericIDsAreStable(t *testing.T) {
	// Fixed traversal and emission order keeps partition roots, hence the
	// rendered class ids, identical across runs.
	first := mustInfer(t, "(let x = y in (let z = w in 0))")
	for i := 0; i < 10; i++ {
		again := mustInfer(t, "(let x = y in (let z = w in 0))")
		assert.Equal(t, first.Lines(true), again.Lines(true))
	}
}

func TestInferConflicts(t *testing.T) {
	t.Run("branch against condition literal", func(t *testing.T) {
		unifyErr := inferErr(t, "(if true then false else 0)")
		conflict := []string{unifyErr.Left, unifyErr.Right}
		assert.ElementsMatch(t, []string{TypeInt, TypeBool}, conflict)
	})

	t.Run("symmetric regardless of order", func(t *testing.T) {
		// INT forced onto BOOL and BOOL forced onto INT fail identically.
		a := inferErr(t, "(- true 1)")
		b := inferErr(t, "(&& 1 true)")
		assert.ElementsMatch(t,
			[]string{a.Left, a.Right},
			[]string{b.Left, b.Right})
	})

	t.Run("conflict through a variable", func(t *testing.T) {
		inferErr(t, "(let x = 1 in (&& x true))")
	})

	t.Run("conflict across branches", func(t *testing.T) {
		inferErr(t, "(if x then 1 else false)")
	})
}

func TestReportOrdering(t *testing.T) {
	report := mustInfer(t, "(- zed apple)")

	assert.Equal(t, []string{"zed", "apple"}, report.Names(false))
	assert.Equal(t, []string{"apple", "zed"}, report.Names(true))

	assert.Equal(t,
		[]string{"apple :: INT", "zed :: INT"},
		report.Lines(true))
	assert.Equal(t,
		[]string{"zed :: INT", "apple :: INT"},
		report.Lines(false))
}

func TestInferNil(t *testing.T) {
	_, err := Infer(nil)
	require.Error(t, err)
}
