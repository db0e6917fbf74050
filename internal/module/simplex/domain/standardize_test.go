package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardize_ColumnOrderAndBasis(t *testing.T) {
	// One constraint of each kind, so every auxiliary namespace appears.
	p := &Problem{
		Sense: Maximize,
		C:     []float64{1, 2},
		A:     [][]float64{{1, 1}, {2, 1}, {1, 3}},
		B:     []float64{4, 6, 9},
		Ops:   []Operator{LessEqual, GreaterEqual, Equal},
	}
	require.NoError(t, p.Validate())

	sf := standardize(p)

	// Decision, slacks, surpluses, artificials — in that order.
	assert.Equal(t, []string{"x1", "x2", "s1", "e2", "a2", "a3"}, sf.varNames)
	assert.Equal(t, []string{"s1", "a2", "a3"}, sf.basis)
	assert.True(t, sf.needsPhase1)
	assert.Equal(t, 2, sf.numDecision)

	// Slack +1 in its row, surplus -1, artificials +1.
	assert.Equal(t, 1.0, sf.body[0][2])
	assert.Equal(t, -1.0, sf.body[1][3])
	assert.Equal(t, 1.0, sf.body[1][4])
	assert.Equal(t, 1.0, sf.body[2][5])

	// Auxiliary columns are zero outside their row.
	assert.Equal(t, 0.0, sf.body[1][2])
	assert.Equal(t, 0.0, sf.body[0][3])
	assert.Equal(t, 0.0, sf.body[2][4])
}

func TestStandardize_NegativeRHSFlipsRowAndOperator(t *testing.T) {
	p := &Problem{
		Sense: Maximize,
		C:     []float64{1, 1},
		A:     [][]float64{{-2, 3}},
		B:     []float64{-6},
		Ops:   []Operator{LessEqual},
	}

	sf := standardize(p)

	// Row negated, RHS positive, operator mirrored to >= so the row now
	// carries surplus and artificial columns.
	assert.Equal(t, []float64{6}, sf.rhs)
	assert.Equal(t, 2.0, sf.body[0][0])
	assert.Equal(t, -3.0, sf.body[0][1])
	assert.Equal(t, []string{"x1", "x2", "e1", "a1"}, sf.varNames)
	assert.Equal(t, "a1", sf.basis[0])
	assert.True(t, sf.needsPhase1)
}

func TestStandardize_MinimizationNegatesObjective(t *testing.T) {
	p := &Problem{
		Sense: Minimize,
		C:     []float64{4, -1},
		A:     [][]float64{{1, 1}},
		B:     []float64{2},
		Ops:   []Operator{LessEqual},
	}

	sf := standardize(p)

	assert.Equal(t, []float64{-4, 1}, sf.c)
	assert.False(t, sf.needsPhase1)
	assert.Equal(t, []string{"s1"}, sf.basis)

	// The input problem is untouched.
	assert.Equal(t, []float64{4, -1}, p.C)
}

func TestStandardize_ZeroRowGetsSlack(t *testing.T) {
	p := &Problem{
		Sense: Maximize,
		C:     []float64{1},
		A:     [][]float64{{0}},
		B:     []float64{0},
		Ops:   []Operator{LessEqual},
	}

	sf := standardize(p)
	assert.Equal(t, []string{"x1", "s1"}, sf.varNames)
	assert.Equal(t, "s1", sf.basis[0])
	assert.False(t, sf.needsPhase1)
}
