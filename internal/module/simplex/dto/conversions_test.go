package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplexdss/internal/module/simplex/domain"
)

func TestSimplexRequest_ToProblem(t *testing.T) {
	req := &SimplexRequest{
		ProblemType: "minimization",
		C:           []float64{4, 1},
		LI:          [][]float64{{3, 1}, {4, 3}, {1, 2}},
		LD:          []float64{3, 6, 4},
		O:           []string{"=", ">=", "<="},
	}

	p, err := req.ToProblem()
	require.NoError(t, err)
	assert.Equal(t, domain.Minimize, p.Sense)
	assert.Equal(t, []domain.Operator{domain.Equal, domain.GreaterEqual, domain.LessEqual}, p.Ops)
	assert.Equal(t, req.C, p.C)
	assert.Equal(t, req.LD, p.B)
}

func TestSimplexRequest_ToProblem_BadInput(t *testing.T) {
	_, err := (&SimplexRequest{ProblemType: "maximize", C: []float64{1}}).ToProblem()
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = (&SimplexRequest{
		ProblemType: "maximization",
		C:           []float64{1},
		LI:          [][]float64{{1}},
		LD:          []float64{1},
		O:           []string{"=<"},
	}).ToProblem()
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFromResult_JSONShape(t *testing.T) {
	res, err := domain.Solve(&domain.Problem{
		Sense: domain.Maximize,
		C:     []float64{3, 5},
		A:     [][]float64{{1, 0}, {0, 2}, {3, 2}},
		B:     []float64{4, 12, 18},
		Ops:   []domain.Operator{domain.LessEqual, domain.LessEqual, domain.LessEqual},
	})
	require.NoError(t, err)

	resp := FromResult(res)
	assert.Equal(t, "optimo", resp.Status)
	require.NotNil(t, resp.Solucion)
	require.NotEmpty(t, resp.Tablas)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "status")
	assert.Contains(t, decoded, "tablas")
	assert.Contains(t, decoded, "solucion")

	tablas := decoded["tablas"].([]any)
	first := tablas[0].(map[string]any)
	assert.Equal(t, "Fase 0 - Iteración 1", first["titulo"])

	// Every fila leads with its basic-variable label; fila_obj with "Z".
	filas := first["filas"].([]any)
	row := filas[0].([]any)
	_, isString := row[0].(string)
	assert.True(t, isString)
	filaObj := first["fila_obj"].([]any)
	assert.Equal(t, "Z", filaObj[0])
}

func TestFromResult_NullSolutionSerializesAsNull(t *testing.T) {
	res, err := domain.Solve(&domain.Problem{
		Sense: domain.Maximize,
		C:     []float64{2, 3},
		A:     [][]float64{{1, -1}},
		B:     []float64{2},
		Ops:   []domain.Operator{domain.LessEqual},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusUnbounded, res.Status)

	raw, err := json.Marshal(FromResult(res))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "no acotado", decoded["status"])
	assert.Nil(t, decoded["solucion"])
}

func TestSolveResponse_RoundTrip(t *testing.T) {
	res, err := domain.Solve(&domain.Problem{
		Sense: domain.Minimize,
		C:     []float64{4, 1},
		A:     [][]float64{{3, 1}, {4, 3}, {1, 2}},
		B:     []float64{3, 6, 4},
		Ops:   []domain.Operator{domain.Equal, domain.GreaterEqual, domain.LessEqual},
	})
	require.NoError(t, err)

	resp := FromResult(res)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var parsed SolveResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))

	// Serializing the parsed structure again yields an equal JSON document.
	raw2, err := json.Marshal(&parsed)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(raw2))
	assert.Equal(t, resp.Status, parsed.Status)
	assert.Equal(t, len(resp.Tablas), len(parsed.Tablas))
	assert.InDelta(t, resp.Solucion.ValorOptimo, parsed.Solucion.ValorOptimo, 1e-9)
}
