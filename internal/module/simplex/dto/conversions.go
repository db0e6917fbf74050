package dto

import (
	"simplexdss/internal/module/simplex/domain"
)

// ToProblem converts the wire payload into the engine's input form.
// Operator and sense parsing errors surface as the engine's validation
// errors so the handler can map them to a 400.
func (r *SimplexRequest) ToProblem() (*domain.Problem, error) {
	sense, err := domain.ParseSense(r.ProblemType)
	if err != nil {
		return nil, err
	}

	ops := make([]domain.Operator, len(r.O))
	for i, op := range r.O {
		parsed, err := domain.ParseOperator(op)
		if err != nil {
			return nil, err
		}
		ops[i] = parsed
	}

	return &domain.Problem{
		Sense: sense,
		C:     r.C,
		A:     r.LI,
		B:     r.LD,
		Ops:   ops,
	}, nil
}

// FromResult renders an engine result into the external JSON shape.
func FromResult(res *domain.Result) *SolveResponse {
	out := &SolveResponse{
		Status: res.Status.String(),
		Tablas: make([]TableSnapshot, len(res.Tableaux)),
	}

	for i, snap := range res.Tableaux {
		out.Tablas[i] = fromSnapshot(snap)
	}

	if res.Solution != nil {
		out.Solucion = &SolutionBody{
			ValorOptimo: res.Solution.ObjectiveValue,
			Variables:   res.Solution.Variables,
		}
	}

	return out
}

func fromSnapshot(snap domain.Snapshot) TableSnapshot {
	filas := make([][]any, len(snap.Rows))
	for i, row := range snap.Rows {
		filas[i] = labelledRow(row)
	}

	return TableSnapshot{
		Titulo:  snap.Title,
		Headers: snap.Headers,
		Filas:   filas,
		FilaObj: labelledRow(snap.Objective),
	}
}

func labelledRow(row domain.SnapshotRow) []any {
	out := make([]any, 0, len(row.Values)+1)
	out = append(out, row.Label)
	for _, v := range row.Values {
		out = append(out, v)
	}
	return out
}
