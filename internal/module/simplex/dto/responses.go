package dto

// SolveResponse is the stable JSON shape consumed by the HTTP clients. The
// status literals "optimo", "infactible" and "no acotado" are part of the
// external contract and preserved bit-for-bit.
type SolveResponse struct {
	Status   string          `json:"status"`
	Tablas   []TableSnapshot `json:"tablas"`
	Solucion *SolutionBody   `json:"solucion"`
}

// TableSnapshot is one rendered tableau: constraint rows carry the basic
// variable label followed by the rounded values, the objective row is
// labelled "Z".
type TableSnapshot struct {
	Titulo  string   `json:"titulo"`
	Headers []string `json:"headers"`
	Filas   [][]any  `json:"filas"`
	FilaObj []any    `json:"fila_obj"`
}

// SolutionBody is present only for optimal solves.
type SolutionBody struct {
	ValorOptimo float64            `json:"valor_optimo"`
	Variables   map[string]float64 `json:"variables"`
}

// BatchSolveResponse preserves the order of the submitted problems.
type BatchSolveResponse struct {
	Results []SolveResponse `json:"results"`
}
