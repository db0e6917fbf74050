package dto

// SimplexRequest is the solve payload. Field names mirror the established
// API contract: C is the objective, LI the constraint matrix, LD the
// right-hand sides and O the relational operators.
type SimplexRequest struct {
	ProblemType string      `json:"problem_type" binding:"required,oneof=minimization maximization"`
	C           []float64   `json:"C" binding:"required,min=1"`
	LI          [][]float64 `json:"LI" binding:"required,min=1"`
	LD          []float64   `json:"LD" binding:"required,min=1"`
	O           []string    `json:"O" binding:"required,min=1,dive,oneof=<= >= ="`
}

// BatchSolveRequest carries several independent problems to be solved
// concurrently.
type BatchSolveRequest struct {
	Problems []SimplexRequest `json:"problems" binding:"required,min=1,max=20,dive"`
}

// GraphRequest is the plotting payload: the same problem shape, restricted
// by the handler to exactly two decision variables.
type GraphRequest = SimplexRequest
