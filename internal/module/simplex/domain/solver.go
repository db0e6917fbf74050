package domain

import "math"

// Solve runs the tabular two-phase simplex method on p. Shape violations
// return an error before any pivot work; infeasible, unbounded and
// iteration-capped problems are terminal states carried in the Result, not
// errors. A solve is a pure computation on owned memory: the returned
// snapshots are value copies and no state is shared between calls.
func Solve(p *Problem) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sf := standardize(p)
	history := make([]Snapshot, 0, 8)

	var t *tableau
	phase, offset := 0, 0

	if sf.needsPhase1 {
		t1 := newPhase1Tableau(sf)

		status, snaps := t1.run(1, 0)
		history = append(history, snaps...)
		if status != StatusOptimal {
			return &Result{Status: status, Tableaux: history}, nil
		}

		// Artificials that could not be driven to zero mean no feasible
		// basis exists.
		if math.Abs(t1.objectiveValue()) > tolerance {
			return &Result{Status: StatusInfeasible, Tableaux: history}, nil
		}

		t = newPhase2Tableau(t1, sf)
		phase = 2
		offset = len(history)
	} else {
		t = newSinglePhaseTableau(sf)
	}

	status, snaps := t.run(phase, offset)
	history = append(history, snaps...)
	if status != StatusOptimal {
		return &Result{Status: status, Tableaux: history}, nil
	}

	return &Result{
		Status:   StatusOptimal,
		Tableaux: history,
		Solution: extractSolution(t, p.Sense),
	}, nil
}

// newPhase1Tableau assembles the feasibility tableau: the standardized body
// with an objective minimizing the sum of artificials, canonicalized against
// the artificial starting basis so every initial basic variable has zero
// reduced cost.
func newPhase1Tableau(sf *standardForm) *tableau {
	m := len(sf.body)
	k := len(sf.varNames)

	rows := make([][]float64, m+1)
	for i := 0; i < m; i++ {
		rows[i] = make([]float64, k+1)
		copy(rows[i], sf.body[i])
		rows[i][k] = sf.rhs[i]
	}

	obj := make([]float64, k+1)
	for j, name := range sf.varNames {
		if isArtificial(name) {
			obj[j] = 1
		}
	}
	rows[m] = obj

	t := &tableau{
		rows:     rows,
		varNames: append([]string(nil), sf.varNames...),
		basis:    append([]string(nil), sf.basis...),
	}

	for i := 0; i < m; i++ {
		if isArtificial(t.basis[i]) {
			for j := range obj {
				obj[j] -= t.rows[i][j]
			}
		}
	}

	return t
}

// newPhase2Tableau carries the feasible basis of a finished Phase-1 tableau
// into the optimization phase: artificial columns are dropped wholesale, the
// true objective row is rebuilt, and the dictionary is re-canonicalized
// against every surviving basic variable. An artificial left basic at value
// zero keeps its row but loses its column; the degenerate basis must have
// its pivots elsewhere.
func newPhase2Tableau(t1 *tableau, sf *standardForm) *tableau {
	m := t1.numConstraints()

	keep := make([]int, 0, len(t1.varNames))
	varNames := make([]string, 0, len(t1.varNames))
	for j, name := range t1.varNames {
		if isArtificial(name) {
			continue
		}
		keep = append(keep, j)
		varNames = append(varNames, name)
	}

	k := len(varNames)
	rows := make([][]float64, m+1)
	for i := 0; i < m; i++ {
		rows[i] = make([]float64, k+1)
		for jj, j := range keep {
			rows[i][jj] = t1.rows[i][j]
		}
		rows[i][k] = t1.rows[i][len(t1.varNames)]
	}

	obj := make([]float64, k+1)
	for j := 0; j < sf.numDecision; j++ {
		obj[j] = -sf.c[j]
	}
	rows[m] = obj

	t := &tableau{
		rows:     rows,
		varNames: varNames,
		basis:    append([]string(nil), t1.basis...),
	}

	canonicalize(t)
	return t
}

// newSinglePhaseTableau builds the optimization tableau directly when no
// artificial variables were required. The slack starting basis already has
// zero reduced cost, so no canonicalization is needed.
func newSinglePhaseTableau(sf *standardForm) *tableau {
	m := len(sf.body)
	k := len(sf.varNames)

	rows := make([][]float64, m+1)
	for i := 0; i < m; i++ {
		rows[i] = make([]float64, k+1)
		copy(rows[i], sf.body[i])
		rows[i][k] = sf.rhs[i]
	}

	obj := make([]float64, k+1)
	for j := 0; j < sf.numDecision; j++ {
		obj[j] = -sf.c[j]
	}
	rows[m] = obj

	return &tableau{
		rows:     rows,
		varNames: append([]string(nil), sf.varNames...),
		basis:    append([]string(nil), sf.basis...),
	}
}

// canonicalize restores dictionary form: for every constraint row whose
// basic variable still owns a column, a non-zero reduced cost in that column
// is eliminated by subtracting the scaled row from the objective row.
func canonicalize(t *tableau) {
	m := t.numConstraints()
	obj := t.rows[m]

	for i := 0; i < m; i++ {
		col := columnIndex(t.varNames, t.basis[i])
		if col == -1 {
			continue
		}
		coef := obj[col]
		if math.Abs(coef) <= tolerance {
			continue
		}
		for j := range obj {
			obj[j] -= coef * t.rows[i][j]
		}
	}
}

func columnIndex(varNames []string, label string) int {
	for j, name := range varNames {
		if name == label {
			return j
		}
	}
	return -1
}

// extractSolution reads the optimum out of the final tableau: basic
// variables take their row's RHS value, every other decision and
// slack/surplus label is zero, and the objective sign is reverted for
// minimization problems.
func extractSolution(t *tableau, sense Sense) *Solution {
	objective := t.objectiveValue()
	if sense == Minimize {
		objective = -objective
	}

	vars := make(map[string]float64, len(t.varNames))
	for _, name := range t.varNames {
		if !isArtificial(name) {
			vars[name] = 0
		}
	}

	m := t.numConstraints()
	k := t.numVars()
	for i := 0; i < m; i++ {
		if _, ok := vars[t.basis[i]]; ok {
			vars[t.basis[i]] = roundTo(t.rows[i][k], displayPrecision)
		}
	}

	return &Solution{ObjectiveValue: objective, Variables: vars}
}
