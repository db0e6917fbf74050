package domain

import "fmt"

const (
	// tolerance absorbs floating-point drift in the optimality,
	// column-positivity and feasibility-residual tests.
	tolerance = 1e-9

	// maxIterations bounds degenerate cycling. No Bland's rule: at the
	// problem sizes this engine targets a hard cap converts a potential
	// infinite loop into a reported terminal state.
	maxIterations = 50
)

// tableau is the dense working matrix of the engine: m constraint rows plus
// the objective row, each of length k+1 with the RHS in the final column.
// basis holds the label of the basic variable owning each constraint row.
type tableau struct {
	rows     [][]float64
	varNames []string
	basis    []string
}

func (t *tableau) numConstraints() int {
	return len(t.rows) - 1
}

func (t *tableau) numVars() int {
	return len(t.varNames)
}

// objectiveValue is the current value carried in the objective row's RHS cell.
func (t *tableau) objectiveValue() float64 {
	last := len(t.rows) - 1
	return t.rows[last][len(t.rows[last])-1]
}

// run executes pivot iterations until optimality, unboundedness or the
// iteration cap. A snapshot of the tableau is recorded at the top of every
// iteration, so the terminal tableau is included on optimality and
// unboundedness; when the cap is hit, the tableau after the last pivot is
// not recorded. phase and
// iterOffset only affect the snapshot titles: iteration numbers stay
// monotonic across both phases.
func (t *tableau) run(phase, iterOffset int) (Status, []Snapshot) {
	m := t.numConstraints()
	k := t.numVars()
	obj := t.rows[m]

	snapshots := make([]Snapshot, 0, 8)

	for iter := 1; iter <= maxIterations; iter++ {
		title := fmt.Sprintf("Fase %d - Iteración %d", phase, iter+iterOffset)
		snapshots = append(snapshots, t.snapshot(title))

		// Entering variable: most negative reduced cost, lowest column
		// index on ties. No candidate below -tolerance means optimal.
		pivotCol := -1
		best := -tolerance
		for j := 0; j < k; j++ {
			if obj[j] < best {
				best = obj[j]
				pivotCol = j
			}
		}
		if pivotCol == -1 {
			return StatusOptimal, snapshots
		}

		// Unbounded when the entering column cannot limit the increase.
		unbounded := true
		for i := 0; i < m; i++ {
			if t.rows[i][pivotCol] > tolerance {
				unbounded = false
				break
			}
		}
		if unbounded {
			return StatusUnbounded, snapshots
		}

		// Leaving variable: minimum ratio over rows with a positive pivot
		// column entry, lowest row index on ties.
		pivotRow := -1
		minRatio := 0.0
		for i := 0; i < m; i++ {
			v := t.rows[i][pivotCol]
			if v <= tolerance {
				continue
			}
			ratio := t.rows[i][k] / v
			if pivotRow == -1 || ratio < minRatio {
				minRatio = ratio
				pivotRow = i
			}
		}

		t.pivot(pivotRow, pivotCol)
	}

	return StatusIterationCap, snapshots
}

// pivot performs the Gauss-Jordan step that makes pivotCol the identity
// column of pivotRow and installs the entering variable in the basis.
func (t *tableau) pivot(pivotRow, pivotCol int) {
	t.basis[pivotRow] = t.varNames[pivotCol]

	pivotElem := t.rows[pivotRow][pivotCol]
	for j := range t.rows[pivotRow] {
		t.rows[pivotRow][j] /= pivotElem
	}

	for i := range t.rows {
		if i == pivotRow {
			continue
		}
		factor := t.rows[i][pivotCol]
		for j := range t.rows[i] {
			t.rows[i][j] -= factor * t.rows[pivotRow][j]
		}
	}
}
