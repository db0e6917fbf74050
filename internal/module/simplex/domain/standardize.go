package domain

import "fmt"

// Label namespaces for tableau columns. Decision labels carry the 1-based
// variable index; slack, surplus and artificial labels carry the 1-based row
// of the originating constraint.
const (
	decisionPrefix   = "x"
	slackPrefix      = "s"
	surplusPrefix    = "e"
	artificialPrefix = "a"
)

// standardForm is the canonical shape handed to the phase drivers: the
// constraint body with auxiliary columns appended, a non-negative RHS,
// the column labels, the initial basis, and whether artificials forced a
// Phase-1 pass. c carries the objective coefficients already negated for
// minimization so both phases can maximize uniformly.
type standardForm struct {
	body        [][]float64
	rhs         []float64
	varNames    []string
	basis       []string
	c           []float64
	numDecision int
	needsPhase1 bool
}

// standardize normalizes a validated problem: negative right-hand sides are
// flipped together with their operators, a slack column is added per "<="
// row, a surplus plus an artificial column per ">=" row, and an artificial
// column per "=" row. Columns are emitted in the fixed order decision,
// slacks, surpluses, artificials.
func standardize(p *Problem) *standardForm {
	n := len(p.C)
	m := len(p.B)

	a := make([][]float64, m)
	b := make([]float64, m)
	ops := make([]Operator, m)
	for i := range p.A {
		a[i] = append([]float64(nil), p.A[i]...)
		b[i] = p.B[i]
		ops[i] = p.Ops[i]
		if b[i] < 0 {
			for j := range a[i] {
				a[i][j] = -a[i][j]
			}
			b[i] = -b[i]
			ops[i] = ops[i].flip()
		}
	}

	c := append([]float64(nil), p.C...)
	if p.Sense == Minimize {
		for j := range c {
			c[j] = -c[j]
		}
	}

	numSlack, numSurplus, numArtificial := 0, 0, 0
	for _, op := range ops {
		switch op {
		case LessEqual:
			numSlack++
		case GreaterEqual:
			numSurplus++
			numArtificial++
		case Equal:
			numArtificial++
		}
	}

	k := n + numSlack + numSurplus + numArtificial
	body := make([][]float64, m)
	for i := range body {
		body[i] = make([]float64, k)
		copy(body[i], a[i])
	}

	varNames := make([]string, 0, k)
	for j := 0; j < n; j++ {
		varNames = append(varNames, fmt.Sprintf("%s%d", decisionPrefix, j+1))
	}

	slackNames := make([]string, 0, numSlack)
	surplusNames := make([]string, 0, numSurplus)
	artificialNames := make([]string, 0, numArtificial)

	basis := make([]string, m)
	slackCol := n
	surplusCol := n + numSlack
	artificialCol := n + numSlack + numSurplus

	for i, op := range ops {
		switch op {
		case LessEqual:
			name := fmt.Sprintf("%s%d", slackPrefix, i+1)
			slackNames = append(slackNames, name)
			body[i][slackCol] = 1
			basis[i] = name
			slackCol++
		case GreaterEqual:
			surplusNames = append(surplusNames, fmt.Sprintf("%s%d", surplusPrefix, i+1))
			body[i][surplusCol] = -1
			surplusCol++

			name := fmt.Sprintf("%s%d", artificialPrefix, i+1)
			artificialNames = append(artificialNames, name)
			body[i][artificialCol] = 1
			basis[i] = name
			artificialCol++
		case Equal:
			name := fmt.Sprintf("%s%d", artificialPrefix, i+1)
			artificialNames = append(artificialNames, name)
			body[i][artificialCol] = 1
			basis[i] = name
			artificialCol++
		}
	}

	varNames = append(varNames, slackNames...)
	varNames = append(varNames, surplusNames...)
	varNames = append(varNames, artificialNames...)

	return &standardForm{
		body:        body,
		rhs:         b,
		varNames:    varNames,
		basis:       basis,
		c:           c,
		numDecision: n,
		needsPhase1: numArtificial > 0,
	}
}

func isArtificial(label string) bool {
	return len(label) > 0 && label[:1] == artificialPrefix
}
