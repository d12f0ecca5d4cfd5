package solver_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbound/finbound/pkg/finbound"
	"github.com/finbound/finbound/pkg/finbound/constraint"
	"github.com/finbound/finbound/pkg/finbound/solver"
)

// cnfEncoder translates a binary CSP into propositional clauses over one
// literal per (variable, value) pair, so an independent SAT solver can
// confirm the engine's satisfiable/unsatisfiable verdicts.
type cnfEncoder struct {
	problem *finbound.Problem
	lits    map[finbound.Variable]map[finbound.Value]z.Lit
	next    uint32
}

func newCNFEncoder(problem *finbound.Problem) *cnfEncoder {
	e := &cnfEncoder{
		problem: problem,
		lits:    make(map[finbound.Variable]map[finbound.Value]z.Lit),
		next:    1,
	}
	for _, v := range problem.Variables() {
		e.lits[v] = make(map[finbound.Value]z.Lit)
		for _, value := range problem.Domain(v).Values() {
			e.lits[v][value] = z.Var(e.next).Pos()
			e.next++
		}
	}
	return e
}

func (e *cnfEncoder) addClauses(g *gini.Gini) {
	for _, v := range e.problem.Variables() {
		values := e.problem.Domain(v).Values()

		// each variable takes at least one of its values
		for _, value := range values {
			g.Add(e.lits[v][value])
		}
		g.Add(z.LitNull)

		// and at most one
		for i := 0; i < len(values); i++ {
			for j := i + 1; j < len(values); j++ {
				g.Add(e.lits[v][values[i]].Not())
				g.Add(e.lits[v][values[j]].Not())
				g.Add(z.LitNull)
			}
		}

		// unary rejections become unit clauses
		for _, c := range e.problem.UnaryConstraints() {
			if !c.Affects(v) {
				continue
			}
			for _, value := range values {
				if !c.IsSatisfied(value) {
					g.Add(e.lits[v][value].Not())
					g.Add(z.LitNull)
				}
			}
		}

		// forbidden pairings become binary clauses; every constraint is
		// visited from both endpoints, which only repeats clauses
		for _, c := range e.problem.BinaryConstraintsOn(v) {
			other := c.OtherVariable(v)
			for _, value := range values {
				for _, otherValue := range e.problem.Domain(other).Values() {
					if !c.IsSatisfied(value, otherValue) {
						g.Add(e.lits[v][value].Not())
						g.Add(e.lits[other][otherValue].Not())
						g.Add(z.LitNull)
					}
				}
			}
		}
	}
}

const (
	satisfiable   = 1
	unsatisfiable = -1
)

func randomProblem(t *testing.T, random *rand.Rand) *finbound.Problem {
	t.Helper()

	nVars := 3 + random.Intn(4)
	variables := make([]finbound.Variable, nVars)
	domains := make(map[finbound.Variable]finbound.Domain, nVars)
	for i := range variables {
		v := finbound.Variable(fmt.Sprintf("v%d", i))
		variables[i] = v
		nValues := 1 + random.Intn(4)
		values := make([]finbound.Value, nValues)
		for j := range values {
			values[j] = j
		}
		domains[v] = finbound.NewDomain(values...)
	}

	var unary []finbound.UnaryConstraint
	var binary []finbound.BinaryConstraint
	for i := 0; i < nVars; i++ {
		if random.Float64() < 0.2 {
			unary = append(unary, constraint.Forbid(variables[i], random.Intn(4)))
		}
		for j := i + 1; j < nVars; j++ {
			if random.Float64() < 0.5 {
				binary = append(binary, constraint.NotEqual(variables[i], variables[j]))
			}
		}
	}

	problem, err := finbound.NewProblem(variables, domains, unary, binary)
	require.NoError(t, err)
	return problem
}

func TestSolveAgreesWithSATSolver(t *testing.T) {
	random := rand.New(rand.NewSource(7)) //nolint:gosec // G404: deterministic instances, not security-sensitive.

	for i := 0; i < 64; i++ {
		problem := randomProblem(t, random)

		s, err := solver.New(solver.WithInference(solver.MaintainArcConsistency))
		require.NoError(t, err)
		solution, err := s.Solve(context.Background(), problem)

		g := gini.New()
		newCNFEncoder(problem).addClauses(g)
		verdict := g.Solve()

		switch verdict {
		case satisfiable:
			require.NoError(t, err, "instance %d: SAT solver found a model but the engine reported %v", i, err)
			for _, v := range problem.Variables() {
				value := solution.Value(v)
				assert.True(t, problem.Domain(v).Contains(value))
				for _, c := range problem.BinaryConstraintsOn(v) {
					assert.True(t, c.IsSatisfied(value, solution.Value(c.OtherVariable(v))),
						"instance %d: solution violates %s", i, c.String(v))
				}
			}
		case unsatisfiable:
			assert.True(t, finbound.IsNotSatisfiable(err),
				"instance %d: SAT solver proved unsatisfiability but the engine reported %v", i, err)
		default:
			t.Fatalf("instance %d: unexpected SAT solver verdict %d", i, verdict)
		}
	}
}
