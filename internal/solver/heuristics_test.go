package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbound/finbound/pkg/finbound"
	"github.com/finbound/finbound/pkg/finbound/constraint"
)

func TestSelectFirst(t *testing.T) {
	problem := buildProblem(t,
		[]finbound.Variable{"a", "b", "c"},
		map[finbound.Variable]finbound.Domain{
			"a": finbound.NewDomain(1),
			"b": finbound.NewDomain(1),
			"c": finbound.NewDomain(1),
		},
		nil, nil,
	)
	assignment := finbound.NewAssignment(problem)

	assert.Equal(t, finbound.Variable("a"), SelectFirst(assignment, problem))
	assignment.Assign("a", 1)
	assert.Equal(t, finbound.Variable("b"), SelectFirst(assignment, problem))
	assignment.Assign("c", 1)
	assert.Equal(t, finbound.Variable("b"), SelectFirst(assignment, problem))
}

func TestSelectMinimumRemaining(t *testing.T) {
	problem := buildProblem(t,
		[]finbound.Variable{"a", "b", "c"},
		map[finbound.Variable]finbound.Domain{
			"a": finbound.NewDomain(1, 2, 3),
			"b": finbound.NewDomain(1, 2),
			"c": finbound.NewDomain(1, 2, 3),
		},
		nil, nil,
	)
	assignment := finbound.NewAssignment(problem)

	assert.Equal(t, finbound.Variable("b"), SelectMinimumRemaining(assignment, problem))

	// once b is assigned, a and c tie on domain size and declaration order
	// decides in the absence of constraints
	assignment.Assign("b", 1)
	assert.Equal(t, finbound.Variable("a"), SelectMinimumRemaining(assignment, problem))
}

func TestSelectMinimumRemainingBreaksTiesByDegree(t *testing.T) {
	problem := buildProblem(t,
		[]finbound.Variable{"a", "b", "c"},
		map[finbound.Variable]finbound.Domain{
			"a": finbound.NewDomain(1, 2),
			"b": finbound.NewDomain(1, 2),
			"c": finbound.NewDomain(1, 2),
		},
		nil,
		[]finbound.BinaryConstraint{
			constraint.NotEqual("b", "a"),
			constraint.NotEqual("b", "c"),
		},
	)
	assignment := finbound.NewAssignment(problem)

	// all domains have size 2; b touches two constraints, a and c one each
	assert.Equal(t, finbound.Variable("b"), SelectMinimumRemaining(assignment, problem))
}

func TestOrderDomainReturnsWorkingDomain(t *testing.T) {
	problem := buildProblem(t,
		[]finbound.Variable{"a"},
		map[finbound.Variable]finbound.Domain{"a": finbound.NewDomain(1, 2, 3)},
		nil, nil,
	)
	assignment := finbound.NewAssignment(problem)
	assignment.Remove("a", 2)

	assert.ElementsMatch(t, []finbound.Value{1, 3}, OrderDomain(assignment, problem, "a"))
}

func TestOrderLeastConstraining(t *testing.T) {
	// x relates to y and z; fixing x=1 eliminates no neighbor choice,
	// x=2 eliminates one, x=3 eliminates two
	eliminates := constraint.Relation("x", "y", "at least", func(value1, value2 finbound.Value) bool {
		return value1.(int) >= value2.(int)
	})
	problem := buildProblem(t,
		[]finbound.Variable{"x", "y", "z"},
		map[finbound.Variable]finbound.Domain{
			"x": finbound.NewDomain(1, 2, 3),
			"y": finbound.NewDomain(1, 2),
			"z": finbound.NewDomain(1, 2, 3),
		},
		nil,
		[]finbound.BinaryConstraint{eliminates},
	)
	assignment := finbound.NewAssignment(problem)

	ordered := OrderLeastConstraining(assignment, problem, "x")
	assert.Equal(t, []finbound.Value{1, 2, 3}, ordered)
}
