package solver

import (
	"context"
	"errors"
	"fmt"

	internal "github.com/finbound/finbound/internal/solver"
	"github.com/finbound/finbound/pkg/finbound"
)

// ErrIncomplete is returned when the context is cancelled before the search
// can either find a solution or prove that none exists.
var ErrIncomplete = errors.New("cancelled before a solution could be found")

// Solution is a complete variable-to-value mapping satisfying every
// constraint of the problem it was produced from.
type Solution map[finbound.Variable]finbound.Value

// Value returns the value the solution assigns to v.
func (s Solution) Value(v finbound.Variable) finbound.Value {
	return s[v]
}

// Variable-selection strategies.
var (
	// SelectFirstUnassigned picks the first unassigned variable in
	// declaration order.
	SelectFirstUnassigned finbound.SelectVariableFunc = internal.SelectFirst
	// SelectMinimumRemaining picks the unassigned variable with the
	// smallest working domain, ties broken by highest degree.
	SelectMinimumRemaining finbound.SelectVariableFunc = internal.SelectMinimumRemaining
)

// Value-ordering strategies.
var (
	// OrderDomainValues tries candidate values in domain iteration order.
	OrderDomainValues finbound.OrderValuesFunc = internal.OrderDomain
	// OrderLeastConstraining tries the value that eliminates the fewest
	// choices from neighboring domains first.
	OrderLeastConstraining finbound.OrderValuesFunc = internal.OrderLeastConstraining
)

// Propagation strategies. Passing nil to WithInference disables propagation
// entirely; consistency with already-assigned variables is still enforced.
var (
	// ForwardChecking prunes the domains of unassigned neighbors of each
	// fresh assignment, one hop only.
	ForwardChecking finbound.InferenceFunc = internal.ForwardCheck
	// MaintainArcConsistency re-establishes arc consistency after each
	// fresh assignment, propagating prunes transitively.
	MaintainArcConsistency finbound.InferenceFunc = internal.MaintainArcConsistency
)

// Solver finds complete assignments for binary constraint satisfaction
// problems. The zero value is not usable; construct with New. A Solver is
// stateless across calls and may be reused, but a single call runs strictly
// sequentially.
type Solver struct {
	selectVariable finbound.SelectVariableFunc
	orderValues    finbound.OrderValuesFunc
	inference      finbound.InferenceFunc
	useAC3         *bool
	tracer         finbound.Tracer
}

func New(options ...Option) (*Solver, error) {
	var s Solver
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Solver) error

func WithSelectVariable(f finbound.SelectVariableFunc) Option {
	return func(s *Solver) error {
		if f == nil {
			return fmt.Errorf("variable selection strategy must not be nil")
		}
		s.selectVariable = f
		return nil
	}
}

func WithOrderValues(f finbound.OrderValuesFunc) Option {
	return func(s *Solver) error {
		if f == nil {
			return fmt.Errorf("value ordering strategy must not be nil")
		}
		s.orderValues = f
		return nil
	}
}

// WithInference sets the propagation strategy run after every tentative
// assignment. A nil strategy selects the no-inference fast path.
func WithInference(f finbound.InferenceFunc) Option {
	return func(s *Solver) error {
		s.inference = f
		return nil
	}
}

// WithAC3 controls whether global arc consistency preprocessing runs before
// the search. It defaults to enabled.
func WithAC3(enabled bool) Option {
	return func(s *Solver) error {
		s.useAC3 = &enabled
		return nil
	}
}

func WithTracer(t finbound.Tracer) Option {
	return func(s *Solver) error {
		if t == nil {
			return fmt.Errorf("tracer must not be nil")
		}
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.selectVariable == nil {
			s.selectVariable = SelectMinimumRemaining
		}
		return nil
	},
	func(s *Solver) error {
		if s.orderValues == nil {
			s.orderValues = OrderLeastConstraining
		}
		return nil
	},
	func(s *Solver) error {
		if s.useAC3 == nil {
			enabled := true
			s.useAC3 = &enabled
		}
		return nil
	},
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = finbound.DefaultTracer{}
		}
		return nil
	},
}

// Solve builds a fresh working assignment for the problem, eliminates
// values rejected by unary constraints, optionally establishes global arc
// consistency, and then searches for a complete assignment with the
// configured strategies.
//
// An unsatisfiable problem returns a finbound.NotSatisfiable error naming
// the phase that proved it; that is an expected outcome, not a defect. A
// cancelled context returns ErrIncomplete.
func (s *Solver) Solve(ctx context.Context, problem *finbound.Problem) (Solution, error) {
	assignment := finbound.NewAssignment(problem)

	if !internal.EliminateUnary(assignment, problem) {
		return nil, finbound.NotSatisfiable{Stage: finbound.StageUnaryElimination}
	}

	if *s.useAC3 {
		if _, ok := internal.AC3(assignment, problem); !ok {
			return nil, finbound.NotSatisfiable{Stage: finbound.StagePreprocessing}
		}
	}

	solved, err := internal.Backtrack(ctx, assignment, problem, s.selectVariable, s.orderValues, s.inference, s.tracer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}
	if !solved {
		return nil, finbound.NotSatisfiable{Stage: finbound.StageSearch}
	}

	mapping, ok := assignment.Solution()
	if !ok {
		// Something is wrong if the search reported success on an
		// incomplete assignment.
		return nil, fmt.Errorf("unexpected internal error")
	}
	return Solution(mapping), nil
}
