package solver

import (
	"context"

	"github.com/finbound/finbound/pkg/finbound"
)

// searchPosition reports the point of the search at which a candidate was
// abandoned.
type searchPosition struct {
	assignment *finbound.Assignment
	variable   finbound.Variable
	candidate  finbound.Value
}

func (p searchPosition) Variable() finbound.Variable {
	return p.variable
}

func (p searchPosition) Candidate() finbound.Value {
	return p.candidate
}

func (p searchPosition) Assigned() []finbound.Variable {
	return p.assignment.AssignedVariables()
}

// Backtrack is the recursive search driver. It shares one Assignment with
// every branch: a successful call returns with the assignment complete and
// untouched thereafter, a failed call returns with the assignment restored
// to exactly its state at entry. Domains pruned by a propagation call are
// put back from that call's inference set, never recomputed.
//
// A nil infer disables propagation entirely. The context is only consulted
// between candidate values, where the shared state is self-consistent;
// cancellation surfaces as a non-nil error with the assignment restored.
func Backtrack(ctx context.Context, a *finbound.Assignment, p *finbound.Problem,
	selectVariable finbound.SelectVariableFunc,
	orderValues finbound.OrderValuesFunc,
	infer finbound.InferenceFunc,
	tracer finbound.Tracer,
) (bool, error) {
	if a.IsComplete() {
		return true, nil
	}

	v := selectVariable(a, p)
	var candidates []finbound.Value
	for _, value := range orderValues(a, p, v) {
		if Consistent(a, p, v, value) {
			candidates = append(candidates, value)
		}
	}

	for _, value := range candidates {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		a.Assign(v, value)

		var inferences finbound.InferenceSet
		if infer != nil {
			var ok bool
			inferences, ok = infer(a, p, v, value)
			if !ok {
				a.Unassign(v)
				tracer.Trace(searchPosition{assignment: a, variable: v, candidate: value})
				continue
			}
		}

		solved, err := Backtrack(ctx, a, p, selectVariable, orderValues, infer, tracer)
		if solved {
			return true, nil
		}

		a.Unassign(v)
		a.Restore(inferences)
		if err != nil {
			return false, err
		}
		tracer.Trace(searchPosition{assignment: a, variable: v, candidate: value})
	}

	return false, nil
}
