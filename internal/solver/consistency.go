package solver

import (
	"github.com/finbound/finbound/pkg/finbound"
)

// Consistent reports whether tentatively assigning value to v would violate
// any binary constraint whose other variable already holds a value.
// Constraints whose other side is still unassigned are vacuously satisfied
// here: pruning against unassigned variables is the job of propagation and
// is never performed by this check.
func Consistent(a *finbound.Assignment, p *finbound.Problem, v finbound.Variable, value finbound.Value) bool {
	for _, c := range p.BinaryConstraintsOn(v) {
		other := c.OtherVariable(v)
		otherValue, assigned := a.Value(other)
		if !assigned {
			continue
		}
		if !c.IsSatisfied(value, otherValue) {
			return false
		}
	}
	return true
}

// EliminateUnary removes from each working domain every value rejected by
// an applicable unary constraint. It runs once per solve, before search,
// and has no rollback: an emptied domain proves the problem unsatisfiable
// and terminates the whole solve.
func EliminateUnary(a *finbound.Assignment, p *finbound.Problem) bool {
	for _, v := range p.Variables() {
		for _, c := range p.UnaryConstraints() {
			if !c.Affects(v) {
				continue
			}
			for _, value := range a.Domain(v).Values() {
				if !c.IsSatisfied(value) {
					a.Remove(v, value)
				}
			}
			if a.Domain(v).Len() == 0 {
				return false
			}
		}
	}
	return true
}
