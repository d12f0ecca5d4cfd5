package solver

import (
	"sort"

	"github.com/finbound/finbound/pkg/finbound"
)

// SelectFirst returns the first unassigned variable in the problem's stable
// declaration order. Callers must only invoke it on incomplete assignments.
func SelectFirst(a *finbound.Assignment, p *finbound.Problem) finbound.Variable {
	for _, v := range p.Variables() {
		if !a.IsAssigned(v) {
			return v
		}
	}
	return ""
}

// SelectMinimumRemaining returns the unassigned variable with the smallest
// working domain, breaking ties in favor of the variable touched by the
// most binary constraints. Both criteria bias the search toward failing
// fast.
func SelectMinimumRemaining(a *finbound.Assignment, p *finbound.Problem) finbound.Variable {
	var best finbound.Variable
	found := false
	for _, v := range p.Variables() {
		if a.IsAssigned(v) {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		size, bestSize := a.Domain(v).Len(), a.Domain(best).Len()
		if size < bestSize || (size == bestSize && p.Degree(v) > p.Degree(best)) {
			best = v
		}
	}
	return best
}

// OrderDomain returns v's candidate values in working-domain iteration
// order, applying no heuristic.
func OrderDomain(a *finbound.Assignment, _ *finbound.Problem, v finbound.Variable) []finbound.Value {
	return a.Domain(v).Values()
}

// OrderLeastConstraining returns v's candidate values sorted so that the
// value eliminating the fewest choices from neighboring domains comes
// first. The elimination count of a value is the number of legal
// cross-domain pairings lost by fixing it, summed over the binary
// constraints touching v.
func OrderLeastConstraining(a *finbound.Assignment, p *finbound.Problem, v finbound.Variable) []finbound.Value {
	values := a.Domain(v).Values()
	eliminated := make(map[finbound.Value]int, len(values))
	for _, value := range values {
		eliminated[value] = eliminatedChoices(a, p, v, value)
	}
	sort.SliceStable(values, func(i, j int) bool {
		return eliminated[values[i]] < eliminated[values[j]]
	})
	return values
}

func eliminatedChoices(a *finbound.Assignment, p *finbound.Problem, v finbound.Variable, value finbound.Value) int {
	count := 0
	for _, c := range p.BinaryConstraintsOn(v) {
		for choice := range a.Domain(c.OtherVariable(v)) {
			if !c.IsSatisfied(choice, value) {
				count++
			}
		}
	}
	return count
}
