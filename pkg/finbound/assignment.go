package finbound

import (
	"fmt"
)

// Assignment is the mutable working state of one solve: a shrinking copy of
// every variable's domain plus the value currently assigned to each
// variable, if any. A single Assignment is shared by the entire search —
// branches mutate it in place and must restore it exactly on failure, so it
// is not safe for concurrent use.
type Assignment struct {
	problem *Problem
	domains map[Variable]Domain
	values  map[Variable]Value
}

// NewAssignment returns a fresh Assignment for the problem: working domains
// copied from the original domains and every variable unassigned.
func NewAssignment(problem *Problem) *Assignment {
	a := &Assignment{
		problem: problem,
		domains: make(map[Variable]Domain, len(problem.variables)),
		values:  make(map[Variable]Value, len(problem.variables)),
	}
	for v, d := range problem.domains {
		a.domains[v] = d.Clone()
	}
	return a
}

// Domain returns the current working domain of v. The returned set must
// only be mutated through Remove and Restore.
func (a *Assignment) Domain(v Variable) Domain {
	return a.domains[v]
}

// Value returns the value currently assigned to v. ok is false if v is
// unassigned.
func (a *Assignment) Value(v Variable) (value Value, ok bool) {
	value, ok = a.values[v]
	return value, ok
}

// IsAssigned reports whether v currently has a value.
func (a *Assignment) IsAssigned(v Variable) bool {
	_, ok := a.values[v]
	return ok
}

// AssignedVariables returns the variables currently holding a value, in
// the problem's declaration order.
func (a *Assignment) AssignedVariables() []Variable {
	assigned := make([]Variable, 0, len(a.values))
	for _, v := range a.problem.variables {
		if _, ok := a.values[v]; ok {
			assigned = append(assigned, v)
		}
	}
	return assigned
}

// IsComplete reports whether every variable of the problem has a value.
func (a *Assignment) IsComplete() bool {
	return len(a.values) == len(a.problem.variables)
}

// Assign gives v the given value. The value must belong to v's original
// domain; assigning anything else is a contract violation and panics.
func (a *Assignment) Assign(v Variable, value Value) {
	original := a.problem.Domain(v)
	if original == nil {
		panic(fmt.Sprintf("finbound: assign to unknown variable %s", v))
	}
	if !original.Contains(value) {
		panic(fmt.Sprintf("finbound: value %v is not in the original domain of %s", value, v))
	}
	a.values[v] = value
}

// Unassign removes v's current value, if any.
func (a *Assignment) Unassign(v Variable) {
	delete(a.values, v)
}

// Remove deletes value from v's working domain and returns the
// corresponding inference record. Callers are responsible for never leaving
// a domain empty on a live branch: emptiness signals branch failure and
// must be followed by Restore.
func (a *Assignment) Remove(v Variable, value Value) Inference {
	delete(a.domains[v], value)
	return Inference{Variable: v, Value: value}
}

// Restore re-adds every removed (variable, value) pair of the set to the
// working domains, exactly inverting the propagation call that produced it.
func (a *Assignment) Restore(inferences InferenceSet) {
	for _, inf := range inferences {
		a.domains[inf.Variable][inf.Value] = struct{}{}
	}
}

// Solution extracts the complete variable-to-value mapping. ok is false if
// the assignment is not complete.
func (a *Assignment) Solution() (solution map[Variable]Value, ok bool) {
	if !a.IsComplete() {
		return nil, false
	}
	solution = make(map[Variable]Value, len(a.values))
	for v, value := range a.values {
		solution[v] = value
	}
	return solution, true
}
