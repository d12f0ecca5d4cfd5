package finbound

import (
	"fmt"
)

// Variable values uniquely identify particular problem variables within
// the input to a single call to Solve.
type Variable string

func (v Variable) String() string {
	return string(v)
}

// VariableFromString returns a Variable based on a provided string.
func VariableFromString(s string) Variable {
	return Variable(s)
}

// Value is a single candidate element of a variable's domain. Values must
// be comparable (usable as map keys); the engine never inspects them beyond
// equality and handing them to constraint predicates.
type Value any

// UnaryConstraint restricts the values a single variable may take.
// Implementations are pure predicates with no side effects.
type UnaryConstraint interface {
	String(subject Variable) string
	// Affects reports whether the constraint concerns the given variable.
	Affects(v Variable) bool
	// IsSatisfied reports whether the constraint permits the given value
	// for its bound variable.
	IsSatisfied(value Value) bool
}

// BinaryConstraint restricts the combinations of values an ordered pair of
// variables may take simultaneously. Implementations are pure predicates
// with no side effects.
type BinaryConstraint interface {
	String(subject Variable) string
	// Affects reports whether the constraint concerns the given variable.
	Affects(v Variable) bool
	// OtherVariable returns the partner of the given variable in the pair.
	// It panics if the variable is not one of the two bound variables:
	// that is a contract violation by the caller, not an unsatisfiable
	// outcome.
	OtherVariable(v Variable) Variable
	// IsSatisfied reports whether the constraint permits the combination,
	// with value1 evaluated against the first bound variable and value2
	// against the second.
	IsSatisfied(value1, value2 Value) bool
}

// SelectVariableFunc chooses the next unassigned variable the search should
// branch on. Implementations must be stateless and must not mutate the
// assignment; the search relies on that to keep undo exact.
type SelectVariableFunc func(assignment *Assignment, problem *Problem) Variable

// OrderValuesFunc produces the order in which candidate values for a
// variable are tried. Implementations must be stateless and must not mutate
// the assignment.
type OrderValuesFunc func(assignment *Assignment, problem *Problem, v Variable) []Value

// InferenceFunc propagates the consequences of a fresh assignment of value
// to v by pruning other variables' working domains. On success it returns
// the exact set of removals it performed, for later reversal. On failure
// (some domain would empty) it must leave the assignment untouched — every
// removal already made during the call reverted — and report ok=false.
type InferenceFunc func(assignment *Assignment, problem *Problem, v Variable, value Value) (inferences InferenceSet, ok bool)

// Inference records a single value removed from a variable's working
// domain by propagation.
type Inference struct {
	Variable Variable
	Value    Value
}

func (i Inference) String() string {
	return fmt.Sprintf("%s != %v", i.Variable, i.Value)
}

// InferenceSet is the set of removals performed by one propagation call,
// in the order they were applied. Restoring it inverts that call exactly.
type InferenceSet []Inference
