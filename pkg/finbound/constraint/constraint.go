package constraint

import (
	"fmt"

	"github.com/finbound/finbound/pkg/finbound"
)

type ForbidConstraint struct {
	v         finbound.Variable
	forbidden finbound.Value
}

func (constraint *ForbidConstraint) String(subject finbound.Variable) string {
	return fmt.Sprintf("%s must not take value %v", subject, constraint.forbidden)
}

func (constraint *ForbidConstraint) Affects(v finbound.Variable) bool {
	return v == constraint.v
}

func (constraint *ForbidConstraint) IsSatisfied(value finbound.Value) bool {
	return value != constraint.forbidden
}

// Forbid returns a UnaryConstraint satisfied by every value of v except
// the forbidden one.
func Forbid(v finbound.Variable, forbidden finbound.Value) finbound.UnaryConstraint {
	return &ForbidConstraint{v: v, forbidden: forbidden}
}

type RequireConstraint struct {
	v        finbound.Variable
	required finbound.Value
}

func (constraint *RequireConstraint) String(subject finbound.Variable) string {
	return fmt.Sprintf("%s must take value %v", subject, constraint.required)
}

func (constraint *RequireConstraint) Affects(v finbound.Variable) bool {
	return v == constraint.v
}

func (constraint *RequireConstraint) IsSatisfied(value finbound.Value) bool {
	return value == constraint.required
}

// Require returns a UnaryConstraint satisfied only by the required value
// of v.
func Require(v finbound.Variable, required finbound.Value) finbound.UnaryConstraint {
	return &RequireConstraint{v: v, required: required}
}

// pair carries the ordered-pair plumbing shared by all binary constraints.
type pair struct {
	v1, v2 finbound.Variable
}

func (p pair) Affects(v finbound.Variable) bool {
	return v == p.v1 || v == p.v2
}

func (p pair) OtherVariable(v finbound.Variable) finbound.Variable {
	switch v {
	case p.v1:
		return p.v2
	case p.v2:
		return p.v1
	}
	panic(fmt.Sprintf("finbound: variable %s is not bound by the constraint on (%s, %s)", v, p.v1, p.v2))
}

type NotEqualConstraint struct {
	pair
}

func (constraint *NotEqualConstraint) String(subject finbound.Variable) string {
	return fmt.Sprintf("%s must differ from %s", subject, constraint.OtherVariable(subject))
}

func (constraint *NotEqualConstraint) IsSatisfied(value1, value2 finbound.Value) bool {
	return value1 != value2
}

// NotEqual returns a BinaryConstraint satisfied whenever v1 and v2 take
// different values.
func NotEqual(v1, v2 finbound.Variable) finbound.BinaryConstraint {
	return &NotEqualConstraint{pair{v1: v1, v2: v2}}
}

type EqualConstraint struct {
	pair
}

func (constraint *EqualConstraint) String(subject finbound.Variable) string {
	return fmt.Sprintf("%s must equal %s", subject, constraint.OtherVariable(subject))
}

func (constraint *EqualConstraint) IsSatisfied(value1, value2 finbound.Value) bool {
	return value1 == value2
}

// Equal returns a BinaryConstraint satisfied whenever v1 and v2 take the
// same value.
func Equal(v1, v2 finbound.Variable) finbound.BinaryConstraint {
	return &EqualConstraint{pair{v1: v1, v2: v2}}
}

type RelationConstraint struct {
	pair
	name      string
	satisfied func(value1, value2 finbound.Value) bool
}

func (constraint *RelationConstraint) String(subject finbound.Variable) string {
	return fmt.Sprintf("%s relates to %s by %q", subject, constraint.OtherVariable(subject), constraint.name)
}

func (constraint *RelationConstraint) IsSatisfied(value1, value2 finbound.Value) bool {
	return constraint.satisfied(value1, value2)
}

// Relation returns a BinaryConstraint satisfied whenever the given
// predicate holds, with value1 bound to v1 and value2 to v2. The predicate
// must be pure; name is used in diagnostics only. Arc revision evaluates
// constraints along both directions of the pair, so predicates used with
// propagation should be symmetric in their arguments.
func Relation(v1, v2 finbound.Variable, name string, satisfied func(value1, value2 finbound.Value) bool) finbound.BinaryConstraint {
	return &RelationConstraint{
		pair:      pair{v1: v1, v2: v2},
		name:      name,
		satisfied: satisfied,
	}
}
