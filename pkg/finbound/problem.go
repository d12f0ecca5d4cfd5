package finbound

import (
	"fmt"
)

// Domain is a finite set of candidate values for one variable.
type Domain map[Value]struct{}

// NewDomain returns a Domain containing the given values.
func NewDomain(values ...Value) Domain {
	d := make(Domain, len(values))
	for _, v := range values {
		d[v] = struct{}{}
	}
	return d
}

// Contains reports whether v is a member of the domain.
func (d Domain) Contains(v Value) bool {
	_, ok := d[v]
	return ok
}

// Len returns the number of values in the domain.
func (d Domain) Len() int {
	return len(d)
}

// Values returns the members of the domain in unspecified order.
func (d Domain) Values() []Value {
	values := make([]Value, 0, len(d))
	for v := range d {
		values = append(values, v)
	}
	return values
}

// Clone returns an independent copy of the domain.
func (d Domain) Clone() Domain {
	clone := make(Domain, len(d))
	for v := range d {
		clone[v] = struct{}{}
	}
	return clone
}

// Problem is an immutable binary constraint satisfaction problem: a set of
// variables, a finite domain per variable, and the unary and binary
// constraints an assignment must satisfy. Once built it is never mutated;
// all per-solve state lives in an Assignment derived from it.
type Problem struct {
	variables         []Variable
	domains           map[Variable]Domain
	unaryConstraints  []UnaryConstraint
	binaryConstraints []BinaryConstraint

	// binaryByVariable indexes binaryConstraints by the variables they
	// affect, so propagation and the degree heuristic avoid scanning the
	// full constraint list per lookup.
	binaryByVariable map[Variable][]BinaryConstraint
}

// NewProblem builds a Problem from variables with their domains and the
// constraints over them. It returns an error if a constraint references a
// variable absent from domains, or if a variable's domain is nil.
// Variable iteration order is the order of the variables argument.
func NewProblem(variables []Variable, domains map[Variable]Domain, unary []UnaryConstraint, binary []BinaryConstraint) (*Problem, error) {
	p := &Problem{
		variables:         make([]Variable, len(variables)),
		domains:           make(map[Variable]Domain, len(variables)),
		unaryConstraints:  unary,
		binaryConstraints: binary,
		binaryByVariable:  make(map[Variable][]BinaryConstraint),
	}
	copy(p.variables, variables)
	for _, v := range variables {
		d, ok := domains[v]
		if !ok {
			return nil, fmt.Errorf("variable %s has no domain", v)
		}
		if _, dup := p.domains[v]; dup {
			return nil, fmt.Errorf("variable %s declared more than once", v)
		}
		p.domains[v] = d.Clone()
	}
	for _, c := range unary {
		if !p.affectsKnownVariable(c.Affects) {
			return nil, fmt.Errorf("unary constraint %v references no variable of the problem", c)
		}
	}
	for _, c := range binary {
		if !p.affectsKnownVariable(c.Affects) {
			return nil, fmt.Errorf("binary constraint %v references no variable of the problem", c)
		}
		for _, v := range p.variables {
			if !c.Affects(v) {
				continue
			}
			if other := c.OtherVariable(v); p.domains[other] == nil {
				return nil, fmt.Errorf("binary constraint %v references unknown variable %s", c, other)
			}
			p.binaryByVariable[v] = append(p.binaryByVariable[v], c)
		}
	}
	return p, nil
}

func (p *Problem) affectsKnownVariable(affects func(Variable) bool) bool {
	for _, v := range p.variables {
		if affects(v) {
			return true
		}
	}
	return false
}

// Variables returns the problem's variables in declaration order. The
// returned slice must not be modified.
func (p *Problem) Variables() []Variable {
	return p.variables
}

// Domain returns the original domain of v, or nil if v is not a variable
// of the problem. The returned set must not be modified.
func (p *Problem) Domain(v Variable) Domain {
	return p.domains[v]
}

// UnaryConstraints returns all unary constraints of the problem.
func (p *Problem) UnaryConstraints() []UnaryConstraint {
	return p.unaryConstraints
}

// BinaryConstraints returns all binary constraints of the problem.
func (p *Problem) BinaryConstraints() []BinaryConstraint {
	return p.binaryConstraints
}

// BinaryConstraintsOn returns the binary constraints affecting v.
func (p *Problem) BinaryConstraintsOn(v Variable) []BinaryConstraint {
	return p.binaryByVariable[v]
}

// Degree returns the number of binary constraints affecting v. It is the
// tie-break criterion of the minimum-remaining-values heuristic.
func (p *Problem) Degree(v Variable) int {
	return len(p.binaryByVariable[v])
}
