package solver

import (
	"github.com/finbound/finbound/pkg/finbound"
)

// arc is a directional revision task: make to's domain consistent with
// from's domain under the constraint.
type arc struct {
	from, to   finbound.Variable
	constraint finbound.BinaryConstraint
}

// Revise makes the arc (from, to) consistent by removing from to's working
// domain every value that no value of from's domain supports under the
// constraint. Revision is directional: only to is ever pruned. If every
// value of to's domain would be removed, nothing is mutated and ok is
// false.
func Revise(a *finbound.Assignment, from, to finbound.Variable, constraint finbound.BinaryConstraint) (inferences finbound.InferenceSet, ok bool) {
	domain := a.Domain(to)
	var doomed []finbound.Value
	for _, toValue := range domain.Values() {
		supported := false
		for fromValue := range a.Domain(from) {
			if constraint.IsSatisfied(fromValue, toValue) {
				supported = true
				break
			}
		}
		if !supported {
			doomed = append(doomed, toValue)
		}
	}
	if len(doomed) == domain.Len() {
		return nil, false
	}
	inferences = make(finbound.InferenceSet, 0, len(doomed))
	for _, value := range doomed {
		inferences = append(inferences, a.Remove(to, value))
	}
	return inferences, true
}

// propagate processes a seeded work queue of arcs to a fixed point. Arc
// consistency is confluent, so the processing order does not affect the
// result. Whenever a revision prunes anything, arcs from the pruned
// variable to its other neighbors are re-enqueued: its shrunken domain may
// invalidate previously consistent arcs. On revision failure every removal
// accumulated by this call is restored before reporting failure.
func propagate(a *finbound.Assignment, p *finbound.Problem, queue []arc) (finbound.InferenceSet, bool) {
	var inferences finbound.InferenceSet
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		pruned, ok := Revise(a, next.from, next.to, next.constraint)
		if !ok {
			a.Restore(inferences)
			return nil, false
		}
		if len(pruned) == 0 {
			continue
		}
		for _, c := range p.BinaryConstraintsOn(next.to) {
			queue = append(queue, arc{from: next.to, to: c.OtherVariable(next.to), constraint: c})
		}
		inferences = append(inferences, pruned...)
	}
	return inferences, true
}

// MaintainArcConsistency propagates the consequences of a fresh assignment
// to v: the queue is seeded with the arcs leading out of v, one per binary
// constraint touching it. The returned inference set inverts the call
// exactly on backtrack.
func MaintainArcConsistency(a *finbound.Assignment, p *finbound.Problem, v finbound.Variable, _ finbound.Value) (finbound.InferenceSet, bool) {
	constraints := p.BinaryConstraintsOn(v)
	queue := make([]arc, 0, len(constraints))
	for _, c := range constraints {
		queue = append(queue, arc{from: v, to: c.OtherVariable(v), constraint: c})
	}
	return propagate(a, p, queue)
}

// AC3 establishes global arc consistency as a preprocessing step, seeding
// the queue with both directions of every binary constraint rather than
// with the arcs out of a single variable. ok is false if some domain
// empties, which proves the problem unsatisfiable.
func AC3(a *finbound.Assignment, p *finbound.Problem) (finbound.InferenceSet, bool) {
	var queue []arc
	for _, v := range p.Variables() {
		for _, c := range p.BinaryConstraintsOn(v) {
			queue = append(queue, arc{from: v, to: c.OtherVariable(v), constraint: c})
		}
	}
	return propagate(a, p, queue)
}

// ForwardCheck prunes, from the working domain of every unassigned
// neighbor of v, the values inconsistent with v's freshly assigned value.
// It is a one-hop special case of arc consistency maintenance: pruned
// neighbors are not re-propagated. If a neighbor's domain empties, every
// removal made by this call is restored and ok is false.
func ForwardCheck(a *finbound.Assignment, p *finbound.Problem, v finbound.Variable, value finbound.Value) (finbound.InferenceSet, bool) {
	var inferences finbound.InferenceSet
	for _, c := range p.BinaryConstraintsOn(v) {
		other := c.OtherVariable(v)
		if a.IsAssigned(other) {
			continue
		}
		for _, choice := range a.Domain(other).Values() {
			if !c.IsSatisfied(value, choice) {
				inferences = append(inferences, a.Remove(other, choice))
			}
		}
		if a.Domain(other).Len() == 0 {
			a.Restore(inferences)
			return nil, false
		}
	}
	return inferences, true
}
