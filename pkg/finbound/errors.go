package finbound

import (
	"errors"
	"fmt"
)

// Stage identifies which phase of a solve proved a problem unsatisfiable.
type Stage string

const (
	StageUnaryElimination Stage = "unary elimination"
	StagePreprocessing    Stage = "arc consistency preprocessing"
	StageSearch           Stage = "backtracking search"
)

// NotSatisfiable is the error returned when no assignment can satisfy
// every constraint of a problem. It is an expected outcome, not a defect:
// callers should test for it with IsNotSatisfiable (or errors.As) rather
// than treat it as an internal failure.
type NotSatisfiable struct {
	// Stage records the phase that proved unsatisfiability.
	Stage Stage
}

func (e NotSatisfiable) Error() string {
	if e.Stage == "" {
		return "constraints not satisfiable"
	}
	return fmt.Sprintf("constraints not satisfiable: proven by %s", e.Stage)
}

// IsNotSatisfiable reports whether err indicates an unsatisfiable problem.
func IsNotSatisfiable(err error) bool {
	var ns NotSatisfiable
	return errors.As(err, &ns)
}
