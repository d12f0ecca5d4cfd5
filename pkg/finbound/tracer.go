package finbound

import (
	"fmt"
	"io"
)

// SearchPosition describes the point of the search a trace event refers to:
// the variable being branched on, the candidate value under trial, and the
// variables assigned so far.
type SearchPosition interface {
	Variable() Variable
	Candidate() Value
	Assigned() []Variable
}

// Tracer receives a trace event whenever the search abandons a candidate
// value, either because propagation wiped out a domain or because the
// subtree below it was exhausted.
type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nRejected: %s = %v\nAssigned:\n", p.Variable(), p.Candidate())
	for _, v := range p.Assigned() {
		fmt.Fprintf(t.Writer, "- %s\n", v)
	}
}
