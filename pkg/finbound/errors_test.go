package finbound_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbound/finbound/pkg/finbound"
)

func TestNotSatisfiableError(t *testing.T) {
	type tc struct {
		Name   string
		Error  finbound.NotSatisfiable
		String string
	}

	for _, tt := range []tc{
		{
			Name:   "no stage",
			String: "constraints not satisfiable",
		},
		{
			Name:   "unary elimination",
			Error:  finbound.NotSatisfiable{Stage: finbound.StageUnaryElimination},
			String: "constraints not satisfiable: proven by unary elimination",
		},
		{
			Name:   "preprocessing",
			Error:  finbound.NotSatisfiable{Stage: finbound.StagePreprocessing},
			String: "constraints not satisfiable: proven by arc consistency preprocessing",
		},
		{
			Name:   "search",
			Error:  finbound.NotSatisfiable{Stage: finbound.StageSearch},
			String: "constraints not satisfiable: proven by backtracking search",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.String, tt.Error.Error())
		})
	}
}

func TestIsNotSatisfiable(t *testing.T) {
	assert.True(t, finbound.IsNotSatisfiable(finbound.NotSatisfiable{Stage: finbound.StageSearch}))
	assert.True(t, finbound.IsNotSatisfiable(fmt.Errorf("solve: %w", finbound.NotSatisfiable{})))
	assert.False(t, finbound.IsNotSatisfiable(errors.New("plain error")))
	assert.False(t, finbound.IsNotSatisfiable(nil))
}

type position struct {
	variable finbound.Variable
	value    finbound.Value
	assigned []finbound.Variable
}

func (p position) Variable() finbound.Variable   { return p.variable }
func (p position) Candidate() finbound.Value     { return p.value }
func (p position) Assigned() []finbound.Variable { return p.assigned }

func TestLoggingTracer(t *testing.T) {
	var buffer bytes.Buffer
	tracer := finbound.LoggingTracer{Writer: &buffer}
	tracer.Trace(position{variable: "x", value: 3, assigned: []finbound.Variable{"y", "z"}})

	output := buffer.String()
	assert.Contains(t, output, "x = 3")
	assert.Contains(t, output, "- y")
	assert.Contains(t, output, "- z")
}
