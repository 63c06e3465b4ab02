// Package mock provides a scripted process.Runner for testing without a real bridge binary.
package mock

import (
	"strings"

	"github.com/devicelab-dev/dark-instruments/pkg/process"
)

// Call records one invocation.
type Call struct {
	Program string
	Args    []string
}

// Line returns the arguments joined by single spaces.
func (c Call) Line() string {
	return strings.Join(c.Args, " ")
}

// Runner is a mock implementation of process.Runner.
// Responses are keyed by the space-joined argument list.
type Runner struct {
	Responses map[string]process.Result
	Calls     []Call
}

// New creates a mock runner with no scripted responses.
func New() *Runner {
	return &Runner{Responses: make(map[string]process.Result)}
}

// On scripts stdout for the given argument line.
func (r *Runner) On(line string, stdout string) *Runner {
	r.Responses[line] = process.Result{Stdout: []byte(stdout)}
	return r
}

// OnBytes scripts raw stdout for the given argument line.
func (r *Runner) OnBytes(line string, stdout []byte) *Runner {
	r.Responses[line] = process.Result{Stdout: stdout}
	return r
}

// OnResult scripts a full result for the given argument line.
func (r *Runner) OnResult(line string, res process.Result) *Runner {
	r.Responses[line] = res
	return r
}

// Exec records the call and returns the scripted result, or an empty one.
func (r *Runner) Exec(program string, args ...string) process.Result {
	c := Call{Program: program, Args: append([]string(nil), args...)}
	r.Calls = append(r.Calls, c)
	return r.Responses[c.Line()]
}

// Lines returns the argument lines of every recorded call, in order.
func (r *Runner) Lines() []string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.Line()
	}
	return lines
}

// Last returns the most recent call. It panics if nothing was recorded.
func (r *Runner) Last() Call {
	return r.Calls[len(r.Calls)-1]
}

// Reset forgets recorded calls but keeps scripted responses.
func (r *Runner) Reset() {
	r.Calls = nil
}
