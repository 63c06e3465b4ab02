// Package process runs external programs to completion and captures their output.
package process

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/devicelab-dev/dark-instruments/pkg/logger"
)

// Result holds everything a finished program produced.
//
// Err is set when the program could not be spawned or awaited. Stdout and
// Stderr are empty in that case, so callers that only look at the output
// see the same thing as for a program that printed nothing.
type Result struct {
	Stdout []byte
	Stderr []byte
	Err    error
}

// Text returns both streams decoded as UTF-8 (invalid sequences replaced)
// with surrounding whitespace trimmed.
func (r Result) Text() (stdout, stderr string) {
	return decode(r.Stdout), decode(r.Stderr)
}

// Runner executes a program with arguments and waits for it to exit.
type Runner interface {
	Exec(program string, args ...string) Result
}

// Exec is the os/exec backed Runner.
type Exec struct{}

// Default is the Runner used when none is supplied.
var Default Runner = Exec{}

// Exec runs program with args. A non-zero exit status is not treated as a
// failure: whatever the program wrote is returned as-is.
func (Exec) Exec(program string, args ...string) Result {
	logger.Debug("EXEC: program='%s', arguments='%s'", program, strings.Join(args, " "))

	cmd := exec.Command(program, args...) //#nosec G204 -- program is the resolved bridge binary
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, exited := err.(*exec.ExitError); exited {
			return Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
		}
		logger.Error("Error executing command: %v", err)
		return Result{Err: err}
	}

	return Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
}

// Output runs program through r and returns the decoded text of both streams.
func Output(r Runner, program string, args ...string) (stdout, stderr string) {
	return r.Exec(program, args...).Text()
}

// Bytes runs program through r and returns raw stdout.
func Bytes(r Runner, program string, args ...string) []byte {
	return r.Exec(program, args...).Stdout
}

func decode(b []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(b), "�"))
}
