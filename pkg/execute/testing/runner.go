package testing

import (
	"context"
	"os/exec"
	"path"
	"strings"

	"github.com/jnavila/curtin/pkg/execute"
)

// Call records a single command execution performed through a FakeRunner.
type Call struct {
	Name string
	Args []string
}

// Line renders the call as a single command line for assertions.
func (c Call) Line() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Response scripts the outcome of one command execution.
type Response struct {
	Stdout string
	Stderr string
	Err    error
}

// FakeRunner is an execute.Runner for tests.
//
// Responses are scripted per command name and consumed in FIFO order; a
// command with no scripted response left succeeds with empty output. Every
// execution is recorded in Calls so tests can assert on the exact argument
// lists and on call ordering.
//
// Usage:
//
//	runner := testing.NewFakeRunner()
//	runner.Enqueue("gpg", testing.Response{Err: someError})
//	client := gpg.New(runner, gpg.Config{})
//	_, err := client.GetKeyByID(ctx, "DEADBEEF")
type FakeRunner struct {
	// Calls records every Run invocation in order.
	Calls []Call

	// Missing lists tool names LookPath reports as absent.
	Missing map[string]bool

	responses map[string][]Response
}

var _ execute.Runner = (*FakeRunner)(nil)

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Missing:   make(map[string]bool),
		responses: make(map[string][]Response),
	}
}

// Enqueue appends a scripted response for the named command.
func (f *FakeRunner) Enqueue(name string, resp Response) {
	f.responses[name] = append(f.responses[name], resp)
}

// Run records the call and pops the next scripted response for name.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})

	queue := f.responses[name]
	if len(queue) == 0 {
		return "", "", nil
	}
	resp := queue[0]
	f.responses[name] = queue[1:]
	return resp.Stdout, resp.Stderr, resp.Err
}

// LookPath resolves name unless it is listed in Missing.
func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return path.Join("/sbin", name), nil
}

// CommandLines returns one rendered command line per recorded call.
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, call := range f.Calls {
		lines = append(lines, call.Line())
	}
	return lines
}

// CallsFor returns the recorded calls whose executable matches name.
func (f *FakeRunner) CallsFor(name string) []Call {
	var calls []Call
	for _, call := range f.Calls {
		if call.Name == name {
			calls = append(calls, call)
		}
	}
	return calls
}
