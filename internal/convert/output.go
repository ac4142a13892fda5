package convert

import (
	"fmt"
	"io"
	"sync"

	"github.com/mgutz/ansi"
)

// Output handles all output formatting with optional color support.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	cyan   func(string) string
	green  func(string) string
	yellow func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		cyan:   color("cyan"),
		green:  color("green+b"),
		yellow: color("yellow"),
	}
}

// Result writes a conversion result, optionally prefixed with its input
// in the format: input: value.
func (o *Output) Result(input, value string, showInput bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if showInput {
		fmt.Fprintf(o.stdout, "%s: %s\n", o.cyan(input), o.green(value))
		return
	}
	fmt.Fprintf(o.stdout, "%s\n", o.green(value))
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}
