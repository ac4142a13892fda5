package convert

import (
	"fmt"
	"io"

	"github.com/jparise/humantime/internal/timeparse"
)

// OutputMode selects how parsed durations are printed.
type OutputMode string

const (
	OutputText    OutputMode = "text"    // canonical duration text, e.g. "2h 15m"
	OutputSeconds OutputMode = "seconds" // decimal seconds, e.g. "8100"
	OutputGo      OutputMode = "go"      // time.Duration string, e.g. "2h15m0s"
)

// String is used both by fmt.Print and by Cobra in help text.
func (m *OutputMode) String() string {
	return string(*m)
}

// Set must have pointer receiver to validate and set the value.
func (m *OutputMode) Set(v string) error {
	switch v {
	case "text", "seconds", "go":
		*m = OutputMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"text\", \"seconds\", or \"go\"")
	}
}

// Type is only used in help text.
func (m *OutputMode) Type() string {
	return "outputMode"
}

// Options contains all conversion parameters.
type Options struct {
	Inputs    []string            // Literal inputs
	Files     []string            // Glob patterns; every line of every match is an input
	Stdin     io.Reader           // Read inputs from here when Inputs and Files are empty
	Output    OutputMode          // Rendering for parsed durations
	ShowInput bool                // Prefix each result with its input
	Sum       bool                // Print only the total of all inputs
	Min       *timeparse.Duration // Reject parsed durations below this (nil = no minimum)
	Max       *timeparse.Duration // Reject parsed durations above this (nil = no maximum)
	Jobs      int                 // Maximum concurrent conversions
}
