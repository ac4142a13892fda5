package timeparse

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Parse for blank input.
	ErrEmptyInput = errors.New("input is empty")
	// ErrInputLeftOver is returned by Parse when text remains after the
	// last recognized time span.
	ErrInputLeftOver = errors.New("input was not fully parsed")
)

// Rule identifies the grammar rule that rejected the input.
type Rule int

const (
	// RuleNumber means no numeric literal was found.
	RuleNumber Rule = iota + 1
	// RuleRange means the number, or the seconds it amounts to, is outside
	// the non-negative range a Duration can hold.
	RuleRange
	// RuleUnit means the text after the number matches no unit alias.
	RuleUnit
)

func (r Rule) String() string {
	switch r {
	case RuleNumber:
		return "number"
	case RuleRange:
		return "range"
	case RuleUnit:
		return "unit"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// SyntaxError reports a grammar or numeric range failure.
type SyntaxError struct {
	Input string // unconsumed input where the rule failed
	Rule  Rule
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse error: invalid %s at %q", e.Rule, e.Input)
}
