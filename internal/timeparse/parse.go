package timeparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type alias struct {
	tag  string
	unit Unit
}

// aliases is tried in order and the first matching tag wins. Within a unit,
// longer tags come before their prefixes. Months are tried first so that
// "M" is never read as something else; lowercase "m" is minutes.
var aliases = []alias{
	{"months", Months}, {"month", Months}, {"mths", Months}, {"mth", Months}, {"M", Months},
	{"days", Days}, {"day", Days}, {"dys", Days}, {"dy", Days}, {"d", Days}, {"D", Days},
	{"weeks", Weeks}, {"week", Weeks}, {"wks", Weeks}, {"wk", Weeks}, {"w", Weeks}, {"W", Weeks},
	{"years", Years}, {"year", Years}, {"yrs", Years}, {"yr", Years}, {"y", Years}, {"Y", Years},
	{"nanos", Nanos}, {"nsec", Nanos}, {"ns", Nanos},
	{"micros", Micros}, {"usec", Micros}, {"us", Micros},
	{"millis", Millis}, {"msec", Millis}, {"ms", Millis},
	{"seconds", Seconds}, {"second", Seconds}, {"secs", Seconds}, {"sec", Seconds}, {"s", Seconds},
	{"minutes", Minutes}, {"minute", Minutes}, {"mins", Minutes}, {"min", Minutes}, {"m", Minutes},
	{"hours", Hours}, {"hour", Hours}, {"hrs", Hours}, {"hr", Hours}, {"h", Hours}, {"H", Hours},
}

// Parse parses duration text made of one or more "<number><unit>" spans,
// such as "2h 15m", "1.5days" or "20min 17nsec", and returns their sum.
//
// Spans may be separated by whitespace, and whitespace may appear between a
// number and its unit. Numbers are non-negative decimal literals with an
// optional fraction and exponent.
//
// Blank input yields ErrEmptyInput. Text left after the last recognized span
// yields an error wrapping ErrInputLeftOver. A malformed first span, or a
// number outside the range of a Duration, yields a *SyntaxError.
func Parse(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Duration{}, ErrEmptyInput
	}

	var total Duration
	rest := s
	for spans := 0; rest != ""; spans++ {
		span, next, err := parseSpan(rest)
		if err != nil {
			// Only the first span is mandatory; a later failure ends the run
			// and is reported as leftover input below.
			if spans == 0 {
				return Duration{}, err
			}
			break
		}

		total, err = total.Add(span)
		if err != nil {
			return Duration{}, &SyntaxError{Input: rest, Rule: RuleRange}
		}
		rest = next
	}

	if rest != "" {
		return Duration{}, fmt.Errorf("%w: %q", ErrInputLeftOver, rest)
	}
	return total, nil
}

// parseSpan consumes a single time span and any whitespace following it.
func parseSpan(s string) (Duration, string, error) {
	n := scanNumber(s)
	if n == 0 {
		return Duration{}, s, &SyntaxError{Input: s, Rule: RuleNumber}
	}

	literal := s[:n]
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Duration{}, s, &SyntaxError{Input: s, Rule: RuleRange}
		}
		return Duration{}, s, &SyntaxError{Input: s, Rule: RuleNumber}
	}
	// NaN fails both comparisons.
	if !(value >= 0 && value <= math.MaxUint64) {
		return Duration{}, s, &SyntaxError{Input: s, Rule: RuleRange}
	}

	rest := trimSpace(s[n:])
	unit, tagLen, ok := matchUnit(rest)
	if !ok {
		return Duration{}, s, &SyntaxError{Input: rest, Rule: RuleUnit}
	}

	var d Duration
	if count, whole := wholeCount(literal, value); whole {
		d, ok = unit.times(count)
	} else {
		d, ok = spanDuration(value, unit)
	}
	if !ok {
		return Duration{}, s, &SyntaxError{Input: s, Rule: RuleRange}
	}
	return d, trimSpace(rest[tagLen:]), nil
}

// wholeCount reports whether the number is a whole count that fits in a
// uint64. Plain digit strings are read exactly rather than through value.
func wholeCount(literal string, value float64) (uint64, bool) {
	if isDigits(literal) {
		count, err := strconv.ParseUint(literal, 10, 64)
		return count, err == nil
	}
	if value == math.Trunc(value) && value < 0x1p64 {
		return uint64(value), true
	}
	return 0, false
}

// spanDuration converts a fractional number of units into a Duration,
// rounding the fractional second to the nearest nanosecond.
func spanDuration(value float64, unit Unit) (Duration, bool) {
	secs := unit.ToSecond(value)
	if secs >= math.MaxUint64 {
		return Duration{}, false
	}
	whole := math.Floor(secs)
	nanos := math.Round((secs - whole) * nanosPerSecond)
	return New(uint64(whole), uint32(nanos)), true
}

func matchUnit(s string) (Unit, int, bool) {
	for _, a := range aliases {
		if strings.HasPrefix(s, a.tag) {
			return a.unit, len(a.tag), true
		}
	}
	return 0, 0, false
}

// scanNumber returns the length of the float literal at the start of s:
// an optional sign, digits with an optional fraction, and an optional
// exponent. "inf", "infinity" and "nan" in any case are literals too, so
// that they fail the range check. It returns 0 when s does not start with
// a number.
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for _, word := range []string{"infinity", "inf", "nan"} {
		if len(s)-i >= len(word) && strings.EqualFold(s[i:i+len(word)], word) {
			return i + len(word)
		}
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func trimSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
