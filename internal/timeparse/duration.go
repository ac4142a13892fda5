// Package timeparse converts between elapsed-time values and compact,
// human-readable duration text such as "2h 15m" or "1.5days".
package timeparse

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"time"
)

// ErrOverflow is returned when a Duration does not fit the target range.
var ErrOverflow = errors.New("duration out of range")

// Duration is a non-negative span of time: whole seconds plus a nanosecond
// remainder that is always below one second.
type Duration struct {
	secs  uint64
	nanos uint32
}

// New returns the Duration of secs seconds and nanos nanoseconds. Nanoseconds
// of one second or more are carried into the seconds.
func New(secs uint64, nanos uint32) Duration {
	if nanos >= nanosPerSecond {
		secs += uint64(nanos / nanosPerSecond)
		nanos %= nanosPerSecond
	}
	return Duration{secs: secs, nanos: nanos}
}

// FromStd converts a time.Duration. Negative values become zero.
func FromStd(d time.Duration) Duration {
	if d <= 0 {
		return Duration{}
	}
	return Duration{
		secs:  uint64(d / time.Second),
		nanos: uint32(d % time.Second),
	}
}

// Secs returns the whole seconds in d.
func (d Duration) Secs() uint64 { return d.secs }

// Nanos returns the sub-second remainder of d in nanoseconds.
func (d Duration) Nanos() uint32 { return d.nanos }

// IsZero reports whether d is the empty duration.
func (d Duration) IsZero() bool { return d.secs == 0 && d.nanos == 0 }

// Seconds returns d as a floating-point number of seconds.
func (d Duration) Seconds() float64 {
	return float64(d.secs) + float64(d.nanos)/nanosPerSecond
}

// Add returns d+o, or ErrOverflow when the seconds wrap.
func (d Duration) Add(o Duration) (Duration, error) {
	nanos := d.nanos + o.nanos
	var carry uint64
	if nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		carry = 1
	}
	secs, c1 := bits.Add64(d.secs, o.secs, 0)
	secs, c2 := bits.Add64(secs, carry, 0)
	if c1 != 0 || c2 != 0 {
		return Duration{}, ErrOverflow
	}
	return Duration{secs: secs, nanos: nanos}, nil
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal
// to, or longer than o.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.secs < o.secs:
		return -1
	case d.secs > o.secs:
		return 1
	case d.nanos < o.nanos:
		return -1
	case d.nanos > o.nanos:
		return 1
	}
	return 0
}

// Std converts d to a time.Duration, which tops out around 292 years.
func (d Duration) Std() (time.Duration, error) {
	const maxSecs = uint64(math.MaxInt64 / int64(time.Second))
	if d.secs > maxSecs {
		return 0, ErrOverflow
	}
	n := time.Duration(d.secs) * time.Second
	if n > math.MaxInt64-time.Duration(d.nanos) {
		return 0, ErrOverflow
	}
	return n + time.Duration(d.nanos), nil
}

// String returns the canonical text form of d, as produced by Format.
func (d Duration) String() string {
	return Format(d)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(Format(d)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// DecimalSeconds renders d as a decimal number of seconds without trailing
// fractional zeros, e.g. "8100" or "0.000000017".
func (d Duration) DecimalSeconds() string {
	s := strconv.FormatUint(d.secs, 10)
	if d.nanos == 0 {
		return s
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", d.nanos), "0")
	return s + "." + frac
}

// ParseSeconds parses a decimal number of seconds such as "9420", "0.032" or
// "12.000000017" into an exact Duration. At most nine fractional digits are
// accepted.
func ParseSeconds(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Duration{}, fmt.Errorf("empty seconds string")
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return Duration{}, fmt.Errorf("invalid seconds %q: missing number", s)
	}

	var secs uint64
	if whole != "" {
		if !isDigits(whole) {
			return Duration{}, fmt.Errorf("invalid seconds %q: not a non-negative decimal", s)
		}
		n, err := strconv.ParseUint(whole, 10, 64)
		if err != nil {
			return Duration{}, fmt.Errorf("invalid seconds %q: %w", s, ErrOverflow)
		}
		secs = n
	}

	var nanos uint32
	if frac != "" {
		if !isDigits(frac) {
			return Duration{}, fmt.Errorf("invalid seconds %q: not a non-negative decimal", s)
		}
		if len(frac) > 9 {
			return Duration{}, fmt.Errorf("invalid seconds %q: more than nine fractional digits", s)
		}
		n, err := strconv.ParseUint(frac+strings.Repeat("0", 9-len(frac)), 10, 32)
		if err != nil {
			return Duration{}, fmt.Errorf("invalid seconds %q: %w", s, err)
		}
		nanos = uint32(n)
	}

	return Duration{secs: secs, nanos: nanos}, nil
}

// ParseDuration parses duration text into a time.Duration.
// Examples: "10h", "2d", "3weeks", "1h 30m", "1.5days".
func ParseDuration(s string) (time.Duration, error) {
	d, err := Parse(s)
	if err != nil {
		return 0, err
	}
	std, err := d.Std()
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return std, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
