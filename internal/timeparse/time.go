package timeparse

import (
	"fmt"
	"strings"
	"time"
)

// ParseTime parses a timestamp for use with Between. Formats without a zone
// are read as UTC:
//   - YYYY-MM-DD (assumes 00:00:00 UTC)
//   - YYYY-MM-DD HH:MM:SS (UTC)
//   - RFC3339: 2018-10-27T10:00:00Z (can specify any timezone)
//
// Returns the parsed time or an error if the format is invalid.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	// Try parsing as date only (YYYY-MM-DD) - assume UTC
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	// Try parsing as date and time (YYYY-MM-DD HH:MM:SS) - assume UTC
	if t, err := time.Parse(time.DateTime, s); err == nil {
		return t, nil
	}

	// Try parsing as RFC3339 (can specify timezone explicitly)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time format %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, or RFC3339)", s)
}

// Between returns the exact time elapsed from start to end. It fails when
// end is before start.
func Between(start, end time.Time) (Duration, error) {
	if end.Before(start) {
		return Duration{}, fmt.Errorf("end %s is before start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	secs := end.Unix() - start.Unix()
	nanos := end.Nanosecond() - start.Nanosecond()
	if nanos < 0 {
		secs--
		nanos += nanosPerSecond
	}
	return Duration{secs: uint64(secs), nanos: uint32(nanos)}, nil
}
