package timeparse

import (
	"strconv"
	"strings"
)

// Format renders d as space-separated "<count><unit>" items from years down
// to nanoseconds, omitting units with a zero count.
//
//	Format(New(9420, 0))       // "2h 37m"
//	Format(New(0, 32_000_000)) // "32ms"
//	Format(Duration{})         // "0s"
//
// Years, months, weeks and days are spelled out and pluralized; smaller
// units use their abbreviations. The result parses back to d.
func Format(d Duration) string {
	if d.IsZero() {
		return "0s"
	}

	var b strings.Builder
	rest := d
	for _, u := range decomposition {
		var count uint64
		count, rest = u.Split(rest)
		if count == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(count, 10))
		b.WriteString(u.Suffix(count))
	}
	return b.String()
}
