package timeparse

import (
	"math"
	"math/bits"
)

// Unit is a named time granularity, from nanoseconds to years.
type Unit int

const (
	Nanos Unit = iota
	Micros
	Millis
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

// Seconds per unit. Months and years are fixed approximations of 30.44 and
// 365.25 days; both are whole numbers of seconds.
const (
	nanoToSecond   = 1e-9
	microToSecond  = 1e-6
	milliToSecond  = 1e-3
	secondToSecond = 1
	minuteToSecond = 60
	hourToSecond   = 60 * minuteToSecond
	dayToSecond    = 24 * hourToSecond
	weekToSecond   = 7 * dayToSecond
	monthToSecond  = 30.44 * dayToSecond
	yearToSecond   = 365.25 * dayToSecond
)

const nanosPerSecond = 1_000_000_000

type unitInfo struct {
	name   string
	factor float64 // seconds per unit
	secs   uint64  // whole seconds per unit, 0 below one second
	nanos  uint64  // nanoseconds per unit, 0 at or above one second
	suffix string
	plural bool
}

var unitTable = [...]unitInfo{
	Nanos:   {name: "nanoseconds", factor: nanoToSecond, nanos: 1, suffix: "ns"},
	Micros:  {name: "microseconds", factor: microToSecond, nanos: 1_000, suffix: "us"},
	Millis:  {name: "milliseconds", factor: milliToSecond, nanos: 1_000_000, suffix: "ms"},
	Seconds: {name: "seconds", factor: secondToSecond, secs: secondToSecond, suffix: "s"},
	Minutes: {name: "minutes", factor: minuteToSecond, secs: minuteToSecond, suffix: "m"},
	Hours:   {name: "hours", factor: hourToSecond, secs: hourToSecond, suffix: "h"},
	Days:    {name: "days", factor: dayToSecond, secs: dayToSecond, suffix: "day", plural: true},
	Weeks:   {name: "weeks", factor: weekToSecond, secs: weekToSecond, suffix: "week", plural: true},
	Months:  {name: "months", factor: monthToSecond, secs: monthToSecond, suffix: "month", plural: true},
	Years:   {name: "years", factor: yearToSecond, secs: yearToSecond, suffix: "year", plural: true},
}

// decomposition lists the units largest first, the order Format emits them.
var decomposition = [...]Unit{Years, Months, Weeks, Days, Hours, Minutes, Seconds, Millis, Micros, Nanos}

func (u Unit) valid() bool {
	return u >= Nanos && u <= Years
}

// String returns the unit's plural English name.
func (u Unit) String() string {
	if !u.valid() {
		return "unknown"
	}
	return unitTable[u].name
}

// Suffix returns the text Format appends to a count of this unit. Calendar
// units are whole words and take a trailing "s" when count is above one.
// It returns "" for an unknown unit.
func (u Unit) Suffix(count uint64) string {
	if !u.valid() {
		return ""
	}
	info := unitTable[u]
	if info.plural && count > 1 {
		return info.suffix + "s"
	}
	return info.suffix
}

// ToSecond converts a magnitude of this unit into seconds. An unknown unit
// yields NaN.
func (u Unit) ToSecond(value float64) float64 {
	if !u.valid() {
		return math.NaN()
	}
	return value * unitTable[u].factor
}

// times returns count whole units as an exact Duration, or false when the
// result does not fit.
func (u Unit) times(count uint64) (Duration, bool) {
	info := unitTable[u]
	if info.secs > 0 {
		hi, secs := bits.Mul64(count, info.secs)
		return Duration{secs: secs}, hi == 0
	}
	perSecond := nanosPerSecond / info.nanos
	return Duration{secs: count / perSecond, nanos: uint32(count % perSecond * info.nanos)}, true
}

// Split divides d into the number of whole units it contains, truncating,
// and the remainder left for smaller units. Counts that do not fit in a
// uint64 saturate. An unknown unit splits off nothing.
func (u Unit) Split(d Duration) (uint64, Duration) {
	if !u.valid() {
		return 0, d
	}
	info := unitTable[u]
	if info.secs > 0 {
		return d.secs / info.secs, Duration{secs: d.secs % info.secs, nanos: d.nanos}
	}

	// Sub-second unit: whole seconds count as 1e9/n units each.
	perSecond := nanosPerSecond / info.nanos
	hi, lo := bits.Mul64(d.secs, perSecond)
	count, carry := bits.Add64(lo, uint64(d.nanos)/info.nanos, 0)
	if hi != 0 || carry != 0 {
		count = ^uint64(0)
	}
	return count, Duration{nanos: uint32(uint64(d.nanos) % info.nanos)}
}
