// ABOUTME: Time and Range value types for timeline positions and spans
// ABOUTME: Times are integer microsecond counts; ranges are half-open intervals

// Package timeline defines the project data model for the editor: clips
// placed on typed tracks, with all positions and durations stored as
// integer microseconds so that save/load cycles never drift.
package timeline

import (
	"fmt"
	"time"
)

// Time is a signed count of microseconds on the timeline.
type Time int64

// Zero is the distinguished origin time.
const Zero Time = 0

// FromSeconds converts a floating-point second count to a Time.
func FromSeconds(s float64) Time {
	return Time(s * 1e6)
}

// FromMilliseconds converts a millisecond count to a Time.
func FromMilliseconds(ms int64) Time {
	return Time(ms * 1000)
}

// FromDuration converts a time.Duration to a Time.
func FromDuration(d time.Duration) Time {
	return Time(d.Microseconds())
}

// Add returns t + other.
func (t Time) Add(other Time) Time {
	return t + other
}

// Sub returns t - other.
func (t Time) Sub(other Time) Time {
	return t - other
}

// Microseconds returns the raw microsecond count.
func (t Time) Microseconds() int64 {
	return int64(t)
}

// Seconds returns the time as floating-point seconds.
func (t Time) Seconds() float64 {
	return float64(t) / 1e6
}

// Duration converts the Time to a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t) * time.Microsecond
}

// Clamp limits t to the inclusive range [lo, hi].
func (t Time) Clamp(lo, hi Time) Time {
	if t < lo {
		return lo
	}

	if t > hi {
		return hi
	}

	return t
}

// String formats the time as a timecode like "00:01:23.456".
func (t Time) String() string {
	neg := ""
	v := int64(t)

	if v < 0 {
		neg = "-"
		v = -v
	}

	ms := v / 1000
	h := ms / 3600000
	m := (ms / 60000) % 60
	s := (ms / 1000) % 60
	frac := ms % 1000

	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", neg, h, m, s, frac)
}

// Range is the half-open interval [Start, Start+Duration) a clip occupies.
type Range struct {
	Start    Time
	Duration Time
}

// End returns the exclusive end of the range.
func (r Range) End() Time {
	return r.Start + r.Duration
}

// Overlaps reports whether two half-open ranges intersect.
// Ranges that merely touch (one's end equals the other's start) do not
// overlap; a zero-length range overlaps only when strictly interior to
// the other.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End() && other.Start < r.End()
}

// Contains reports whether t falls inside the half-open range.
func (r Range) Contains(t Time) bool {
	return t >= r.Start && t < r.End()
}
