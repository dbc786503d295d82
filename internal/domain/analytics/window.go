package analytics

import (
	"math"
	"time"
)

// Range is the symbolic period requested by dashboard callers.
type Range string

const (
	Range7d  Range = "7d"
	Range30d Range = "30d"
	Range90d Range = "90d"
	Range1y  Range = "1y"

	DefaultRange = Range30d
)

// Day is a fixed 24h day. Windows ignore calendar months and DST on purpose.
const Day = 24 * time.Hour

var rangeDurations = map[Range]time.Duration{
	Range7d:  7 * Day,
	Range30d: 30 * Day,
	Range90d: 90 * Day,
	Range1y:  365 * Day,
}

// ParseRange never fails: unrecognized tokens (including "") fall back to DefaultRange.
func ParseRange(token string) Range {
	r := Range(token)
	if _, ok := rangeDurations[r]; ok {
		return r
	}
	return DefaultRange
}

func (r Range) String() string {
	return string(r)
}

func (r Range) Duration() time.Duration {
	if d, ok := rangeDurations[r]; ok {
		return d
	}
	return rangeDurations[DefaultRange]
}

// TimeWindow is the half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start, End: end}
}

// ResolveWindow ends the window at now and starts it one range duration earlier.
func ResolveWindow(token string, now time.Time) TimeWindow {
	r := ParseRange(token)
	return TimeWindow{
		Start: now.Add(-r.Duration()),
		End:   now,
	}
}

func (w TimeWindow) Length() time.Duration {
	return w.End.Sub(w.Start)
}

// Previous returns the adjacent window of equal length that ends where w starts.
func (w TimeWindow) Previous() TimeWindow {
	return TimeWindow{
		Start: w.Start.Add(-w.Length()),
		End:   w.Start,
	}
}

func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Days rounds the window length up to whole days.
func (w TimeWindow) Days() int {
	return int(math.Ceil(float64(w.Length()) / float64(Day)))
}
