//go:build unit

package analytics_test

import (
	"testing"
	"time"

	"wedding-analytics/internal/domain/analytics"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, 6, 15, 12, 30, 0, 0, time.UTC)

func TestResolveWindow(t *testing.T) {
	testCases := []struct {
		name     string
		token    string
		expected time.Duration
	}{
		{name: "7d", token: "7d", expected: 7 * 24 * time.Hour},
		{name: "30d", token: "30d", expected: 30 * 24 * time.Hour},
		{name: "90d", token: "90d", expected: 90 * 24 * time.Hour},
		{name: "1y is 365 fixed days", token: "1y", expected: 365 * 24 * time.Hour},
		{name: "empty token falls back to 30d", token: "", expected: 30 * 24 * time.Hour},
		{name: "bogus token falls back to 30d", token: "bogus-token", expected: 30 * 24 * time.Hour},
		{name: "case sensitive token falls back to 30d", token: "7D", expected: 30 * 24 * time.Hour},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := analytics.ResolveWindow(tc.token, fixedNow)

			assert.Equal(t, fixedNow, w.End)
			assert.Equal(t, tc.expected, w.End.Sub(w.Start))
			assert.Equal(t, tc.expected.Milliseconds(), w.End.Sub(w.Start).Milliseconds())
		})
	}

	t.Run("90d and bogus token differ", func(t *testing.T) {
		w90 := analytics.ResolveWindow("90d", fixedNow)
		wBogus := analytics.ResolveWindow("bogus-token", fixedNow)

		assert.NotEqual(t, w90.Length(), wBogus.Length())
		assert.Equal(t, 90, w90.Days())
		assert.Equal(t, 30, wBogus.Days())
	})
}

func TestParseRange(t *testing.T) {
	assert.Equal(t, analytics.Range1y, analytics.ParseRange("1y"))
	assert.Equal(t, analytics.DefaultRange, analytics.ParseRange("2w"))
	assert.Equal(t, analytics.Range30d.Duration(), analytics.Range("nope").Duration())
}

func TestTimeWindow_Previous(t *testing.T) {
	for _, token := range []string{"7d", "30d", "90d", "1y", "x"} {
		t.Run(token, func(t *testing.T) {
			w := analytics.ResolveWindow(token, fixedNow)
			prev := w.Previous()

			assert.Equal(t, w.Start, prev.End, "previous window must end where the window starts")
			assert.Equal(t, w.Length(), prev.Length())
			assert.False(t, prev.Contains(w.Start), "windows must not overlap")
		})
	}
}

func TestTimeWindow_Contains(t *testing.T) {
	w := analytics.NewTimeWindow(fixedNow.Add(-time.Hour), fixedNow)

	assert.True(t, w.Contains(w.Start), "start is inclusive")
	assert.True(t, w.Contains(fixedNow.Add(-time.Minute)))
	assert.False(t, w.Contains(w.End), "end is exclusive")
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
}

func TestTimeWindow_Days(t *testing.T) {
	w := analytics.NewTimeWindow(fixedNow.Add(-36*time.Hour), fixedNow)
	assert.Equal(t, 2, w.Days(), "partial days round up")

	empty := analytics.NewTimeWindow(fixedNow, fixedNow)
	assert.Equal(t, 0, empty.Days())
}
