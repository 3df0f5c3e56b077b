// Package timing turns per-game duration and break declarations into
// concrete wall-clock start times.
//
// Times are "HH:MM" strings on a 24 hour clock. Arithmetic wraps at midnight,
// so 23:45 plus 30 minutes is 00:15.
package timing

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// DefaultStartTime is used for a stage without an explicit start time.
const DefaultStartTime = "10:00"

// ParseClock converts "HH:MM" into minutes after midnight.
// The second result is false for anything that is not a valid clock time.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || hh == "" || len(mm) != 2 || len(hh) > 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// FormatClock renders minutes after midnight as "HH:MM", wrapping around the day.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes adds delta minutes to a clock time. An unparseable input is
// returned unchanged together with false.
func AddMinutes(clock string, delta int) (string, bool) {
	m, ok := ParseClock(clock)
	if !ok {
		return clock, false
	}
	return FormatClock(m + delta), true
}
