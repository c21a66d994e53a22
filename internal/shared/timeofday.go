package shared

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a clock time expressed as minutes since midnight.
// Values above 24h are legal while laying out overnight-spanning
// schedules; Format wraps them back onto the 24h clock for display.
type TimeOfDay int

// FromClock builds a TimeOfDay from whole hours and minutes.
func FromClock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// FromTime extracts the clock time of a time.Time.
func FromTime(t time.Time) TimeOfDay {
	return FromClock(t.Hour(), t.Minute())
}

// ParseTimeOfDay parses "HH:MM" (or "H:MM", or a bare hour "HH").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time of day")
	}
	hh, mm, found := strings.Cut(s, ":")
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m := 0
	if found {
		m, err = strconv.Atoi(strings.TrimSpace(mm))
		if err != nil || m < 0 || m > 59 {
			return 0, fmt.Errorf("invalid minute in %q", s)
		}
	}
	return FromClock(h, m), nil
}

// Format renders the time as "HH:MM", modulo 24 hours.
func (t TimeOfDay) Format() string {
	m := int(t) % (24 * 60)
	if m < 0 {
		m += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes returns the time shifted by n minutes.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	return t + TimeOfDay(n)
}

// AddHours returns the time shifted by a fractional number of hours.
func (t TimeOfDay) AddHours(h float64) TimeOfDay {
	return t + TimeOfDay(h*60)
}

// Minutes returns the raw minute count.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// MarshalJSON renders the time as an "HH:MM" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format())
}

// UnmarshalJSON parses an "HH:MM" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
