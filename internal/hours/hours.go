// Package hours decides whether a venue is open at a given clock time,
// based on the free-form Vietnamese operating-hours text in the dataset.
// Every ambiguity fails closed: a venue we cannot prove open is treated
// as closed.
package hours

import (
	"regexp"
	"time"

	"saigon-foodtour/internal/shared"
	"saigon-foodtour/internal/textnorm"
)

// DefaultMinRemaining is the minimum time a venue must stay open past the
// check time to count as a valid stop.
const DefaultMinRemaining = 2 * time.Hour

// Marker phrases are matched against the accent-stripped hours text, so
// they are listed here without diacritics.
var (
	unknownMarkers = []string{
		"khong ro",
		"chua ro gio",
		"dang cap nhat",
	}
	allDayMarkers = []string{
		"mo ca ngay",
		"ca ngay",
		"24/7",
		"24h",
		"24 gio",
	}

	openRe  = regexp.MustCompile(`mo cua[^0-9]*(\d{1,2})(?::(\d{2}))?`)
	closeRe = regexp.MustCompile(`dong cua[^0-9]*(\d{1,2})(?::(\d{2}))?`)
)

// Evaluator checks operating-hours text. The zero value is not usable;
// construct with NewEvaluator.
type Evaluator struct {
	minRemaining time.Duration
}

// NewEvaluator returns an Evaluator enforcing the given minimum remaining
// open time. A non-positive value falls back to DefaultMinRemaining.
func NewEvaluator(minRemaining time.Duration) *Evaluator {
	if minRemaining <= 0 {
		minRemaining = DefaultMinRemaining
	}
	return &Evaluator{minRemaining: minRemaining}
}

// IsOpenAt reports whether the venue described by hoursText is open at
// check and will remain open for at least the evaluator's minimum. It is
// a pure function of its inputs.
func (e *Evaluator) IsOpenAt(hoursText string, check shared.TimeOfDay) bool {
	return e.IsOpenAtFor(hoursText, check, e.minRemaining)
}

// IsOpenAtFor is IsOpenAt with an explicit minimum remaining duration,
// overriding the evaluator default for this call.
func (e *Evaluator) IsOpenAtFor(hoursText string, check shared.TimeOfDay, minRemaining time.Duration) bool {
	stripped := textnorm.StripAccents(hoursText)
	if stripped == "" {
		return false
	}
	for _, m := range unknownMarkers {
		if textnorm.ContainsLoose(stripped, m) {
			return false
		}
	}
	for _, m := range allDayMarkers {
		if textnorm.ContainsLoose(stripped, m) {
			return true
		}
	}

	open, ok := extractTime(openRe, stripped)
	if !ok {
		return false
	}
	close, ok := extractTime(closeRe, stripped)
	if !ok {
		return false
	}

	// Overnight span: closing time belongs to the next day.
	if close < open {
		close += 24 * 60
	}
	checkMin := check.Minutes() % (24 * 60)
	if checkMin < 0 {
		checkMin += 24 * 60
	}
	if shared.TimeOfDay(checkMin) < open {
		checkMin += 24 * 60
	}

	minLeft := int(minRemaining.Minutes())
	return shared.TimeOfDay(checkMin) >= open &&
		shared.TimeOfDay(checkMin) < close &&
		close.Minutes()-checkMin >= minLeft
}

func extractTime(re *regexp.Regexp, stripped string) (shared.TimeOfDay, bool) {
	m := re.FindStringSubmatch(stripped)
	if m == nil {
		return 0, false
	}
	h := atoi(m[1])
	if h < 0 || h > 24 {
		return 0, false
	}
	min := 0
	if m[2] != "" {
		min = atoi(m[2])
		if min < 0 || min > 59 {
			return 0, false
		}
	}
	return shared.FromClock(h, min), true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}
