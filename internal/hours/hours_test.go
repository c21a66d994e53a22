package hours

import (
	"testing"
	"time"

	"saigon-foodtour/internal/shared"
)

func at(h, m int) shared.TimeOfDay { return shared.FromClock(h, m) }

func TestIsOpenAtDaytime(t *testing.T) {
	e := NewEvaluator(DefaultMinRemaining)
	text := "Mở cửa 8:00 - Đóng cửa 22:00"

	tests := []struct {
		name  string
		check shared.TimeOfDay
		want  bool
	}{
		{name: "midday", check: at(12, 0), want: true},
		{name: "right at opening", check: at(8, 0), want: true},
		{name: "before opening", check: at(7, 0), want: false},
		{name: "under two hours left", check: at(21, 0), want: false},
		{name: "exactly two hours left", check: at(20, 0), want: true},
		{name: "after closing", check: at(22, 30), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.IsOpenAt(text, tt.check); got != tt.want {
				t.Errorf("IsOpenAt(%q, %s) = %v, want %v", text, tt.check.Format(), got, tt.want)
			}
		})
	}
}

func TestIsOpenAtOvernight(t *testing.T) {
	e := NewEvaluator(DefaultMinRemaining)
	text := "Mở cửa 22:00 - Đóng cửa 2:00"

	if !e.IsOpenAt(text, at(23, 30)) {
		t.Error("23:30 falls inside the overnight window with 2.5h left")
	}
	// Only 30 minutes remain at 01:30, short of the 2h default.
	if e.IsOpenAt(text, at(1, 30)) {
		t.Error("01:30 leaves under two hours, should be treated as closed")
	}
	if !e.IsOpenAtFor(text, at(1, 30), 30*time.Minute) {
		t.Error("01:30 with a 30m requirement should be open")
	}
	if e.IsOpenAt(text, at(12, 0)) {
		t.Error("noon is outside the overnight window")
	}
}

func TestMarkerPhrases(t *testing.T) {
	e := NewEvaluator(DefaultMinRemaining)

	for _, text := range []string{"Mở cả ngày", "mo ca ngay", "24/7", "Phục vụ 24h"} {
		if !e.IsOpenAt(text, at(3, 0)) {
			t.Errorf("%q should be open at any time", text)
		}
	}
	for _, text := range []string{"Không rõ", "Chưa rõ giờ", "Đang cập nhật"} {
		if e.IsOpenAt(text, at(12, 0)) {
			t.Errorf("%q is unknown and must fail closed", text)
		}
	}
}

func TestFailsClosedOnUnparsableText(t *testing.T) {
	e := NewEvaluator(DefaultMinRemaining)

	for _, text := range []string{
		"",
		"   ",
		"giờ mở tùy hứng",
		"Mở cửa 8:00", // closing time missing
		"Đóng cửa 22:00",
	} {
		if e.IsOpenAt(text, at(12, 0)) {
			t.Errorf("%q must fail closed", text)
		}
	}
}

func TestEvaluatorIsDeterministic(t *testing.T) {
	e := NewEvaluator(DefaultMinRemaining)
	text := "Mở cửa 9:00 - Đóng cửa 21:00"
	first := e.IsOpenAt(text, at(10, 0))
	for i := 0; i < 5; i++ {
		if e.IsOpenAt(text, at(10, 0)) != first {
			t.Fatal("repeated evaluation changed the result")
		}
	}
}
