package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAnchoredWeekOrder(t *testing.T) {
	want := [7]Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}
	if AnchoredWeek != want {
		t.Errorf("AnchoredWeek = %v, want Saturday through Friday", AnchoredWeek)
	}
	// 상수 값이 곧 토요일로부터의 오프셋이다
	for offset, wd := range AnchoredWeek {
		if int(wd) != offset {
			t.Errorf("weekday %s has value %d, want offset %d", wd, int(wd), offset)
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		in   time.Weekday
		want Weekday
	}{
		{time.Saturday, Saturday},
		{time.Sunday, Sunday},
		{time.Monday, Monday},
		{time.Wednesday, Wednesday},
		{time.Friday, Friday},
	}

	for _, tt := range tests {
		if got := WeekdayOf(tt.in); got != tt.want {
			t.Errorf("WeekdayOf(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWeekdayTextRoundTrip(t *testing.T) {
	for _, wd := range AnchoredWeek {
		text, err := wd.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s) error = %v", wd, err)
		}

		var parsed Weekday
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if parsed != wd {
			t.Errorf("round trip of %s gave %s", wd, parsed)
		}
	}

	var invalid Weekday
	if err := invalid.UnmarshalText([]byte("someday")); err == nil {
		t.Error("UnmarshalText should reject unknown day names")
	}
}

func TestWeekScheduleJSONKeys(t *testing.T) {
	week := WeekSchedule{
		Saturday: {IsHoliday: true},
		Monday:   {WorkingHours: TimeRange{Start: 540, End: 1080}},
	}

	data, err := json.Marshal(week)
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}

	var parsed WeekSchedule
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}
	if !parsed[Saturday].IsHoliday {
		t.Error("saturday should survive the JSON round trip")
	}
	if parsed[Monday].WorkingHours != (TimeRange{Start: 540, End: 1080}) {
		t.Error("monday working hours should survive the JSON round trip")
	}
}

func TestWeekdayDisplayName(t *testing.T) {
	if got := Saturday.DisplayName(); got != "토요일" {
		t.Errorf("Saturday.DisplayName() = %q, want 토요일", got)
	}
	if got := Friday.DisplayName(); got != "금요일" {
		t.Errorf("Friday.DisplayName() = %q, want 금요일", got)
	}
}
