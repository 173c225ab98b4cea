package schedule

import (
	"testing"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

func TestToMinutesFromMinutes(t *testing.T) {
	tests := []struct {
		hour   int
		minute int
		want   domain.TimeOfDay
	}{
		{0, 0, 0},
		{9, 0, 540},
		{12, 30, 750},
		{23, 30, 1410},
		{24, 0, 1440},
	}

	for _, tt := range tests {
		got := ToMinutes(tt.hour, tt.minute)
		if got != tt.want {
			t.Errorf("ToMinutes(%d, %d) = %d, want %d", tt.hour, tt.minute, got, tt.want)
		}
		hour, minute := FromMinutes(got)
		if hour != tt.hour || minute != tt.minute {
			t.Errorf("FromMinutes(%d) = (%d, %d), want (%d, %d)", got, hour, minute, tt.hour, tt.minute)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(540); got != "09:00" {
		t.Errorf("FormatClock(540) = %q, want %q", got, "09:00")
	}
	if got := FormatClock(750); got != "12:30" {
		t.Errorf("FormatClock(750) = %q, want %q", got, "12:30")
	}
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name    string
		start   domain.TimeOfDay
		end     domain.TimeOfDay
		wantLen int
	}{
		{"two hour range", 540, 660, 4},
		{"single slot", 540, 570, 1},
		{"empty when start equals end", 540, 540, 0},
		{"empty when start after end", 600, 540, 0},
		{"full day", 0, 1440, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(tt.start, tt.end)
			if len(slots) != tt.wantLen {
				t.Fatalf("GenerateSlots(%d, %d) returned %d slots, want %d", tt.start, tt.end, len(slots), tt.wantLen)
			}
			for _, slot := range slots {
				if slot < tt.start || slot >= tt.end {
					t.Errorf("slot %d outside [%d, %d)", slot, tt.start, tt.end)
				}
				if (slot-tt.start)%SlotMinutes != 0 {
					t.Errorf("slot %d not aligned to %d-minute grid from %d", slot, SlotMinutes, tt.start)
				}
			}
		})
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     domain.TimeOfDay
		want                           bool
	}{
		{"disjoint", 540, 600, 660, 720, false},
		{"touching boundaries do not overlap", 540, 600, 600, 660, false},
		{"partial overlap", 540, 630, 600, 660, true},
		{"contained", 540, 720, 600, 660, true},
		{"identical", 540, 600, 540, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("RangesOverlap(%d, %d, %d, %d) = %v, want %v", tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// 대칭이어야 한다
			if got := RangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("RangesOverlap not symmetric for %v", tt)
			}
		})
	}
}
