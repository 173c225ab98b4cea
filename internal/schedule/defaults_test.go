package schedule

import (
	"testing"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

func TestDefaultTableForShift(t *testing.T) {
	tests := []struct {
		name     string
		table    DefaultTable
		category domain.ShiftCategory
		want     ShiftDefaults
	}{
		{"registration day shift", RegistrationDefaults, domain.ShiftDay, RegistrationDefaults.Day},
		{"registration night shift", RegistrationDefaults, domain.ShiftNight, RegistrationDefaults.Night},
		{"registration unknown falls back to legacy", RegistrationDefaults, "파트타임", legacyDefaults},
		{"registration empty falls back to legacy", RegistrationDefaults, "", legacyDefaults},
		{"weekly day shift", WeeklyDefaults, domain.ShiftDay, WeeklyDefaults.Day},
		{"weekly night shift", WeeklyDefaults, domain.ShiftNight, WeeklyDefaults.Night},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.ForShift(tt.category); got != tt.want {
				t.Errorf("ForShift(%q) = %+v, want %+v", tt.category, got, tt.want)
			}
		})
	}
}

func TestDefaultTableConstants(t *testing.T) {
	// 등록 화면과 주간 편집 화면의 기본값은 서로 다른 상수를 쓴다.
	// 의도가 확인되기 전까지는 통일하지 않는다.
	if got := RegistrationDefaults.Day.Work; got != (domain.TimeRange{Start: 540, End: 1080}) {
		t.Errorf("registration day work = %+v, want 09:00~18:00", got)
	}
	if got := WeeklyDefaults.Day.Work; got != (domain.TimeRange{Start: 540, End: 1260}) {
		t.Errorf("weekly day work = %+v, want 09:00~21:00", got)
	}
	if got := RegistrationDefaults.Night.Work; got != (domain.TimeRange{Start: 750, End: 1290}) {
		t.Errorf("registration night work = %+v, want 12:30~21:30", got)
	}
	if got := WeeklyDefaults.Night.Work; got != (domain.TimeRange{Start: 900, End: 1440}) {
		t.Errorf("weekly night work = %+v, want 15:00~24:00", got)
	}
}

func TestDefaultTableUnify(t *testing.T) {
	tests := []struct {
		name       string
		categories []domain.ShiftCategory
		want       ShiftDefaults
	}{
		{"all day shift", []domain.ShiftCategory{domain.ShiftDay, domain.ShiftDay}, WeeklyDefaults.Day},
		{"all night shift", []domain.ShiftCategory{domain.ShiftNight}, WeeklyDefaults.Night},
		{"mixed falls back to legacy", []domain.ShiftCategory{domain.ShiftDay, domain.ShiftNight}, legacyDefaults},
		{"unknown falls back to legacy", []domain.ShiftCategory{"계약직", "계약직"}, legacyDefaults},
		{"known mixed with unknown falls back to legacy", []domain.ShiftCategory{domain.ShiftDay, ""}, legacyDefaults},
		{"empty input falls back to legacy", nil, legacyDefaults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeeklyDefaults.Unify(tt.categories); got != tt.want {
				t.Errorf("Unify(%v) = %+v, want %+v", tt.categories, got, tt.want)
			}
		})
	}
}

func TestNewWorkingDay(t *testing.T) {
	day := RegistrationDefaults.Day.NewWorkingDay()

	if day.IsHoliday {
		t.Error("new working day should not be a holiday")
	}
	if day.WorkingHours != RegistrationDefaults.Day.Work {
		t.Errorf("working hours = %+v, want defaults", day.WorkingHours)
	}
	if day.PrimaryBreak.Name != DefaultPrimaryBreakName {
		t.Errorf("primary break name = %q, want %q", day.PrimaryBreak.Name, DefaultPrimaryBreakName)
	}
	if day.SecondaryBreaks == nil || len(day.SecondaryBreaks) != 0 {
		t.Errorf("secondary breaks = %v, want empty non-nil slice", day.SecondaryBreaks)
	}
}
