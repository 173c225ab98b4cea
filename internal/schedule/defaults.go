package schedule

import (
	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

const (
	// DefaultPrimaryBreakName 은 기본 휴게시간의 이름이다
	DefaultPrimaryBreakName = "점심시간"
	// DefaultSecondaryBreakName 은 격자에서 새로 만든 휴게시간에 붙는 이름이다
	DefaultSecondaryBreakName = "휴게시간"
)

// ShiftDefaults 는 근무 형태에서 파생되는 하루 스케줄 기본값이다
type ShiftDefaults struct {
	Work         domain.TimeRange
	PrimaryBreak domain.BreakInterval
}

// DefaultTable 은 근무 형태별 기본값 표다. 알 수 없거나 비어 있는 근무 형태는
// Legacy 로 떨어진다.
type DefaultTable struct {
	Day    ShiftDefaults
	Night  ShiftDefaults
	Legacy ShiftDefaults
}

// legacyDefaults 는 주간 휴무 모달이 쓰던 주간조 값이다. 근무 형태를 알 수 없을 때
// 두 표 모두 이 값으로 떨어진다.
var legacyDefaults = ShiftDefaults{
	Work:         domain.TimeRange{Start: 9 * 60, End: 21 * 60},
	PrimaryBreak: domain.BreakInterval{Start: 12 * 60, End: 13 * 60, Name: DefaultPrimaryBreakName},
}

// RegistrationDefaults 는 신규 직원 등록 화면이 쓰는 기본값이다.
var RegistrationDefaults = DefaultTable{
	Day: ShiftDefaults{
		Work:         domain.TimeRange{Start: 9 * 60, End: 18 * 60},
		PrimaryBreak: domain.BreakInterval{Start: 14 * 60, End: 15 * 60, Name: DefaultPrimaryBreakName},
	},
	Night: ShiftDefaults{
		Work:         domain.TimeRange{Start: 12*60 + 30, End: 21*60 + 30},
		PrimaryBreak: domain.BreakInterval{Start: 16 * 60, End: 17 * 60, Name: DefaultPrimaryBreakName},
	},
	Legacy: legacyDefaults,
}

// WeeklyDefaults 는 주간 휴무 일괄 편집이 쓰는 기본값이다.
// 등록 화면과 상수가 다른 것이 의도인지 확인되지 않아 통일하지 않고 호출처가 표를 고른다.
var WeeklyDefaults = DefaultTable{
	Day: ShiftDefaults{
		Work:         domain.TimeRange{Start: 9 * 60, End: 21 * 60},
		PrimaryBreak: domain.BreakInterval{Start: 12 * 60, End: 13 * 60, Name: DefaultPrimaryBreakName},
	},
	Night: ShiftDefaults{
		Work:         domain.TimeRange{Start: 15 * 60, End: 24 * 60},
		PrimaryBreak: domain.BreakInterval{Start: 18 * 60, End: 19 * 60, Name: DefaultPrimaryBreakName},
	},
	Legacy: legacyDefaults,
}

func (t DefaultTable) ForShift(category domain.ShiftCategory) ShiftDefaults {
	switch category {
	case domain.ShiftDay:
		return t.Day
	case domain.ShiftNight:
		return t.Night
	default:
		return t.Legacy
	}
}

// Unify 는 일괄 편집 대상 직원들의 근무 형태를 하나의 기본값으로 합친다.
// 전원이 같은 근무 형태면 그 형태의 기본값을, 섞여 있거나 알 수 없으면 Legacy 를 돌려준다.
func (t DefaultTable) Unify(categories []domain.ShiftCategory) ShiftDefaults {
	var unified domain.ShiftCategory
	for _, category := range categories {
		if category != domain.ShiftDay && category != domain.ShiftNight {
			return t.Legacy
		}
		if unified == "" {
			unified = category
			continue
		}
		if unified != category {
			return t.Legacy
		}
	}
	if unified == "" {
		return t.Legacy
	}
	return t.ForShift(unified)
}

// NewWorkingDay 는 기본값으로 채운 근무일 하루 스케줄을 만든다
func (d ShiftDefaults) NewWorkingDay() *domain.DaySchedule {
	return &domain.DaySchedule{
		IsHoliday:       false,
		WorkingHours:    d.Work,
		PrimaryBreak:    d.PrimaryBreak,
		SecondaryBreaks: make([]domain.BreakInterval, 0),
	}
}
