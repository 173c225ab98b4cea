package schedule

import (
	"time"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

// EditSession 은 한 번의 편집 세션이 소유하는 주 스케줄 상태다.
// 모달이나 등록 폼 인스턴스 하나가 세션 하나를 가지며, 세션 간에 상태를 공유하지
// 않는다. 같은 직원의 주를 두 세션이 동시에 저장하면 날짜 단위로 마지막 저장이 이긴다.
type EditSession struct {
	anchor   time.Time
	defaults ShiftDefaults
	week     domain.WeekSchedule
	staffIDs []int64
}

// NewEditSession 은 주어진 주 스케줄로 편집 세션을 연다. 전달받은 주는 깊은 복사로
// 가져가므로 호출자가 이후에 원본을 고쳐도 세션에는 영향이 없다.
func NewEditSession(anchor time.Time, defaults ShiftDefaults, week domain.WeekSchedule, staffIDs ...int64) *EditSession {
	ids := make([]int64, len(staffIDs))
	copy(ids, staffIDs)

	return &EditSession{
		anchor:   anchor,
		defaults: defaults,
		week:     week.Clone(),
		staffIDs: ids,
	}
}

func (s *EditSession) Anchor() time.Time {
	return s.anchor
}

func (s *EditSession) Week() domain.WeekSchedule {
	return s.week
}

func (s *EditSession) Day(wd domain.Weekday) *domain.DaySchedule {
	return s.week[wd]
}

func (s *EditSession) ToggleHoliday(wd domain.Weekday) {
	if day, exists := s.week[wd]; exists {
		ToggleHoliday(day, s.defaults)
	}
}

func (s *EditSession) SetWorkingHoursField(wd domain.Weekday, field Boundary, value domain.TimeOfDay) []Violation {
	day, exists := s.week[wd]
	if !exists {
		return nil
	}
	return SetWorkingHoursField(wd, day, field, value)
}

func (s *EditSession) SetPrimaryBreakField(wd domain.Weekday, field Boundary, value domain.TimeOfDay) []Violation {
	day, exists := s.week[wd]
	if !exists {
		return nil
	}
	return SetPrimaryBreakField(wd, day, field, value)
}

func (s *EditSession) ToggleSlot(wd domain.Weekday, slot domain.TimeOfDay) error {
	day, exists := s.week[wd]
	if !exists {
		return nil
	}
	return ToggleSlot(day, slot)
}

// ApplyWorkingHoursAndBreaksToAll 은 원본 요일의 근무시간과 모든 휴게시간을
// 휴무가 아닌 다른 요일 전부에 복사한다. 휴무일은 건드리지 않는다.
func (s *EditSession) ApplyWorkingHoursAndBreaksToAll(source domain.Weekday) {
	src, exists := s.week[source]
	if !exists {
		return
	}

	for _, wd := range domain.AnchoredWeek {
		day, exists := s.week[wd]
		if !exists || wd == source || day.IsHoliday {
			continue
		}
		day.WorkingHours = src.WorkingHours
		day.PrimaryBreak = src.PrimaryBreak
		day.SecondaryBreaks = domain.CloneBreaks(src.SecondaryBreaks)
	}
}

// ApplyPrimaryBreakToAll 은 원본 요일의 기본 휴게시간만 다른 근무일에 복사한다
func (s *EditSession) ApplyPrimaryBreakToAll(source domain.Weekday) {
	src, exists := s.week[source]
	if !exists {
		return
	}

	for _, wd := range domain.AnchoredWeek {
		day, exists := s.week[wd]
		if !exists || wd == source || day.IsHoliday {
			continue
		}
		day.PrimaryBreak = src.PrimaryBreak
	}
}

// ApplySecondaryBreaksToAll 은 원본 요일의 추가 휴게시간 목록만 다른 근무일에
// 복사한다. 복사본은 요일마다 독립이라 이후 수정이 서로에게 번지지 않는다.
func (s *EditSession) ApplySecondaryBreaksToAll(source domain.Weekday) {
	src, exists := s.week[source]
	if !exists {
		return
	}

	for _, wd := range domain.AnchoredWeek {
		day, exists := s.week[wd]
		if !exists || wd == source || day.IsHoliday {
			continue
		}
		day.SecondaryBreaks = domain.CloneBreaks(src.SecondaryBreaks)
	}
}

func (s *EditSession) Validate() []Violation {
	return ValidateWeek(s.week)
}

// Save 는 주 전체를 검증한 뒤 세션의 모든 대상 직원에 대해 하루 레코드 일곱 건을
// 직원당 한 번의 일괄 호출로 저장한다. 검증 위반이 하나라도 있으면 아무것도 저장하지
// 않고 ValidationFailedError 를 돌려주며, 세션의 주 스케줄은 바뀌지 않는다.
// 어느 직원의 저장이 실패하면 StaffSaveError 로 감싸서 즉시 돌려준다. 이미 성공한
// 앞 직원들의 저장은 되돌리지 않으므로 반환된 레코드 목록으로 확인해야 한다.
func (s *EditSession) Save(writer DayRecordWriter) ([]*domain.StaffDayRecord, error) {
	if violations := s.Validate(); len(violations) > 0 {
		return nil, &ValidationFailedError{Violations: violations}
	}

	saved := make([]*domain.StaffDayRecord, 0, len(s.staffIDs)*len(domain.AnchoredWeek))
	for _, staffID := range s.staffIDs {
		records := ProjectWeek(staffID, s.anchor, s.week)
		if err := writer.SaveStaffDayRecords(records); err != nil {
			return saved, &StaffSaveError{StaffID: staffID, Err: err}
		}
		saved = append(saved, records...)
	}

	return saved, nil
}
