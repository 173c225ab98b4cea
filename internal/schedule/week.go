package schedule

import (
	"time"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

// Direction 은 기준일에서 어느 쪽의 배정 주를 찾을지 가리킨다
type Direction string

const (
	// WeekUpcoming 은 다가오는 토요일이다. 기준일이 토요일이면 7일 뒤 토요일을 고른다.
	WeekUpcoming Direction = "upcoming"
	// WeekPast 는 기준일 이전의 가장 가까운 토요일이다. 기준일이 토요일이면 그 날이다.
	WeekPast Direction = "past"
)

// DayRecordReader 는 (직원, 날짜) 하루 레코드를 읽는 저장소 협력자다.
// 레코드가 없으면 (nil, nil) 을 돌려줘야 한다.
type DayRecordReader interface {
	GetStaffDayRecord(staffID int64, date time.Time) (*domain.StaffDayRecord, error)
}

// DayRecordRangeReader 는 기간 단위 조회를 지원하는 저장소가 선택적으로 구현한다.
// LoadWeek 가 이 인터페이스를 감지하면 일곱 번의 단건 조회 대신 한 번의 기간 조회를 쓴다.
type DayRecordRangeReader interface {
	GetStaffDayRecordsInRange(staffID int64, from, to time.Time) ([]*domain.StaffDayRecord, error)
}

// DayRecordWriter 는 하루 레코드 묶음을 저장하는 저장소 협력자다.
// 일곱 건을 개별 호출하지 않고 한 번에 넘기는 것은 저장소가 원자적으로 처리할 기회를
// 주기 위해서다. 저장된 레코드에는 저장소가 부여한 id 등이 채워져 돌아온다.
type DayRecordWriter interface {
	SaveStaffDayRecords(records []*domain.StaffDayRecord) error
}

// ResolveAssignableWeekStart 는 기준일이 속하거나 다가오는 배정 주의 시작 토요일을
// 계산한다. 시각 정보는 버린다.
func ResolveAssignableWeekStart(reference time.Time, direction Direction) time.Time {
	date := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())
	daysSinceSaturday := int(domain.WeekdayOf(date.Weekday()))

	if direction == WeekPast {
		return date.AddDate(0, 0, -daysSinceSaturday)
	}
	return date.AddDate(0, 0, 7-daysSinceSaturday)
}

// DateOf 는 배정 주 시작일로부터 해당 요일의 달력 날짜를 구한다.
// 요일 상수의 선언 순서가 곧 토요일로부터의 오프셋이므로 분기 없이 더하기만 한다.
func DateOf(anchor time.Time, day domain.Weekday) time.Time {
	return anchor.AddDate(0, 0, int(day))
}

// DefaultWeekOptions 는 기본 주 구성을 제어한다
type DefaultWeekOptions struct {
	Table    DefaultTable
	Category domain.ShiftCategory
	// ForceHolidayThrough 가 설정되면 그 날짜까지(포함)의 요일을 휴무로 강제한다.
	// 신규 직원 등록에서 이미 지나간 날에 근무가 잡히지 않도록 하는 데 쓴다.
	ForceHolidayThrough time.Time
}

// DefaultWeek 는 저장된 레코드가 하나도 없을 때의 기본 주를 만든다.
// 토요일과 일요일은 기본으로 휴무다.
func DefaultWeek(anchor time.Time, opts DefaultWeekOptions) domain.WeekSchedule {
	defaults := opts.Table.ForShift(opts.Category)
	week := make(domain.WeekSchedule, len(domain.AnchoredWeek))

	for _, wd := range domain.AnchoredWeek {
		day := defaults.NewWorkingDay()
		if wd == domain.Saturday || wd == domain.Sunday {
			ToggleHoliday(day, defaults)
		}
		if !opts.ForceHolidayThrough.IsZero() && !day.IsHoliday && !DateOf(anchor, wd).After(opts.ForceHolidayThrough) {
			ToggleHoliday(day, defaults)
		}
		week[wd] = day
	}

	return week
}

// LoadWeek 는 배정 주의 일곱 날짜에 대한 레코드를 읽어 주 스케줄을 복원한다.
// 레코드가 하나도 없으면 기본 주를 만들고 existed=false 를 돌려준다.
// 복원할 때는 breakTimes 의 첫 항목을 기본 휴게시간으로 본다. breakTimes 가 비어
// 있으면 근무 형태 기본값의 기본 휴게시간으로 대신한다.
func LoadWeek(reader DayRecordReader, staffID int64, anchor time.Time, opts DefaultWeekOptions) (domain.WeekSchedule, bool, error) {
	records := make(map[domain.Weekday]*domain.StaffDayRecord, len(domain.AnchoredWeek))

	if ranger, ok := reader.(DayRecordRangeReader); ok {
		found, err := ranger.GetStaffDayRecordsInRange(staffID, anchor, DateOf(anchor, domain.Friday))
		if err != nil {
			return nil, false, err
		}
		for _, record := range found {
			records[domain.WeekdayOf(record.Date.Weekday())] = record
		}
	} else {
		for _, wd := range domain.AnchoredWeek {
			record, err := reader.GetStaffDayRecord(staffID, DateOf(anchor, wd))
			if err != nil {
				return nil, false, err
			}
			if record != nil {
				records[wd] = record
			}
		}
	}

	if len(records) == 0 {
		return DefaultWeek(anchor, opts), false, nil
	}

	defaults := opts.Table.ForShift(opts.Category)
	week := make(domain.WeekSchedule, len(domain.AnchoredWeek))

	for _, wd := range domain.AnchoredWeek {
		record, exists := records[wd]
		if !exists {
			// 주의 일부 날짜만 저장된 경우: 없는 날은 기본값으로 채운다
			day := defaults.NewWorkingDay()
			if wd == domain.Saturday || wd == domain.Sunday {
				ToggleHoliday(day, defaults)
			}
			week[wd] = day
			continue
		}

		if record.IsHoliday {
			week[wd] = &domain.DaySchedule{
				IsHoliday:       true,
				PrimaryBreak:    domain.BreakInterval{Name: defaults.PrimaryBreak.Name},
				SecondaryBreaks: make([]domain.BreakInterval, 0),
			}
			continue
		}

		day := &domain.DaySchedule{
			IsHoliday:    false,
			WorkingHours: record.WorkingHours,
		}
		if len(record.BreakTimes) > 0 {
			day.PrimaryBreak = record.BreakTimes[0]
			day.SecondaryBreaks = domain.CloneBreaks(record.BreakTimes[1:])
		} else {
			day.PrimaryBreak = defaults.PrimaryBreak
			day.SecondaryBreaks = make([]domain.BreakInterval, 0)
		}
		week[wd] = day
	}

	return week, true, nil
}

// ValidateWeek 는 저장 직전 검증이다. 휴무가 아닌 모든 요일에 대해 겹침/포함 검사를
// 수행하고 발견된 위반을 빠짐없이 모아서 돌려준다. 빈 목록이면 저장할 수 있다.
func ValidateWeek(week domain.WeekSchedule) []Violation {
	violations := make([]Violation, 0)
	for _, wd := range domain.AnchoredWeek {
		day, exists := week[wd]
		if !exists {
			continue
		}
		violations = append(violations, CheckDay(wd, day)...)
	}
	return violations
}

// ProjectWeek 는 주 스케줄을 실제로 저장되는 일곱 건의 하루 레코드로 펼친다.
// 휴무일은 근무시간 0, 휴게시간 없음으로 내보내고, 근무일은 기본 휴게시간을
// breakTimes 맨 앞에 붙인다(길이 0인 기본 휴게시간은 뺀다). 순수 함수이며
// 저장소 호출은 하지 않는다.
func ProjectWeek(staffID int64, anchor time.Time, week domain.WeekSchedule) []*domain.StaffDayRecord {
	records := make([]*domain.StaffDayRecord, 0, len(domain.AnchoredWeek))

	for _, wd := range domain.AnchoredWeek {
		record := &domain.StaffDayRecord{
			StaffID: staffID,
			Date:    DateOf(anchor, wd),
		}

		day, exists := week[wd]
		if !exists || day.IsHoliday {
			record.IsHoliday = true
			record.BreakTimes = make([]domain.BreakInterval, 0)
			records = append(records, record)
			continue
		}

		record.WorkingHours = day.WorkingHours
		breaks := make([]domain.BreakInterval, 0, 1+len(day.SecondaryBreaks))
		if !day.PrimaryBreak.IsZero() {
			breaks = append(breaks, day.PrimaryBreak)
		}
		breaks = append(breaks, day.SecondaryBreaks...)
		record.BreakTimes = breaks

		records = append(records, record)
	}

	return records
}
