package schedule

import (
	"sort"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

// Boundary 는 구간의 양 끝 중 어느 쪽을 고치는지 가리킨다
type Boundary string

const (
	BoundaryStart Boundary = "start"
	BoundaryEnd   Boundary = "end"
)

// ToggleHoliday 는 하루의 휴무 여부를 뒤집는다.
// 휴무로 바꾸면 근무시간과 휴게시간을 모두 0으로 비운다(기본 휴게시간의 이름은 남긴다).
// 휴무를 해제할 때는 값이 0으로 비워진 경우에만 기본값을 복원한다. 사용자가 이전에
// 입력해 둔 값이 남아 있으면 그대로 유지해서, 휴무 토글을 반복해도 입력이 날아가지 않는다.
func ToggleHoliday(d *domain.DaySchedule, defaults ShiftDefaults) {
	if !d.IsHoliday {
		d.IsHoliday = true
		d.WorkingHours = domain.TimeRange{}
		d.PrimaryBreak = domain.BreakInterval{Name: d.PrimaryBreak.Name}
		d.SecondaryBreaks = make([]domain.BreakInterval, 0)
		return
	}

	d.IsHoliday = false
	if d.WorkingHours.IsZero() {
		d.WorkingHours = defaults.Work
	}
	if d.PrimaryBreak.IsZero() {
		name := d.PrimaryBreak.Name
		if name == "" {
			name = defaults.PrimaryBreak.Name
		}
		d.PrimaryBreak = domain.BreakInterval{
			Start: defaults.PrimaryBreak.Start,
			End:   defaults.PrimaryBreak.End,
			Name:  name,
		}
	}
}

// SetWorkingHoursField 는 근무시간의 한쪽 경계를 바꾼다. 반대쪽 경계와 최소 30분
// 간격이 유지되도록 바꾼 쪽을 되민다(시작은 0, 종료는 24:00이 한계).
// 반환되는 위반 목록은 경고용이며 수정 자체를 되돌리지는 않는다. 저장 시점에
// ValidateWeek 가 같은 검사를 차단 조건으로 다시 수행한다.
func SetWorkingHoursField(day domain.Weekday, d *domain.DaySchedule, field Boundary, value domain.TimeOfDay) []Violation {
	// 휴무일의 값은 0으로 비워진 상태를 유지해야 한다
	if d.IsHoliday {
		return nil
	}

	switch field {
	case BoundaryStart:
		d.WorkingHours.Start = value
		if d.WorkingHours.Start >= d.WorkingHours.End {
			d.WorkingHours.Start = d.WorkingHours.End - SlotMinutes
			if d.WorkingHours.Start < 0 {
				d.WorkingHours.Start = 0
			}
		}
	case BoundaryEnd:
		d.WorkingHours.End = value
		if d.WorkingHours.End <= d.WorkingHours.Start {
			d.WorkingHours.End = d.WorkingHours.Start + SlotMinutes
			if d.WorkingHours.End > MinutesPerDay {
				d.WorkingHours.End = MinutesPerDay
			}
		}
	}

	return CheckDay(day, d)
}

// SetPrimaryBreakField 는 기본 휴게시간의 한쪽 경계를 바꾼다.
// 근무시간과 같은 30분 최소 간격 규칙을 적용하고, 경고용 위반 목록을 돌려준다.
func SetPrimaryBreakField(day domain.Weekday, d *domain.DaySchedule, field Boundary, value domain.TimeOfDay) []Violation {
	if d.IsHoliday {
		return nil
	}

	switch field {
	case BoundaryStart:
		d.PrimaryBreak.Start = value
		if d.PrimaryBreak.Start >= d.PrimaryBreak.End {
			d.PrimaryBreak.Start = d.PrimaryBreak.End - SlotMinutes
			if d.PrimaryBreak.Start < 0 {
				d.PrimaryBreak.Start = 0
			}
		}
	case BoundaryEnd:
		d.PrimaryBreak.End = value
		if d.PrimaryBreak.End <= d.PrimaryBreak.Start {
			d.PrimaryBreak.End = d.PrimaryBreak.Start + SlotMinutes
			if d.PrimaryBreak.End > MinutesPerDay {
				d.PrimaryBreak.End = MinutesPerDay
			}
		}
	}

	return CheckDay(day, d)
}

// ToggleSlot 은 휴게시간 격자에서 [slot, slot+30) 칸 하나를 토글한다.
//   - 기본 휴게시간 내부의 칸은 토글할 수 없다(ErrPrimaryBreakSlot).
//   - 기존 휴게시간 내부의 칸이면 그 휴게시간을 제거하거나, 칸 앞뒤로 남는 구간만큼
//     이름을 유지한 채 분할한다.
//   - 빈 칸이면 경계를 맞댄 휴게시간이 정확히 하나일 때 그 휴게시간을 늘려서 흡수하고,
//     아니면 한 칸짜리 휴게시간을 새로 만든다.
//
// 어떤 순서로 토글해도 휴게시간끼리 겹치는 결과는 만들어지지 않는다.
func ToggleSlot(d *domain.DaySchedule, slot domain.TimeOfDay) error {
	if d.IsHoliday {
		return nil
	}

	slotEnd := slot + SlotMinutes

	if !d.PrimaryBreak.IsZero() && slot >= d.PrimaryBreak.Start && slotEnd <= d.PrimaryBreak.End {
		return ErrPrimaryBreakSlot
	}

	for i, b := range d.SecondaryBreaks {
		if slot < b.Start || slotEnd > b.End {
			continue
		}

		// 칸을 뺀 앞뒤 구간만 남긴다. 한 칸짜리 휴게시간이면 통째로 없어진다.
		replaced := make([]domain.BreakInterval, 0, 2)
		if b.Start < slot {
			replaced = append(replaced, domain.BreakInterval{Start: b.Start, End: slot, Name: b.Name})
		}
		if slotEnd < b.End {
			replaced = append(replaced, domain.BreakInterval{Start: slotEnd, End: b.End, Name: b.Name})
		}

		rest := append(replaced, d.SecondaryBreaks[i+1:]...)
		d.SecondaryBreaks = append(d.SecondaryBreaks[:i], rest...)
		sortBreaks(d.SecondaryBreaks)
		return nil
	}

	adjacentIndex := -1
	adjacentCount := 0
	for i, b := range d.SecondaryBreaks {
		if b.End == slot || b.Start == slotEnd {
			adjacentIndex = i
			adjacentCount++
		}
	}

	if adjacentCount == 1 {
		b := &d.SecondaryBreaks[adjacentIndex]
		if slot < b.Start {
			b.Start = slot
		}
		if slotEnd > b.End {
			b.End = slotEnd
		}
	} else {
		d.SecondaryBreaks = append(d.SecondaryBreaks, domain.BreakInterval{
			Start: slot,
			End:   slotEnd,
			Name:  DefaultSecondaryBreakName,
		})
	}

	sortBreaks(d.SecondaryBreaks)
	return nil
}

func sortBreaks(breaks []domain.BreakInterval) {
	sort.Slice(breaks, func(i, j int) bool {
		return breaks[i].Start < breaks[j].Start
	})
}

// CheckDay 는 하루 스케줄의 겹침/포함 규칙을 검사한 위반 목록을 돌려준다.
// 편집 중에는 경고로만 쓰이고, 저장 시점에는 같은 결과가 저장을 차단한다.
// 휴무일은 검사하지 않는다.
func CheckDay(day domain.Weekday, d *domain.DaySchedule) []Violation {
	if d.IsHoliday {
		return nil
	}

	violations := make([]Violation, 0)
	work := d.WorkingHours

	if work.Start >= work.End {
		violations = append(violations, Violation{Day: day, Kind: ViolationWorkingHoursOrder})
	}

	if !d.PrimaryBreak.IsZero() {
		if d.PrimaryBreak.Start < work.Start || d.PrimaryBreak.End > work.End {
			violations = append(violations, Violation{
				Day:   day,
				Kind:  ViolationPrimaryBreakOutsideWork,
				Break: d.PrimaryBreak,
			})
		}
		for _, b := range d.SecondaryBreaks {
			if RangesOverlap(d.PrimaryBreak.Start, d.PrimaryBreak.End, b.Start, b.End) {
				other := b
				violations = append(violations, Violation{
					Day:   day,
					Kind:  ViolationPrimaryOverlapsSecondary,
					Break: d.PrimaryBreak,
					Other: &other,
				})
			}
		}
	}

	for i, b := range d.SecondaryBreaks {
		if b.Start < work.Start || b.End > work.End {
			violations = append(violations, Violation{
				Day:   day,
				Kind:  ViolationSecondaryBreakOutside,
				Break: b,
			})
		}
		for _, other := range d.SecondaryBreaks[i+1:] {
			if RangesOverlap(b.Start, b.End, other.Start, other.End) {
				o := other
				violations = append(violations, Violation{
					Day:   day,
					Kind:  ViolationSecondaryBreaksOverlap,
					Break: b,
					Other: &o,
				})
			}
		}
	}

	return violations
}
