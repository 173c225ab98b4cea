package domain

// TimeOfDay 는 자정 이후 경과한 분이다. 범위는 [0, 1440].
// 시/분을 소수로 합쳐서 비교하면 반올림 오류가 생기므로 항상 정수 분으로 다룬다.
type TimeOfDay int

type TimeRange struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

func (r TimeRange) IsZero() bool {
	return r.Start == 0 && r.End == 0
}

type BreakInterval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
	Name  string    `json:"name"`
}

// IsZero 는 길이가 0인 휴게시간, 즉 "없음"을 뜻한다
func (b BreakInterval) IsZero() bool {
	return b.Start == 0 && b.End == 0
}

// DaySchedule 은 직원 한 명의 하루 치 스케줄 편집 상태다.
// 휴무일이면 근무시간과 휴게시간은 모두 0으로 비워진다.
type DaySchedule struct {
	IsHoliday       bool            `json:"isHoliday"`
	WorkingHours    TimeRange       `json:"workingHours"`
	PrimaryBreak    BreakInterval   `json:"primaryBreak"`
	SecondaryBreaks []BreakInterval `json:"secondaryBreaks"`
}

func (d *DaySchedule) Clone() *DaySchedule {
	clone := &DaySchedule{
		IsHoliday:       d.IsHoliday,
		WorkingHours:    d.WorkingHours,
		PrimaryBreak:    d.PrimaryBreak,
		SecondaryBreaks: CloneBreaks(d.SecondaryBreaks),
	}
	return clone
}

// WeekSchedule 은 배정 주의 일곱 요일에 대한 하루 스케줄 모음이다.
// 저장된 실체가 따로 있는 것이 아니라 편집 중에만 메모리에 존재한다.
type WeekSchedule map[Weekday]*DaySchedule

func (w WeekSchedule) Clone() WeekSchedule {
	clone := make(WeekSchedule, len(w))
	for wd, day := range w {
		clone[wd] = day.Clone()
	}
	return clone
}

func CloneBreaks(breaks []BreakInterval) []BreakInterval {
	clone := make([]BreakInterval, len(breaks))
	copy(clone, breaks)
	return clone
}
