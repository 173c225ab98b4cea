package domain

import (
	"fmt"
	"time"
)

// Weekday 는 배정 주(토요일~금요일) 안에서의 요일이다.
// 로스터 주는 금요일에 마감되므로 달력 주(월~일)가 아니라 토요일을 0으로 둔다.
// 상수 선언 순서가 곧 배정 주 안에서의 오프셋이다.
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

// AnchoredWeek 는 배정 주의 요일을 순서대로 담은 목록이다
var AnchoredWeek = [7]Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayNames = [7]string{"saturday", "sunday", "monday", "tuesday", "wednesday", "thursday", "friday"}

var weekdayDisplayNames = [7]string{"토요일", "일요일", "월요일", "화요일", "수요일", "목요일", "금요일"}

func (d Weekday) Valid() bool {
	return d >= Saturday && d <= Friday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// DisplayName 은 사용자에게 보여줄 한국어 요일 이름을 돌려준다
func (d Weekday) DisplayName() string {
	if !d.Valid() {
		return d.String()
	}
	return weekdayDisplayNames[d]
}

func (d Weekday) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("잘못된 요일: %d", int(d))
	}
	return []byte(weekdayNames[d]), nil
}

func (d *Weekday) UnmarshalText(text []byte) error {
	for i, name := range weekdayNames {
		if string(text) == name {
			*d = Weekday(i)
			return nil
		}
	}
	return fmt.Errorf("잘못된 요일: %s", string(text))
}

// WeekdayOf 는 표준 라이브러리의 요일을 배정 주 요일로 변환한다
func WeekdayOf(wd time.Weekday) Weekday {
	// time.Sunday == 0 이므로 토요일이 0이 되도록 한 칸 민다
	return Weekday((int(wd) + 1) % 7)
}
