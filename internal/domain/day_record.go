package domain

import (
	"time"
)

// StaffDayRecord 는 실제로 저장되는 단위인 (직원, 날짜) 하루 치 레코드다.
// 기본 휴게시간은 BreakTimes 의 첫 번째 항목으로 저장되고 읽을 때 같은 규칙으로 복원된다.
type StaffDayRecord struct {
	ID           int64           `json:"id"`
	StaffID      int64           `json:"staffId"`
	Date         time.Time       `json:"date"`
	IsHoliday    bool            `json:"isHoliday"`
	WorkingHours TimeRange       `json:"workingHours"`
	BreakTimes   []BreakInterval `json:"breakTimes"`
	CreatedAt    time.Time       `json:"createdAt"`
	Version      int32           `json:"-"`
}
