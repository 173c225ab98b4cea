package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

// ErrPrimaryBreakSlot 은 기본 휴게시간 내부의 격자 칸을 토글하려고 할 때 반환된다.
// 기본 휴게시간은 시작/종료 시각 선택으로만 바꿀 수 있다.
var ErrPrimaryBreakSlot = errors.New("기본 휴게시간은 격자에서 수정할 수 없습니다. 시작/종료 시간을 변경해 주세요")

type ViolationKind string

const (
	ViolationWorkingHoursOrder        ViolationKind = "working_hours_order"
	ViolationPrimaryBreakOutsideWork  ViolationKind = "primary_break_outside_working_hours"
	ViolationSecondaryBreakOutside    ViolationKind = "secondary_break_outside_working_hours"
	ViolationPrimaryOverlapsSecondary ViolationKind = "primary_break_overlaps_secondary_break"
	ViolationSecondaryBreaksOverlap   ViolationKind = "secondary_breaks_overlap"
)

// Violation 은 하루 스케줄에서 발견된 규칙 위반 하나를 나타낸다.
// UI 계층이 직접 문구를 만들 수 있도록 종류와 위치를 구조화해서 담고,
// Error() 는 요일 이름이 앞에 붙은 한국어 문구를 돌려준다.
type Violation struct {
	Day   domain.Weekday       `json:"day"`
	Kind  ViolationKind        `json:"kind"`
	Break domain.BreakInterval `json:"break"`
	// Other 는 겹침 위반에서 상대 구간이다
	Other *domain.BreakInterval `json:"other,omitempty"`
}

func formatInterval(b domain.BreakInterval) string {
	return fmt.Sprintf("%s(%s~%s)", b.Name, FormatClock(b.Start), FormatClock(b.End))
}

func (v Violation) Error() string {
	switch v.Kind {
	case ViolationWorkingHoursOrder:
		return fmt.Sprintf("%s: 근무 종료 시간이 시작 시간보다 빠릅니다", v.Day.DisplayName())
	case ViolationPrimaryBreakOutsideWork:
		return fmt.Sprintf("%s: 기본 %s이 근무시간을 벗어났습니다", v.Day.DisplayName(), formatInterval(v.Break))
	case ViolationSecondaryBreakOutside:
		return fmt.Sprintf("%s: %s이 근무시간을 벗어났습니다", v.Day.DisplayName(), formatInterval(v.Break))
	case ViolationPrimaryOverlapsSecondary:
		return fmt.Sprintf("%s: 기본 %s이 %s과 겹칩니다", v.Day.DisplayName(), formatInterval(v.Break), formatInterval(*v.Other))
	case ViolationSecondaryBreaksOverlap:
		return fmt.Sprintf("%s: %s이 %s과 겹칩니다", v.Day.DisplayName(), formatInterval(v.Break), formatInterval(*v.Other))
	default:
		return fmt.Sprintf("%s: 스케줄 규칙 위반", v.Day.DisplayName())
	}
}

// ValidationFailedError 는 저장 직전 검증에서 발견된 모든 위반을 담는다.
// 첫 번째 위반만 잘라서 보고하지 않는다.
type ValidationFailedError struct {
	Violations []Violation
}

func (e *ValidationFailedError) Error() string {
	messages := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		messages[i] = v.Error()
	}
	return strings.Join(messages, "\n")
}

// StaffSaveError 는 특정 직원의 주간 레코드 일괄 저장이 실패했음을 나타낸다.
// 같은 저장 배치의 다른 직원이 함께 실패했는지는 보장하지 않는다.
type StaffSaveError struct {
	StaffID int64
	Err     error
}

func (e *StaffSaveError) Error() string {
	return fmt.Sprintf("직원 %d 의 주간 스케줄 저장 실패: %v", e.StaffID, e.Err)
}

func (e *StaffSaveError) Unwrap() error {
	return e.Err
}
