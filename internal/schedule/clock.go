package schedule

import (
	"fmt"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

const (
	// SlotMinutes 는 휴게시간 격자의 한 칸 크기다
	SlotMinutes domain.TimeOfDay = 30
	// MinutesPerDay 는 하루의 끝(24:00)이다
	MinutesPerDay domain.TimeOfDay = 24 * 60
)

func ToMinutes(hour, minute int) domain.TimeOfDay {
	return domain.TimeOfDay(hour*60 + minute)
}

func FromMinutes(t domain.TimeOfDay) (hour, minute int) {
	return int(t) / 60, int(t) % 60
}

// FormatClock 은 사용자 메시지에 쓸 "HH:MM" 표기를 돌려준다
func FormatClock(t domain.TimeOfDay) string {
	hour, minute := FromMinutes(t)
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// GenerateSlots 는 [start, end) 범위 안의 30분 격자 시작 시각들을 돌려준다.
// start >= end 이면 빈 목록을 돌려준다.
func GenerateSlots(start, end domain.TimeOfDay) []domain.TimeOfDay {
	slots := make([]domain.TimeOfDay, 0)
	for slot := start; slot < end; slot += SlotMinutes {
		slots = append(slots, slot)
	}
	return slots
}

// RangesOverlap 은 두 반개구간 [aStart, aEnd) 와 [bStart, bEnd) 가 겹치는지 확인한다.
// 끝 시각은 포함하지 않으므로 경계가 맞닿기만 한 구간은 겹치지 않는 것으로 본다.
func RangesOverlap(aStart, aEnd, bStart, bEnd domain.TimeOfDay) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}
