package domain

import (
	"time"
)

type Role string

const (
	RoleManager   Role = "관리자"
	RoleTrainer   Role = "트레이너"
	RoleFrontDesk Role = "데스크"
)

// CanEditOthersSchedule 관리자만 다른 직원의 스케줄을 편집할 수 있다
func (r Role) CanEditOthersSchedule() bool {
	return r == RoleManager
}

type ShiftCategory string

const (
	ShiftDay   ShiftCategory = "주간"
	ShiftNight ShiftCategory = "야간"
)

type Staff struct {
	ID            int64         `json:"id"`
	Username      string        `json:"username"`
	PasswordHash  string        `json:"-"`
	FullName      string        `json:"fullName"`
	Email         string        `json:"email"`
	Role          Role          `json:"role"`
	ShiftCategory ShiftCategory `json:"shiftCategory"`
	IsActive      bool          `json:"isActive"`
	CreatedAt     time.Time     `json:"createdAt"`
	Version       int32         `json:"-"`
}
