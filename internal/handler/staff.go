package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/schedule"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/utils"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetAllStaffInfo(w http.ResponseWriter, r *http.Request) {
	staffs, err := h.repository.GetAllStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "직원 목록 조회 성공", staffs)
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username      string `json:"username" validate:"required"`
		FullName      string `json:"fullName" validate:"required"`
		Email         string `json:"email" validate:"required,email"`
		Role          string `json:"role" validate:"required,oneof=관리자 트레이너 데스크"`
		ShiftCategory string `json:"shiftCategory" validate:"required,oneof=주간 야간"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 임시 비밀번호 생성
	password := utils.GenerateRandomPassword(h.config.NewStaff.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	staff := &domain.Staff{
		Username:      req.Username,
		PasswordHash:  string(hashedPassword),
		FullName:      req.FullName,
		Email:         req.Email,
		Role:          domain.Role(req.Role),
		ShiftCategory: domain.ShiftCategory(req.ShiftCategory),
	}

	if err := h.repository.CreateStaff(staff); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "staff_username_key":
				h.badRequest(w, r, errors.New("이미 사용 중인 아이디입니다"))
			case pgErr.ConstraintName == "staff_email_key":
				h.badRequest(w, r, errors.New("이미 사용 중인 메일 주소입니다"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 첫 주 스케줄을 기본값으로 채워서 저장한다. 주 중간에 입사하면 이미 지나간
	// 요일은 휴무로 기록된다.
	now := time.Now()
	anchor := schedule.ResolveAssignableWeekStart(now, schedule.WeekPast)
	week := schedule.DefaultWeek(anchor, schedule.DefaultWeekOptions{
		Table:               schedule.RegistrationDefaults,
		Category:            staff.ShiftCategory,
		ForceHolidayThrough: now,
	})

	session := schedule.NewEditSession(anchor, schedule.RegistrationDefaults.ForShift(staff.ShiftCategory), week, staff.ID)
	if _, err := session.Save(h.repository); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 임시 비밀번호를 메일로 보낸다
	mailMessage := domain.MailMessage{
		Type: "create_staff",
		To:   staff.Email,
		Data: domain.CreateStaffMailData{
			FullName: req.FullName,
			Username: req.Username,
			Password: password,
		},
	}

	if err := h.publishMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "직원을 등록했습니다", staff)
}

func (h *Handler) GetStaffInfo(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)
	h.successResponse(w, r, "직원 정보 조회 성공", staff)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName      *string `json:"fullName"`
		Email         *string `json:"email" validate:"omitempty,email"`
		Role          *string `json:"role" validate:"omitempty,oneof=관리자 트레이너 데스크"`
		ShiftCategory *string `json:"shiftCategory" validate:"omitempty,oneof=주간 야간"`
		IsActive      *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	if req.FullName != nil {
		staff.FullName = *req.FullName
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Role != nil {
		staff.Role = domain.Role(*req.Role)
	}
	if req.ShiftCategory != nil {
		staff.ShiftCategory = domain.ShiftCategory(*req.ShiftCategory)
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateStaff(staff); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "staff_email_key":
				h.badRequest(w, r, errors.New("이미 사용 중인 메일 주소입니다"))
			case pgErr.ConstraintName == "staff_username_key":
				h.badRequest(w, r, errors.New("이미 사용 중인 아이디입니다"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "직원 정보 수정에 실패했습니다. 다시 시도해 주세요")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "직원 정보를 수정했습니다", staff)
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	if err := h.repository.DeleteStaff(staff.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "직원을 삭제했습니다", nil)
}

func (h *Handler) UpdateStaffPassword(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	var req struct {
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	staff.PasswordHash = string(hashedPassword)
	if err := h.repository.UpdateStaff(staff); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "비밀번호를 변경했습니다", nil)
}
