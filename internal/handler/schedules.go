package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/schedule"
)

func parseDirection(s string) (schedule.Direction, bool) {
	switch schedule.Direction(s) {
	case schedule.WeekUpcoming, "":
		// 기본은 다가오는 배정 주다
		return schedule.WeekUpcoming, true
	case schedule.WeekPast:
		return schedule.WeekPast, true
	default:
		return "", false
	}
}

func (h *Handler) GetStaffWeekSchedule(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	direction, ok := parseDirection(r.URL.Query().Get("week"))
	if !ok {
		h.errorResponse(w, r, "week 파라미터는 upcoming 또는 past 여야 합니다")
		return
	}

	anchor := schedule.ResolveAssignableWeekStart(time.Now(), direction)
	week, existed, err := schedule.LoadWeek(h.repository, staff.ID, anchor, schedule.DefaultWeekOptions{
		Table:    schedule.WeeklyDefaults,
		Category: staff.ShiftCategory,
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "주간 스케줄 조회 성공", map[string]any{
		"weekStart": anchor.Format("2006-01-02"),
		"existed":   existed,
		"schedule":  week,
	})
}

func (h *Handler) SaveStaffWeekSchedule(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Staff)
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	var req struct {
		Week     string              `json:"week"`
		Schedule domain.WeekSchedule `json:"schedule" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	direction, ok := parseDirection(req.Week)
	if !ok {
		h.errorResponse(w, r, "week 필드는 upcoming 또는 past 여야 합니다")
		return
	}

	anchor := schedule.ResolveAssignableWeekStart(time.Now(), direction)
	defaults := schedule.WeeklyDefaults.ForShift(staff.ShiftCategory)
	session := schedule.NewEditSession(anchor, defaults, req.Schedule, staff.ID)

	if _, err := session.Save(h.repository); err != nil {
		var validationErr *schedule.ValidationFailedError
		if errors.As(err, &validationErr) {
			// 위반을 하나만 잘라서 알려주지 않고 전부 내려준다
			h.errorResponseWithData(w, r, validationErr.Error(), validationErr.Violations)
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	// 스케줄이 바뀐 당사자에게 알림 메일을 보낸다
	mailMessage := domain.MailMessage{
		Type: "schedule_changed",
		To:   staff.Email,
		Data: domain.ScheduleChangedMailData{
			FullName:  staff.FullName,
			WeekStart: anchor.Format("2006-01-02"),
			EditedBy:  myInfo.FullName,
		},
	}

	if err := h.publishMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "주간 스케줄을 저장했습니다", map[string]any{
		"weekStart": anchor.Format("2006-01-02"),
		"schedule":  session.Week(),
	})
}

// SaveWeeklySchedules 는 같은 주 스케줄을 여러 직원에게 한 번에 저장한다
func (h *Handler) SaveWeeklySchedules(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Staff)

	var req struct {
		StaffIDs []int64             `json:"staffIds" validate:"required,min=1"`
		Week     string              `json:"week"`
		Schedule domain.WeekSchedule `json:"schedule" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	direction, ok := parseDirection(req.Week)
	if !ok {
		h.errorResponse(w, r, "week 필드는 upcoming 또는 past 여야 합니다")
		return
	}

	// 대상 직원을 먼저 모두 확인한다. 없는 직원이 섞여 있으면 저장 전에 거절한다.
	staffs := make([]*domain.Staff, 0, len(req.StaffIDs))
	categories := make([]domain.ShiftCategory, 0, len(req.StaffIDs))
	for _, staffID := range req.StaffIDs {
		staff, err := h.repository.GetStaffByID(staffID)
		if err != nil {
			h.errorResponse(w, r, fmt.Sprintf("직원 %d 을(를) 찾을 수 없습니다", staffID))
			return
		}
		staffs = append(staffs, staff)
		categories = append(categories, staff.ShiftCategory)
	}

	anchor := schedule.ResolveAssignableWeekStart(time.Now(), direction)
	defaults := schedule.WeeklyDefaults.Unify(categories)
	session := schedule.NewEditSession(anchor, defaults, req.Schedule, req.StaffIDs...)

	saved, err := session.Save(h.repository)
	if err != nil {
		var validationErr *schedule.ValidationFailedError
		if errors.As(err, &validationErr) {
			h.errorResponseWithData(w, r, validationErr.Error(), validationErr.Violations)
			return
		}

		var saveErr *schedule.StaffSaveError
		if errors.As(err, &saveErr) {
			// 앞 직원들의 저장은 이미 끝났으므로 어디까지 됐는지 알려준다
			h.logInternalServerError(r, err)
			h.errorResponseWithData(w, r, fmt.Sprintf("직원 %d 의 스케줄 저장에 실패했습니다", saveErr.StaffID), map[string]any{
				"savedRecords": len(saved),
			})
			return
		}

		h.internalServerError(w, r, err)
		return
	}

	// 스케줄이 바뀐 직원들에게 알림 메일을 보낸다
	for _, staff := range staffs {
		mailMessage := domain.MailMessage{
			Type: "schedule_changed",
			To:   staff.Email,
			Data: domain.ScheduleChangedMailData{
				FullName:  staff.FullName,
				WeekStart: anchor.Format("2006-01-02"),
				EditedBy:  myInfo.FullName,
			},
		}
		if err := h.publishMail(mailMessage); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "주간 스케줄을 일괄 저장했습니다", map[string]any{
		"weekStart":    anchor.Format("2006-01-02"),
		"savedRecords": len(saved),
	})
}

// GetWeeklyDefaults 는 일괄 편집 대상 직원들의 근무 형태를 합쳐 기본값을 돌려준다
func (h *Handler) GetWeeklyDefaults(w http.ResponseWriter, r *http.Request) {
	idsParam := r.URL.Query().Get("ids")
	if idsParam == "" {
		h.errorResponse(w, r, "ids 파라미터가 필요합니다")
		return
	}

	categories := make([]domain.ShiftCategory, 0)
	for _, idString := range strings.Split(idsParam, ",") {
		staffID, err := strconv.ParseInt(idString, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "직원 ID가 유효하지 않습니다")
			return
		}

		staff, err := h.repository.GetStaffByID(staffID)
		if err != nil {
			h.errorResponse(w, r, fmt.Sprintf("직원 %d 을(를) 찾을 수 없습니다", staffID))
			return
		}
		categories = append(categories, staff.ShiftCategory)
	}

	defaults := schedule.WeeklyDefaults.Unify(categories)

	h.successResponse(w, r, "기본값 조회 성공", map[string]any{
		"workingHours": defaults.Work,
		"primaryBreak": defaults.PrimaryBreak,
		// 휴게시간 격자가 렌더링할 30분 칸의 시작 시각들
		"breakSlots": schedule.GenerateSlots(defaults.Work.Start, defaults.Work.End),
	})
}
