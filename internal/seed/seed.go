package seed

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/config"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/repository"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/schedule"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// seedFirstWeek 는 직원의 첫 배정 주를 기본값으로 채워서 저장한다
func seedFirstWeek(r *repository.Repository, staff *domain.Staff) error {
	now := time.Now()
	anchor := schedule.ResolveAssignableWeekStart(now, schedule.WeekPast)
	week := schedule.DefaultWeek(anchor, schedule.DefaultWeekOptions{
		Table:               schedule.RegistrationDefaults,
		Category:            staff.ShiftCategory,
		ForceHolidayThrough: now,
	})

	session := schedule.NewEditSession(anchor, schedule.RegistrationDefaults.ForShift(staff.ShiftCategory), week, staff.ID)
	_, err := session.Save(r)
	return err
}

// SeedRandomStaff 는 개발 환경용으로 무작위 직원과 기본 주간 스케줄을 만든다
func SeedRandomStaff(r *repository.Repository, cfg *config.Config, count int) {
	for i := 0; i < count; i++ {
		staff, err := utils.GenerateRandomStaff(cfg.Seed.Staff.Password, cfg.Email.StaffDomain)
		if err != nil {
			slog.Error("무작위 직원 생성 실패", "error", err)
			continue
		}

		if err := r.CreateStaff(staff); err != nil {
			slog.Error("직원 삽입 실패", "error", err)
			continue
		}

		if err := seedFirstWeek(r, staff); err != nil {
			slog.Error("기본 주간 스케줄 삽입 실패", "username", staff.Username, "error", err)
			continue
		}
	}

	slog.Info("무작위 직원 삽입 완료", "count", count)
}

// SeedRealData 는 직원 명단 CSV 를 읽어서 데이터베이스에 넣는다.
// CSV 헤더는 아이디, 이름, 이메일, 역할, 근무형태 순서를 기대한다.
func SeedRealData(r *repository.Repository, cfg *config.Config) {
	file, err := os.Open("./internal/seed/data/staff.csv")
	if err != nil {
		slog.Error("파일 열기 실패", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// 헤더 읽기
	headers, err := reader.Read()
	if err != nil {
		slog.Error("헤더 읽기 실패", "error", err)
		return
	}

	columnIndex := make(map[string]int, len(headers))
	for i, header := range headers {
		columnIndex[header] = i
	}
	for _, required := range []string{"아이디", "이름", "이메일", "역할", "근무형태"} {
		if _, exists := columnIndex[required]; !exists {
			slog.Error("필수 열이 없습니다", "column", required)
			return
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Staff.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("비밀번호 해시 실패", "error", err)
		return
	}

	seeded := 0
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			slog.Error("파일 읽기 실패", "error", err)
			return
		}

		username := row[columnIndex["아이디"]]
		if username == "" {
			slog.Error("아이디가 비어 있습니다", "row", row)
			continue
		}

		staff, err := r.GetStaffByUsername(username)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				// 아직 데이터베이스에 없는 직원이면 새로 넣는다
				staff = &domain.Staff{
					Username:      username,
					PasswordHash:  string(passwordHash),
					FullName:      row[columnIndex["이름"]],
					Email:         row[columnIndex["이메일"]],
					Role:          domain.Role(row[columnIndex["역할"]]),
					ShiftCategory: domain.ShiftCategory(row[columnIndex["근무형태"]]),
				}

				if err := r.CreateStaff(staff); err != nil {
					slog.Error("직원 삽입 실패", "username", username, "error", err)
					continue
				}
			default:
				slog.Error("직원 조회 실패", "username", username, "error", err)
				continue
			}
		}

		if err := seedFirstWeek(r, staff); err != nil {
			slog.Error("기본 주간 스케줄 삽입 실패", "username", username, "error", err)
			continue
		}

		seeded++
	}

	slog.Info("명단 삽입 완료", "count", seeded)
}
