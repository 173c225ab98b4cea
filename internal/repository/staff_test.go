package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/config"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 5

	return NewRepository(cfg, db), mock
}

func TestUpdateStaff_WritesFullName(t *testing.T) {
	repo, mock := newMockRepository(t)

	createdAt := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	staff := &domain.Staff{
		ID:            3,
		Username:      "kimminjun1",
		PasswordHash:  "hash",
		FullName:      "김민준",
		Email:         "kimminjun1@gymmate.kr",
		Role:          domain.RoleTrainer,
		ShiftCategory: domain.ShiftDay,
		IsActive:      true,
		Version:       2,
	}

	// 이름 변경이 UPDATE 문에 실려야 하고, RETURNING 스캔이 메모리의 새 이름을
	// 저장된 예전 값으로 되돌려서는 안 된다.
	mock.ExpectQuery(`UPDATE staff`).
		WithArgs("hash", "김민준", "kimminjun1@gymmate.kr", "트레이너", "주간", true, int64(3), int32(2)).
		WillReturnRows(sqlmock.NewRows([]string{"username", "created_at", "version"}).
			AddRow("kimminjun1", createdAt, int32(3)))

	if err := repo.UpdateStaff(staff); err != nil {
		t.Fatalf("UpdateStaff() error = %v", err)
	}

	if staff.FullName != "김민준" {
		t.Errorf("fullName = %q, the updated name must survive the RETURNING scan", staff.FullName)
	}
	if staff.Version != 3 {
		t.Errorf("version = %d, want 3 after the update", staff.Version)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
