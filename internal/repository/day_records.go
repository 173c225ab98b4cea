package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

// GetStaffDayRecord는 해당 날짜의 기록이 없으면 (nil, nil)을 반환한다.
func (r *Repository) GetStaffDayRecord(staffID int64, date time.Time) (*domain.StaffDayRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, is_holiday, work_start, work_end, created_at, version
		FROM staff_day_schedules
		WHERE staff_id = $1 AND schedule_date = $2
	`

	record := &domain.StaffDayRecord{
		StaffID: staffID,
		Date:    date,
	}

	dst := []any{&record.ID, &record.IsHoliday, &record.WorkingHours.Start, &record.WorkingHours.End, &record.CreatedAt, &record.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, staffID, date).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	query = `
		SELECT break_start, break_end, break_name
		FROM staff_day_schedule_breaks
		WHERE staff_day_schedule_id = $1
		ORDER BY position
	`

	rows, err := r.dbpool.QueryContext(ctx, query, record.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	record.BreakTimes = make([]domain.BreakInterval, 0)
	for rows.Next() {
		var interval domain.BreakInterval
		if err := rows.Scan(&interval.Start, &interval.End, &interval.Name); err != nil {
			return nil, err
		}
		record.BreakTimes = append(record.BreakTimes, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return record, nil
}

// SaveStaffDayRecords는 한 트랜잭션 안에서 기존 기록을 지우고 새로 넣는다.
func (r *Repository) SaveStaffDayRecords(records []*domain.StaffDayRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, record := range records {
		// 먼저 기존 기록을 삭제한 뒤 삽입한다. 휴게시간 행은 외래키 CASCADE로 같이 지워진다.
		query := `DELETE FROM staff_day_schedules WHERE staff_id = $1 AND schedule_date = $2`
		if _, err := tx.ExecContext(ctx, query, record.StaffID, record.Date); err != nil {
			return err
		}

		query = `
			INSERT INTO staff_day_schedules (staff_id, schedule_date, is_holiday, work_start, work_end)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, version
		`
		args := []any{record.StaffID, record.Date, record.IsHoliday, record.WorkingHours.Start, record.WorkingHours.End}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.CreatedAt, &record.Version); err != nil {
			return err
		}

		for position, interval := range record.BreakTimes {
			query := `
				INSERT INTO staff_day_schedule_breaks (staff_day_schedule_id, position, break_start, break_end, break_name)
				VALUES ($1, $2, $3, $4, $5)
			`
			if _, err := tx.ExecContext(ctx, query, record.ID, position, interval.Start, interval.End, interval.Name); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// GetStaffDayRecordsInRange는 기간 내의 모든 기록을 staff별로 돌려준다.
func (r *Repository) GetStaffDayRecordsInRange(staffID int64, from, to time.Time) ([]*domain.StaffDayRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			sds.id,
			sds.schedule_date,
			sds.is_holiday,
			sds.work_start,
			sds.work_end,
			sdsb.break_start,
			sdsb.break_end,
			sdsb.break_name,
			sds.created_at,
			sds.version
		FROM staff_day_schedules sds
		LEFT JOIN staff_day_schedule_breaks sdsb ON sds.id = sdsb.staff_day_schedule_id
		WHERE sds.staff_id = $1 AND sds.schedule_date >= $2 AND sds.schedule_date <= $3
		ORDER BY sds.schedule_date, sdsb.position
	`

	rows, err := r.dbpool.QueryContext(ctx, query, staffID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recordsMap := make(map[int64]*domain.StaffDayRecord)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			id         int64
			date       time.Time
			isHoliday  bool
			workStart  domain.TimeOfDay
			workEnd    domain.TimeOfDay
			breakStart sql.NullInt32
			breakEnd   sql.NullInt32
			breakName  sql.NullString
			createdAt  time.Time
			version    int32
		}

		dst := []any{
			&row.id,
			&row.date,
			&row.isHoliday,
			&row.workStart,
			&row.workEnd,
			&row.breakStart,
			&row.breakEnd,
			&row.breakName,
			&row.createdAt,
			&row.version,
		}

		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if _, exists := recordsMap[row.id]; !exists {
			recordsMap[row.id] = &domain.StaffDayRecord{
				ID:           row.id,
				StaffID:      staffID,
				Date:         row.date,
				IsHoliday:    row.isHoliday,
				WorkingHours: domain.TimeRange{Start: row.workStart, End: row.workEnd},
				BreakTimes:   make([]domain.BreakInterval, 0),
				CreatedAt:    row.createdAt,
				Version:      row.version,
			}
			order = append(order, row.id)
		}

		if !row.breakStart.Valid {
			// 휴게시간이 하나도 없는 날
			continue
		}

		recordsMap[row.id].BreakTimes = append(recordsMap[row.id].BreakTimes, domain.BreakInterval{
			Start: domain.TimeOfDay(row.breakStart.Int32),
			End:   domain.TimeOfDay(row.breakEnd.Int32),
			Name:  row.breakName.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	records := make([]*domain.StaffDayRecord, 0, len(order))
	for _, id := range order {
		records = append(records, recordsMap[id])
	}

	return records, nil
}
