package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, user_id, name, date, day, clock_in_time, clock_out_time, clock_in, clock_out, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Date,
		&a.Day,
		&a.ClockInTime,
		&a.ClockOutTime,
		&a.ClockIn,
		&a.ClockOut,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *attendanceRepositoryImpl) queryMany(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, user_id, name, date, day, clock_in_time, clock_out_time, clock_in, clock_out)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + attendanceColumns

	id := uuid.Must(uuid.NewV7()).String()
	return scanAttendance(q.QueryRow(ctx, query,
		id,
		record.UserID,
		record.Name,
		record.Date,
		record.Day,
		record.ClockInTime,
		record.ClockOutTime,
		record.ClockIn,
		record.ClockOut,
	))
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	return r.queryMany(ctx, `SELECT `+attendanceColumns+` FROM attendance ORDER BY date DESC, created_at DESC`)
}

// ListByUserID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	return r.queryMany(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE user_id = $1 ORDER BY date DESC, created_at DESC`, userID)
}

// FindByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) FindByUserAndDate(ctx context.Context, userID, date string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE user_id = $1 AND date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET clock_in_time = $1, clock_out_time = $2, clock_in = $3, clock_out = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query,
		record.ClockInTime,
		record.ClockOutTime,
		record.ClockIn,
		record.ClockOut,
		record.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}
