package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/scope"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
)

// WarnClockedOutWithoutClockIn is surfaced as a warning, not an error:
// the record is still created so the history stays complete.
const WarnClockedOutWithoutClockIn = "Clocked out without clocking in first"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, userRepository user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		now:                  time.Now,
	}
}

// ClockIn implements attendance.AttendanceService. One clock-in per user
// per calendar day; a record left behind by a clock-out-first event may
// still receive its clock-in.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, principal user.Principal) (attendance.ClockResponse, error) {
	now := s.now()
	dateStr := now.Format(attendance.DateLayout)
	timeStr := now.Format(attendance.TimeOfDayLayout)

	existing, err := s.AttendanceRepository.FindByUserAndDate(ctx, principal.ID, dateStr)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.ClockResponse{}, fmt.Errorf("failed to find today's attendance record: %w", err)
	}

	var record attendance.Attendance
	switch {
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		record, err = s.AttendanceRepository.Create(ctx, attendance.Attendance{
			UserID:      principal.ID,
			Name:        principal.FullName(),
			Date:        dayOf(now),
			Day:         attendance.WeekdayName(now),
			ClockInTime: timeStr,
			ClockIn:     true,
		})
		if err != nil {
			return attendance.ClockResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}

	case existing.ClockIn:
		return attendance.ClockResponse{}, attendance.ErrAlreadyClockedIn

	default:
		existing.ClockInTime = timeStr
		existing.ClockIn = true
		record, err = s.AttendanceRepository.Update(ctx, existing)
		if err != nil {
			return attendance.ClockResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
	}

	return s.clockResponse(ctx, principal, record, "")
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, principal user.Principal) (attendance.ClockResponse, error) {
	now := s.now()
	dateStr := now.Format(attendance.DateLayout)
	timeStr := now.Format(attendance.TimeOfDayLayout)

	existing, err := s.AttendanceRepository.FindByUserAndDate(ctx, principal.ID, dateStr)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.ClockResponse{}, fmt.Errorf("failed to find today's attendance record: %w", err)
	}

	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		// Clocked out without ever clocking in: record it anyway and tell
		// the caller with a warning notice.
		record, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
			UserID:       principal.ID,
			Name:         principal.FullName(),
			Date:         dayOf(now),
			Day:          attendance.WeekdayName(now),
			ClockOutTime: timeStr,
			ClockOut:     true,
		})
		if err != nil {
			return attendance.ClockResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
		return s.clockResponse(ctx, principal, record, WarnClockedOutWithoutClockIn)
	}

	if !existing.ClockIn {
		return attendance.ClockResponse{}, attendance.ErrMustClockInFirst
	}
	if existing.ClockOut {
		return attendance.ClockResponse{}, attendance.ErrAlreadyClockedOut
	}

	existing.ClockOutTime = timeStr
	existing.ClockOut = true
	record, err := s.AttendanceRepository.Update(ctx, existing)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.clockResponse(ctx, principal, record, "")
}

// ListVisible implements attendance.AttendanceService. Employees see their
// own records, managers their department's, HR everything. The manager
// path resolves department membership through the user directory first and
// then filters the record set by member id.
func (s *AttendanceServiceImpl) ListVisible(ctx context.Context, principal user.Principal) ([]attendance.AttendanceResponse, error) {
	visibility := scope.ForPrincipal(principal)

	var records []attendance.Attendance
	switch visibility.Kind {
	case scope.KindSelf:
		var err error
		records, err = s.AttendanceRepository.ListByUserID(ctx, principal.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance records: %w", err)
		}

	case scope.KindDepartment:
		directory, err := s.UserRepository.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve department members: %w", err)
		}
		visibility = visibility.WithMembers(directory)

		all, err := s.AttendanceRepository.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance records: %w", err)
		}
		for _, record := range all {
			if visibility.AllowsUserID(record.UserID) {
				records = append(records, record)
			}
		}

	default:
		var err error
		records, err = s.AttendanceRepository.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance records: %w", err)
		}
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewAttendanceResponse(record))
	}
	return responses, nil
}

// clockResponse re-fetches the caller's visible record set so every write
// is followed by a consistent post-write snapshot.
func (s *AttendanceServiceImpl) clockResponse(ctx context.Context, principal user.Principal, record attendance.Attendance, warning string) (attendance.ClockResponse, error) {
	records, err := s.ListVisible(ctx, principal)
	if err != nil {
		return attendance.ClockResponse{}, err
	}
	return attendance.ClockResponse{
		Record:  attendance.NewAttendanceResponse(record),
		Records: records,
		Warning: warning,
	}, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
