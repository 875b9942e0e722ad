package service

import (
	"time"

	"staff-planner/internal/models"
	"staff-planner/internal/repository"
	"staff-planner/pkg/weekday"

	"github.com/sirupsen/logrus"
)

// AttendanceService фиксирует присутствие и отсутствие по дням.
// На пару (сотрудник, дата) существует не более одной записи: повторная
// отметка перезаписывает предыдущую. Сервис нарочно не сверяется ни с
// графиком, ни с утвержденными отпусками — за это отвечает вызывающий.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	logger         *logrus.Logger
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		logger:         logrus.New(),
	}
}

// Mark ставит отметку за день. justified_by заполняется только при
// отсутствии; при отметке present поле сбрасывается.
func (s *AttendanceService) Mark(employeeID uint, date time.Time, status, justification string, markedBy uint) (*models.AttendanceRecord, error) {
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		return nil, newValidationError("неизвестный статус посещаемости: %s", status)
	}
	if date.IsZero() {
		return nil, newValidationError("необходимо указать дату")
	}

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employee")
		return nil, ErrServiceUnavailable
	}
	if employee == nil {
		return nil, ErrNotFound
	}

	record := &models.AttendanceRecord{
		EmployeeID:    employeeID,
		Date:          weekday.Truncate(date),
		StoreID:       employee.StoreID,
		Status:        status,
		Justification: justification,
	}
	if status == models.AttendanceAbsent {
		record.JustifiedBy = &markedBy
	}

	if err := s.attendanceRepo.Upsert(record); err != nil {
		s.logger.WithError(err).Error("Failed to upsert attendance record")
		return nil, ErrServiceUnavailable
	}

	saved, err := s.attendanceRepo.GetByEmployeeAndDate(employeeID, record.Date)
	if err != nil {
		return nil, ErrServiceUnavailable
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"date":        record.Date.Format("2006-01-02"),
		"status":      status,
	}).Info("Attendance marked")

	return saved, nil
}

// Get возвращает отметку за день, nil если её нет
func (s *AttendanceService) Get(employeeID uint, date time.Time) (*models.AttendanceRecord, error) {
	record, err := s.attendanceRepo.GetByEmployeeAndDate(employeeID, weekday.Truncate(date))
	if err != nil {
		s.logger.WithError(err).Error("Failed to load attendance record")
		return nil, ErrServiceUnavailable
	}
	return record, nil
}
