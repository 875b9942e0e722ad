package service

import (
	"time"

	"staff-planner/internal/models"
	"staff-planner/internal/repository"
	"staff-planner/pkg/weekday"

	"github.com/sirupsen/logrus"
)

// ReportService считает месячную статистику присутствия и сводки для
// панели администратора.
type ReportService struct {
	employeeRepo   repository.EmployeeRepository
	scheduleRepo   repository.WorkScheduleRepository
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRequestRepository
	storeRepo      repository.StoreRepository
	logger         *logrus.Logger
}

func NewReportService(
	employeeRepo repository.EmployeeRepository,
	scheduleRepo repository.WorkScheduleRepository,
	attendanceRepo repository.AttendanceRepository,
	leaveRepo repository.LeaveRequestRepository,
	storeRepo repository.StoreRepository,
) *ReportService {
	return &ReportService{
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		storeRepo:      storeRepo,
		logger:         logrus.New(),
	}
}

// EmployeeMonthlyStat — строка месячного отчета по сотруднику
type EmployeeMonthlyStat struct {
	EmployeeID   uint    `json:"id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	TotalDays    int     `json:"total_days"`
	PresentDays  int     `json:"present_days"`
	AbsentDays   int     `json:"absent_days"`
	LeaveDays    int     `json:"leave_days"`
	PresenceRate float64 `json:"presence_rate"`
}

// MonthlyAttendance строит отчет по каждому сотруднику отдельно: графики
// у всех разные, и у сотрудника без графика действует политика по
// умолчанию, поэтому пакетного пути без персонального расчёта нет.
func (s *ReportService) MonthlyAttendance(year, month int, storeID *uint) ([]EmployeeMonthlyStat, error) {
	if month < 1 || month > 12 {
		return nil, newValidationError("некорректный месяц: %d", month)
	}
	first, last := weekday.MonthBounds(year, month)

	employees, err := s.employeeRepo.GetEmployees(storeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employees for report")
		return nil, ErrServiceUnavailable
	}

	ids := make([]uint, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}
	schedules, err := s.scheduleRepo.GetByEmployees(ids)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load schedules for report")
		return nil, ErrServiceUnavailable
	}

	stats := make([]EmployeeMonthlyStat, 0, len(employees))
	for _, emp := range employees {
		entries := schedules[emp.ID]

		totalDays, err := CountWorkingDays(entries, first, last)
		if err != nil {
			return nil, err
		}

		presentCount, err := s.attendanceRepo.CountByStatus(emp.ID, first, last, models.AttendancePresent)
		if err != nil {
			return nil, ErrServiceUnavailable
		}
		absentCount, err := s.attendanceRepo.CountByStatus(emp.ID, first, last, models.AttendanceAbsent)
		if err != nil {
			return nil, ErrServiceUnavailable
		}

		leaveDays, err := s.leaveDaysInMonth(emp.ID, entries, first, last)
		if err != nil {
			return nil, err
		}

		stats = append(stats, EmployeeMonthlyStat{
			EmployeeID:   emp.ID,
			Name:         emp.Name,
			Position:     emp.Position,
			TotalDays:    totalDays,
			PresentDays:  int(presentCount),
			AbsentDays:   int(absentCount),
			LeaveDays:    leaveDays,
			PresenceRate: presenceRate(totalDays, int(presentCount), leaveDays),
		})
	}

	return stats, nil
}

// leaveDaysInMonth считает рабочие дни утвержденных отпусков в границах
// месяца: часть отпуска за пределами месяца и нерабочие дни не входят
func (s *ReportService) leaveDaysInMonth(employeeID uint, entries []models.WorkScheduleEntry, first, last time.Time) (int, error) {
	leaves, err := s.leaveRepo.GetApprovedOverlapping(employeeID, first, last)
	if err != nil {
		return 0, ErrServiceUnavailable
	}

	leaveDays := 0
	for _, leave := range leaves {
		// Часы восстановления не являются диапазоном дат
		if leave.IsRecoveryHours() {
			continue
		}

		start := leave.StartDate
		if start.Before(first) {
			start = first
		}
		end := leave.EndDate
		if end.After(last) {
			end = last
		}

		days, err := CountWorkingDays(entries, start, end)
		if err != nil {
			return 0, err
		}
		leaveDays += days
	}
	return leaveDays, nil
}

// presenceRate — доля отмеченных присутствий от ожидаемых рабочих дней
// без утвержденных отпусков. Нижняя граница знаменателя 1 защищает от
// деления на ноль, когда отпуск покрывает весь месяц; для полностью
// отдыхающего сотрудника показатель заведомо приближенный.
func presenceRate(totalDays, presentDays, leaveDays int) float64 {
	if totalDays <= 0 {
		return 0
	}
	denominator := totalDays - leaveDays
	if denominator < 1 {
		denominator = 1
	}
	return float64(presentDays) / float64(denominator) * 100
}

// DashboardStats — сводка для главной страницы администратора
type DashboardStats struct {
	PresentToday        int `json:"present_today"`
	AbsentToday         int `json:"absent_today"`
	PendingRequests     int `json:"pending_requests"`
	TotalLeaveAvailable int `json:"total_leave_available"`
}

func (s *ReportService) Dashboard(today time.Time) (*DashboardStats, error) {
	today = weekday.Truncate(today)

	presentToday, err := s.attendanceRepo.CountForDate(today, nil, models.AttendancePresent)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count today's attendance")
		return nil, ErrServiceUnavailable
	}
	absentToday, err := s.attendanceRepo.CountForDate(today, nil, models.AttendanceAbsent)
	if err != nil {
		return nil, ErrServiceUnavailable
	}

	pending, err := s.leaveRepo.CountByStatus(models.LeaveStatusPending)
	if err != nil {
		return nil, ErrServiceUnavailable
	}

	employees, err := s.employeeRepo.GetEmployees(nil)
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	totalAvailable := 0
	for _, emp := range employees {
		totalAvailable += emp.Remaining()
	}

	return &DashboardStats{
		PresentToday:        int(presentToday),
		AbsentToday:         int(absentToday),
		PendingRequests:     int(pending),
		TotalLeaveAvailable: totalAvailable,
	}, nil
}

// StoreOverview — состояние магазина на сегодня
type StoreOverview struct {
	models.Store
	TotalEmployees int `json:"total_employees"`
	ExpectedToday  int `json:"expected_today"`
	PresentCount   int `json:"present_count"`
	AbsentCount    int `json:"absent_count"`
}

// StoresOverview показывает по каждому магазину, сколько сотрудников
// должно работать сегодня (по графику, за вычетом отпусков) и сколько
// уже отмечено
func (s *ReportService) StoresOverview(today time.Time) ([]StoreOverview, error) {
	today = weekday.Truncate(today)

	stores, err := s.storeRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load stores")
		return nil, ErrServiceUnavailable
	}

	overviews := make([]StoreOverview, 0, len(stores))
	for _, store := range stores {
		overview := StoreOverview{Store: store}

		employees, err := s.employeeRepo.GetByStore(store.ID)
		if err != nil {
			return nil, ErrServiceUnavailable
		}
		overview.TotalEmployees = len(employees)

		if len(employees) > 0 {
			ids := make([]uint, 0, len(employees))
			for _, emp := range employees {
				ids = append(ids, emp.ID)
			}

			schedules, err := s.scheduleRepo.GetByEmployees(ids)
			if err != nil {
				return nil, ErrServiceUnavailable
			}

			storeID := store.ID
			leavesToday, err := s.leaveRepo.GetApprovedOverlappingAll(today, today, &storeID)
			if err != nil {
				return nil, ErrServiceUnavailable
			}
			onLeave := make(map[uint]bool, len(leavesToday))
			for _, leave := range leavesToday {
				if !leave.IsRecoveryHours() {
					onLeave[leave.EmployeeID] = true
				}
			}

			for _, emp := range employees {
				if onLeave[emp.ID] {
					continue
				}
				if IsWorkingDay(schedules[emp.ID], today.Weekday()) {
					overview.ExpectedToday++
				}
			}

			present, err := s.attendanceRepo.CountForDate(today, &storeID, models.AttendancePresent)
			if err != nil {
				return nil, ErrServiceUnavailable
			}
			absent, err := s.attendanceRepo.CountForDate(today, &storeID, models.AttendanceAbsent)
			if err != nil {
				return nil, ErrServiceUnavailable
			}
			overview.PresentCount = int(present)
			overview.AbsentCount = int(absent)
		}

		overviews = append(overviews, overview)
	}

	return overviews, nil
}
