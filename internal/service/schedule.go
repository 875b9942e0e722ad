package service

import (
	"sort"
	"time"

	"staff-planner/internal/models"
	"staff-planner/internal/repository"
	"staff-planner/pkg/weekday"

	"github.com/sirupsen/logrus"
)

// ScheduleService отвечает за недельные графики: решает, рабочий ли день
// для сотрудника, и считает рабочие дни в диапазоне дат.
type ScheduleService struct {
	scheduleRepo repository.WorkScheduleRepository
	logger       *logrus.Logger
}

func NewScheduleService(scheduleRepo repository.WorkScheduleRepository) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		logger:       logrus.New(),
	}
}

// IsWorkingDay решает, рабочий ли день недели по строкам графика.
// Пустой график — политика по умолчанию (понедельник-пятница). Если
// график есть, но строки на этот день нет — день нерабочий.
func IsWorkingDay(entries []models.WorkScheduleEntry, day time.Weekday) bool {
	if len(entries) == 0 {
		return weekday.DefaultWorking(day)
	}
	for _, entry := range entries {
		if entry.DayOfWeek == int(day) {
			return entry.IsWorkingDay
		}
	}
	return false
}

// CountWorkingDays считает рабочие дни в диапазоне, включая обе границы
func CountWorkingDays(entries []models.WorkScheduleEntry, start, end time.Time) (int, error) {
	start = weekday.UTCDate(start)
	end = weekday.UTCDate(end)
	if start.After(end) {
		return 0, ErrInvalidRange
	}

	days := 0
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if IsWorkingDay(entries, date.Weekday()) {
			days++
		}
	}
	return days, nil
}

// TotalCalendarDays считает календарные дни в диапазоне включительно.
// Используется только для отображения, никогда для расчёта баланса.
func TotalCalendarDays(start, end time.Time) (int, error) {
	start = weekday.UTCDate(start)
	end = weekday.UTCDate(end)
	if start.After(end) {
		return 0, ErrInvalidRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// CountWorkingDaysFor считает рабочие дни диапазона по текущему графику
// сотрудника
func (s *ScheduleService) CountWorkingDaysFor(employeeID uint, start, end time.Time) (int, error) {
	entries, err := s.scheduleRepo.GetByEmployee(employeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load schedule for day count")
		return 0, ErrServiceUnavailable
	}
	return CountWorkingDays(entries, start, end)
}

// GetSchedule возвращает график сотрудника с понедельника; при его
// отсутствии синтезирует график по умолчанию, не сохраняя его
func (s *ScheduleService) GetSchedule(employeeID uint) ([]models.WorkScheduleEntry, error) {
	entries, err := s.scheduleRepo.GetByEmployee(employeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load schedule")
		return nil, ErrServiceUnavailable
	}
	if len(entries) == 0 {
		entries = models.DefaultSchedule()
	}

	// Хранение нумерует дни как time.Weekday (0=воскресенье), наружу
	// график отдается с понедельника
	sort.Slice(entries, func(i, j int) bool {
		return weekday.MondayFirst(time.Weekday(entries[i].DayOfWeek)) <
			weekday.MondayFirst(time.Weekday(entries[j].DayOfWeek))
	})
	return entries, nil
}

// SaveSchedule полностью заменяет график сотрудника: ровно одна строка
// на каждый из семи дней недели
func (s *ScheduleService) SaveSchedule(employeeID uint, entries []models.WorkScheduleEntry) error {
	if len(entries) != 7 {
		return newValidationError("график должен содержать 7 дней, получено %d", len(entries))
	}

	seen := make(map[int]bool, 7)
	for _, entry := range entries {
		if !entry.IsValid() {
			return newValidationError("некорректный день недели: %d", entry.DayOfWeek)
		}
		if seen[entry.DayOfWeek] {
			return newValidationError("день недели %d указан дважды", entry.DayOfWeek)
		}
		seen[entry.DayOfWeek] = true
	}

	if err := s.scheduleRepo.Replace(employeeID, entries); err != nil {
		s.logger.WithError(err).WithField("employee_id", employeeID).
			Error("Failed to replace schedule")
		return ErrServiceUnavailable
	}
	return nil
}
