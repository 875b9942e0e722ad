package models

import "time"

// WorkScheduleEntry — одна строка недельного графика сотрудника.
// На сотрудника хранится ровно по одной строке на день недели
// (0=воскресенье..6=суббота, как в time.Weekday). График сохраняется
// целиком: удаление всех строк и вставка новых семи.
type WorkScheduleEntry struct {
	ID         uint `gorm:"primarykey" json:"-"`
	EmployeeID uint `gorm:"not null;uniqueIndex:idx_schedule_employee_day" json:"-"`
	DayOfWeek  int  `gorm:"not null;check:day_of_week >= 0 AND day_of_week <= 6;uniqueIndex:idx_schedule_employee_day" json:"day_of_week"`

	IsWorkingDay bool    `gorm:"not null;default:false" json:"is_working_day"`
	StartTime    *string `gorm:"type:varchar(5)" json:"start_time"`
	EndTime      *string `gorm:"type:varchar(5)" json:"end_time"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (WorkScheduleEntry) TableName() string {
	return "work_schedules"
}

// IsValid проверяет валидность данных
func (w *WorkScheduleEntry) IsValid() bool {
	return w.DayOfWeek >= 0 && w.DayOfWeek <= 6
}

// DefaultSchedule синтезирует график по умолчанию: понедельник-пятница
// 09:00-17:00. Не сохраняется в базу — отдаётся при чтении, когда у
// сотрудника нет собственного графика.
func DefaultSchedule() []WorkScheduleEntry {
	entries := make([]WorkScheduleEntry, 0, 7)
	for day := 0; day <= 6; day++ {
		working := day >= 1 && day <= 5
		entry := WorkScheduleEntry{DayOfWeek: day, IsWorkingDay: working}
		if working {
			start, end := "09:00", "17:00"
			entry.StartTime = &start
			entry.EndTime = &end
		}
		entries = append(entries, entry)
	}
	return entries
}
