// Package weekday — единое место для арифметики дней недели.
//
// В базе день недели хранится как time.Weekday (0=воскресенье..6=суббота),
// во всех представлениях неделя отображается с понедельника. Пересчёт
// индекса должен выполняться только здесь, чтобы календарные виды не
// расходились между собой.
package weekday

import "time"

// MondayFirst переводит time.Weekday в индекс недели с понедельника:
// 0=понедельник..6=воскресенье.
func MondayFirst(day time.Weekday) int {
	if day == time.Sunday {
		return 6
	}
	return int(day) - 1
}

// DefaultWorking — политика по умолчанию для сотрудника без графика:
// понедельник-пятница рабочие, суббота и воскресенье нет.
func DefaultWorking(day time.Weekday) bool {
	return day >= time.Monday && day <= time.Friday
}

// Truncate обнуляет время, оставляя только календарную дату.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// UTCDate переносит календарную дату в UTC, отбрасывая время и зону.
// Арифметика дней на таких значениях точна: в UTC нет перевода часов,
// сутки всегда длятся 24 часа.
func UTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthBounds возвращает первый и последний день месяца.
func MonthBounds(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
