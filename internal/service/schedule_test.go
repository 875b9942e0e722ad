package service

import (
	"testing"
	"time"

	"staff-planner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWorkingDayDefaultPolicy(t *testing.T) {
	// Пустой график — понедельник-пятница
	assert.True(t, IsWorkingDay(nil, time.Monday))
	assert.True(t, IsWorkingDay(nil, time.Friday))
	assert.False(t, IsWorkingDay(nil, time.Saturday))
	assert.False(t, IsWorkingDay(nil, time.Sunday))
}

func TestIsWorkingDayMissingEntry(t *testing.T) {
	// Если график есть, отсутствующий день считается нерабочим
	entries := []models.WorkScheduleEntry{
		{DayOfWeek: int(time.Monday), IsWorkingDay: true},
	}

	assert.True(t, IsWorkingDay(entries, time.Monday))
	assert.False(t, IsWorkingDay(entries, time.Tuesday))
	assert.False(t, IsWorkingDay(entries, time.Sunday))
}

func TestCountWorkingDays(t *testing.T) {
	// 2025-01-03 — пятница, 2025-01-06 — понедельник: суббота и
	// воскресенье между ними не считаются
	days, err := CountWorkingDays(nil, date(2025, time.January, 3), date(2025, time.January, 6))
	require.NoError(t, err)
	assert.Equal(t, 2, days)

	days, err = CountWorkingDays(nil, date(2025, time.January, 6), date(2025, time.January, 6))
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	days, err = CountWorkingDays(nil, date(2025, time.January, 4), date(2025, time.January, 5))
	require.NoError(t, err)
	assert.Equal(t, 0, days)
}

func TestCountWorkingDaysInvalidRange(t *testing.T) {
	_, err := CountWorkingDays(nil, date(2025, time.January, 10), date(2025, time.January, 3))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCountWorkingDaysCustomSchedule(t *testing.T) {
	// Сотрудник работает только по выходным
	entries := []models.WorkScheduleEntry{
		{DayOfWeek: int(time.Saturday), IsWorkingDay: true},
		{DayOfWeek: int(time.Sunday), IsWorkingDay: true},
	}

	// Полная неделя: понедельник 2025-01-06 — воскресенье 2025-01-12
	days, err := CountWorkingDays(entries, date(2025, time.January, 6), date(2025, time.January, 12))
	require.NoError(t, err)
	assert.Equal(t, 2, days)
}

func TestTotalCalendarDays(t *testing.T) {
	days, err := TotalCalendarDays(date(2025, time.January, 3), date(2025, time.January, 6))
	require.NoError(t, err)
	assert.Equal(t, 4, days)

	_, err = TotalCalendarDays(date(2025, time.January, 6), date(2025, time.January, 3))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestTotalCalendarDaysAcrossOffsetShift(t *testing.T) {
	// Перевод часов (смещение зоны меняется между границами диапазона):
	// между датами меньше полных суток на каждый календарный день,
	// но считаются именно календарные дни
	winter := time.FixedZone("UTC-5", -5*60*60)
	summer := time.FixedZone("UTC-4", -4*60*60)

	start := time.Date(2025, time.March, 8, 0, 0, 0, 0, winter)
	end := time.Date(2025, time.March, 10, 0, 0, 0, 0, summer)

	days, err := TotalCalendarDays(start, end)
	require.NoError(t, err)
	assert.Equal(t, 3, days)

	// Рабочие дни считаются по тем же календарным датам:
	// 8 марта суббота, 10 марта понедельник
	working, err := CountWorkingDays(nil, start, end)
	require.NoError(t, err)
	assert.Equal(t, 1, working)
}

func TestGetScheduleSynthesizesDefault(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "Иван Петров", 25, 0, nil)

	entries, err := env.schedules.GetSchedule(employee.ID)
	require.NoError(t, err)
	require.Len(t, entries, 7)

	// Наружу график отдается с понедельника
	assert.Equal(t, int(time.Monday), entries[0].DayOfWeek)
	assert.Equal(t, int(time.Sunday), entries[6].DayOfWeek)

	working := 0
	for _, entry := range entries {
		if entry.IsWorkingDay {
			working++
			require.NotNil(t, entry.StartTime)
			assert.Equal(t, "09:00", *entry.StartTime)
		}
	}
	assert.Equal(t, 5, working)

	// Синтезированный график не сохраняется
	stored, err := env.scheduleRepo.GetByEmployee(employee.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSaveScheduleValidation(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "Иван Петров", 25, 0, nil)

	err := env.schedules.SaveSchedule(employee.ID, models.DefaultSchedule()[:5])
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	duplicated := models.DefaultSchedule()
	duplicated[1].DayOfWeek = duplicated[0].DayOfWeek
	err = env.schedules.SaveSchedule(employee.ID, duplicated)
	assert.ErrorAs(t, err, &validationErr)

	invalid := models.DefaultSchedule()
	invalid[0].DayOfWeek = 7
	err = env.schedules.SaveSchedule(employee.ID, invalid)
	assert.ErrorAs(t, err, &validationErr)
}

func TestExplicitDefaultEqualsEmpty(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "Иван Петров", 25, 0, nil)

	start := date(2025, time.January, 1)
	end := date(2025, time.January, 31)

	implicit, err := env.schedules.CountWorkingDaysFor(employee.ID, start, end)
	require.NoError(t, err)

	// Явно сохраненный график по умолчанию дает тот же результат,
	// что и его отсутствие
	require.NoError(t, env.schedules.SaveSchedule(employee.ID, models.DefaultSchedule()))

	explicit, err := env.schedules.CountWorkingDaysFor(employee.ID, start, end)
	require.NoError(t, err)
	assert.Equal(t, implicit, explicit)
}

func TestSaveScheduleReplaces(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "Иван Петров", 25, 0, nil)

	require.NoError(t, env.schedules.SaveSchedule(employee.ID, models.DefaultSchedule()))

	// Вторая запись полностью заменяет первую
	weekend := models.DefaultSchedule()
	for i := range weekend {
		weekend[i].IsWorkingDay = weekend[i].DayOfWeek == int(time.Saturday) ||
			weekend[i].DayOfWeek == int(time.Sunday)
	}
	require.NoError(t, env.schedules.SaveSchedule(employee.ID, weekend))

	stored, err := env.scheduleRepo.GetByEmployee(employee.ID)
	require.NoError(t, err)
	require.Len(t, stored, 7)
	assert.True(t, IsWorkingDay(stored, time.Saturday))
	assert.False(t, IsWorkingDay(stored, time.Monday))
}
