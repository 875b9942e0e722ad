package service

import (
	"testing"
	"time"

	"staff-planner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) createApprovedLeave(t *testing.T, employee *models.Employee, start, end time.Time) {
	t.Helper()
	require.NoError(t, env.db.Create(&models.LeaveRequest{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		StoreID:      employee.StoreID,
		StartDate:    start,
		EndDate:      end,
		Type:         models.RequestTypeVacation,
		Status:       models.LeaveStatusApproved,
	}).Error)
}

func TestMonthlyAttendanceLeaveSplitAcrossMonths(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "Иван Петров", 25, 0, nil)

	// Отпуск 30.12.2024 — 02.01.2025 пересекает границу года
	env.createApprovedLeave(t, employee,
		date(2024, time.December, 30), date(2025, time.January, 2))

	december, err := env.reports.MonthlyAttendance(2024, 12, nil)
	require.NoError(t, err)
	require.Len(t, december, 1)

	// В декабре учитываются только 30 и 31 декабря (пн, вт)
	assert.Equal(t, 22, december[0].TotalDays)
	assert.Equal(t, 2, december[0].LeaveDays)

	january, err := env.reports.MonthlyAttendance(2025, 1, nil)
	require.NoError(t, err)
	require.Len(t, january, 1)

	// В январе — только 1 и 2 января (ср, чт)
	assert.Equal(t, 23, january[0].TotalDays)
	assert.Equal(t, 2, january[0].LeaveDays)
}

func TestMonthlyAttendanceCounts(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "Иван Петров", 25, 0, nil)
	admin := env.createEmployee(t, "Анна Смирнова", 25, 0, nil)

	// Март 2025: присутствие 3 и 4 числа, отсутствие 5-го
	_, err := env.attendance.Mark(employee.ID, date(2025, time.March, 3), models.AttendancePresent, "", admin.ID)
	require.NoError(t, err)
	_, err = env.attendance.Mark(employee.ID, date(2025, time.March, 4), models.AttendancePresent, "", admin.ID)
	require.NoError(t, err)
	_, err = env.attendance.Mark(employee.ID, date(2025, time.March, 5), models.AttendanceAbsent, "без причины", admin.ID)
	require.NoError(t, err)

	stats, err := env.reports.MonthlyAttendance(2025, 3, nil)
	require.NoError(t, err)

	// Администратор в отчет не попадает
	require.Len(t, stats, 1)
	assert.Equal(t, employee.ID, stats[0].EmployeeID)
	assert.Equal(t, 2, stats[0].PresentDays)
	assert.Equal(t, 1, stats[0].AbsentDays)
	assert.Equal(t, 0, stats[0].LeaveDays)
	// 21 рабочий день в марте 2025
	assert.Equal(t, 21, stats[0].TotalDays)
	assert.InDelta(t, float64(2)/21*100, stats[0].PresenceRate, 0.001)
}

func TestMonthlyAttendanceInvalidMonth(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reports.MonthlyAttendance(2025, 13, nil)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestPresenceRate(t *testing.T) {
	assert.Equal(t, 0.0, presenceRate(0, 5, 0))
	assert.Equal(t, 100.0, presenceRate(20, 18, 2))
	assert.Equal(t, 50.0, presenceRate(20, 10, 0))
	// Отпуск на весь месяц: знаменатель упирается в единицу
	assert.Equal(t, 0.0, presenceRate(20, 0, 20))
	assert.Equal(t, 100.0, presenceRate(20, 1, 20))
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	first := env.createEmployee(t, "Иван Петров", 25, 20, nil)
	second := env.createEmployee(t, "Анна Смирнова", 25, 0, nil)

	today := date(2025, time.March, 10)

	_, err := env.attendance.Mark(first.ID, today, models.AttendancePresent, "", 1)
	require.NoError(t, err)
	_, err = env.attendance.Mark(second.ID, today, models.AttendanceAbsent, "болезнь", 1)
	require.NoError(t, err)

	_, err = env.leaves.Submit(first.ID, SubmitLeaveInput{
		StartDate: date(2025, time.April, 7),
		EndDate:   date(2025, time.April, 8),
		Type:      models.RequestTypeVacation,
	})
	require.NoError(t, err)

	stats, err := env.reports.Dashboard(today)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.PresentToday)
	assert.Equal(t, 1, stats.AbsentToday)
	assert.Equal(t, 1, stats.PendingRequests)
	// 5 оставшихся у первого + 25 у второй
	assert.Equal(t, 30, stats.TotalLeaveAvailable)
}

func TestStoresOverview(t *testing.T) {
	env := newTestEnv(t)
	store := env.createStore(t, "Центральный")
	_ = env.createStore(t, "Северный")

	first := env.createEmployee(t, "Иван Петров", 25, 0, &store.ID)
	second := env.createEmployee(t, "Анна Смирнова", 25, 0, &store.ID)

	// Понедельник; второй сотрудник в отпуске
	today := date(2025, time.March, 10)
	env.createApprovedLeave(t, second, today, today.AddDate(0, 0, 4))

	_, err := env.attendance.Mark(first.ID, today, models.AttendancePresent, "", 1)
	require.NoError(t, err)

	overviews, err := env.reports.StoresOverview(today)
	require.NoError(t, err)
	require.Len(t, overviews, 2)

	byName := make(map[string]StoreOverview, len(overviews))
	for _, overview := range overviews {
		byName[overview.Name] = overview
	}

	central := byName["Центральный"]
	assert.Equal(t, 2, central.TotalEmployees)
	assert.Equal(t, 1, central.ExpectedToday)
	assert.Equal(t, 1, central.PresentCount)
	assert.Equal(t, 0, central.AbsentCount)

	north := byName["Северный"]
	assert.Equal(t, 0, north.TotalEmployees)
	assert.Equal(t, 0, north.ExpectedToday)
}
