package service

import (
	"testing"
	"time"

	"staff-planner/internal/models"
	"staff-planner/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv поднимает сервисы на реальных репозиториях поверх sqlite в памяти
type testEnv struct {
	db *gorm.DB

	storeRepo      repository.StoreRepository
	employeeRepo   repository.EmployeeRepository
	scheduleRepo   repository.WorkScheduleRepository
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRequestRepository
	adjustmentRepo repository.LeaveAdjustmentRepository

	schedules  *ScheduleService
	leaves     *LeaveService
	attendance *AttendanceService
	reports    *ReportService
	calendar   *CalendarService
	employees  *EmployeeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Одно соединение, иначе каждое соединение пула получает свою
	// пустую базу в памяти
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	env := &testEnv{db: db}

	env.storeRepo, err = repository.NewGormStoreRepository(db)
	require.NoError(t, err)
	env.employeeRepo, err = repository.NewGormEmployeeRepository(db)
	require.NoError(t, err)
	env.scheduleRepo, err = repository.NewGormWorkScheduleRepository(db)
	require.NoError(t, err)
	env.attendanceRepo, err = repository.NewGormAttendanceRepository(db)
	require.NoError(t, err)
	env.leaveRepo, err = repository.NewGormLeaveRequestRepository(db, env.employeeRepo)
	require.NoError(t, err)
	env.adjustmentRepo, err = repository.NewGormLeaveAdjustmentRepository(db)
	require.NoError(t, err)

	env.schedules = NewScheduleService(env.scheduleRepo)
	env.leaves = NewLeaveService(env.leaveRepo, env.employeeRepo, env.scheduleRepo, env.adjustmentRepo, env.storeRepo)
	env.attendance = NewAttendanceService(env.attendanceRepo, env.employeeRepo)
	env.reports = NewReportService(env.employeeRepo, env.scheduleRepo, env.attendanceRepo, env.leaveRepo, env.storeRepo)
	env.calendar = NewCalendarService(env.employeeRepo, env.scheduleRepo, env.attendanceRepo, env.leaveRepo, env.storeRepo)
	env.employees = NewEmployeeService(env.employeeRepo, env.storeRepo, env.leaveRepo)

	return env
}

func (env *testEnv) createStore(t *testing.T, name string) *models.Store {
	t.Helper()
	store := &models.Store{Name: name, Address: "ул. Тестовая, 1"}
	require.NoError(t, env.db.Create(store).Error)
	return store
}

func (env *testEnv) createEmployee(t *testing.T, name string, total, used int, storeID *uint) *models.Employee {
	t.Helper()
	employee := &models.Employee{
		Name:              name,
		Position:          "Продавец",
		Role:              models.RoleEmployee,
		StoreID:           storeID,
		TotalLeavePerYear: total,
		UsedLeave:         used,
	}
	require.NoError(t, env.db.Create(employee).Error)
	return employee
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
