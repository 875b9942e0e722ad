package service

import (
	"testing"
	"time"

	"staff-planner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeSummary(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "Иван Петров", 25, 10, nil)
	admin := env.createEmployee(t, "Анна Смирнова", 25, 0, nil)

	_, err := env.leaves.Submit(employee.ID, SubmitLeaveInput{
		StartDate: date(2025, time.March, 10),
		EndDate:   date(2025, time.March, 11),
		Type:      models.RequestTypeVacation,
	})
	require.NoError(t, err)

	approved, err := env.leaves.Submit(employee.ID, SubmitLeaveInput{
		StartDate: date(2025, time.April, 7),
		EndDate:   date(2025, time.April, 8),
		Type:      models.RequestTypeVacation,
	})
	require.NoError(t, err)
	_, err = env.leaves.Approve(approved.ID, admin.ID, "")
	require.NoError(t, err)

	summary, err := env.employees.Summary(employee.ID)
	require.NoError(t, err)

	// 25 - 10 использованных - 2 утвержденных
	assert.Equal(t, 13, summary.RemainingLeave)
	assert.Equal(t, 1, summary.PendingCount)
	assert.Equal(t, 1, summary.ApprovedCount)

	_, err = env.employees.Summary(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeList(t *testing.T) {
	env := newTestEnv(t)
	store := env.createStore(t, "Центральный")
	env.createEmployee(t, "Иван Петров", 25, 0, &store.ID)
	env.createEmployee(t, "Анна Смирнова", 25, 0, nil)

	all, err := env.employees.List(nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Сортировка по имени
	assert.Equal(t, "Анна Смирнова", all[0].Name)

	byStore, err := env.employees.List(&store.ID)
	require.NoError(t, err)
	require.Len(t, byStore, 1)
	assert.Equal(t, "Иван Петров", byStore[0].Name)
}

func TestStoresList(t *testing.T) {
	env := newTestEnv(t)
	env.createStore(t, "Центральный")
	env.createStore(t, "Северный")

	stores, err := env.employees.Stores()
	require.NoError(t, err)
	assert.Len(t, stores, 2)
}
