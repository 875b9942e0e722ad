package service

import (
	"staff-planner/internal/models"
	"staff-planner/internal/repository"

	"github.com/sirupsen/logrus"
)

// EmployeeService — витрины по сотрудникам и магазинам (только чтение:
// создание и изменение сотрудников вне зоны ответственности модуля).
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	storeRepo    repository.StoreRepository
	leaveRepo    repository.LeaveRequestRepository
	logger       *logrus.Logger
}

func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	storeRepo repository.StoreRepository,
	leaveRepo repository.LeaveRequestRepository,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
		leaveRepo:    leaveRepo,
		logger:       logrus.New(),
	}
}

// EmployeeSummary — карточка сотрудника с вычисленным остатком и
// счетчиками заявок
type EmployeeSummary struct {
	models.Employee
	RemainingLeave int `json:"remaining_leave"`
	PendingCount   int `json:"pending_count"`
	ApprovedCount  int `json:"approved_count"`
}

// Summary возвращает карточку сотрудника
func (s *EmployeeService) Summary(employeeID uint) (*EmployeeSummary, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employee")
		return nil, ErrServiceUnavailable
	}
	if employee == nil {
		return nil, ErrNotFound
	}

	pending, err := s.leaveRepo.CountByEmployeeAndStatus(employeeID, models.LeaveStatusPending)
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	approved, err := s.leaveRepo.CountByEmployeeAndStatus(employeeID, models.LeaveStatusApproved)
	if err != nil {
		return nil, ErrServiceUnavailable
	}

	return &EmployeeSummary{
		Employee:       *employee,
		RemainingLeave: employee.Remaining(),
		PendingCount:   int(pending),
		ApprovedCount:  int(approved),
	}, nil
}

// List возвращает сотрудников, опционально по магазину
func (s *EmployeeService) List(storeID *uint) ([]models.Employee, error) {
	employees, err := s.employeeRepo.GetEmployees(storeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list employees")
		return nil, ErrServiceUnavailable
	}
	return employees, nil
}

// Stores возвращает все магазины
func (s *EmployeeService) Stores() ([]models.Store, error) {
	stores, err := s.storeRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list stores")
		return nil, ErrServiceUnavailable
	}
	return stores, nil
}
