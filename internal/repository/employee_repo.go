package repository

import (
	"errors"
	"staff-planner/internal/models"

	"gorm.io/gorm"
)

// ErrBalanceExceeded возвращается условным обновлением баланса, когда
// прибавка used_leave вывела бы его за total_leave_per_year.
var ErrBalanceExceeded = errors.New("превышен лимит отпускных дней")

type EmployeeRepository interface {
	GetByID(id uint) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
	GetEmployees(storeID *uint) ([]models.Employee, error)
	GetByStore(storeID uint) ([]models.Employee, error)

	// IncrementUsedLeave атомарно прибавляет дни к used_leave, только если
	// итог не превышает total_leave_per_year. Вызывается внутри транзакции
	// утверждения заявки.
	IncrementUsedLeave(tx *gorm.DB, employeeID uint, days int) error

	// AddRecoveryHours атомарно меняет часы восстановления с нижней
	// границей ноль.
	AddRecoveryHours(tx *gorm.DB, employeeID uint, hours float64) error

	// AdjustUsedLeave применяет ручную корректировку дней:
	// used_leave = max(0, used_leave - amount). Положительная величина
	// возвращает дни сотруднику — соглашение о знаке унаследовано от
	// существующих вызывающих и менять его нельзя.
	AdjustUsedLeave(employeeID uint, amount float64) error
}

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) (EmployeeRepository, error) {
	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		return nil, err
	}
	return &GormEmployeeRepository{db: db}, nil
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.First(&employee, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &employee, nil
}

func (r *GormEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	result := r.db.Order("name ASC").Find(&employees)
	if result.Error != nil {
		return nil, result.Error
	}
	return employees, nil
}

// GetEmployees возвращает всех сотрудников с ролью employee,
// опционально отфильтрованных по магазину
func (r *GormEmployeeRepository) GetEmployees(storeID *uint) ([]models.Employee, error) {
	query := r.db.Where("role = ?", models.RoleEmployee).Order("name ASC")
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	var employees []models.Employee
	result := query.Find(&employees)
	if result.Error != nil {
		return nil, result.Error
	}
	return employees, nil
}

func (r *GormEmployeeRepository) GetByStore(storeID uint) ([]models.Employee, error) {
	var employees []models.Employee
	result := r.db.
		Where("store_id = ? AND role = ?", storeID, models.RoleEmployee).
		Order("name ASC").
		Find(&employees)
	if result.Error != nil {
		return nil, result.Error
	}
	return employees, nil
}

func (r *GormEmployeeRepository) IncrementUsedLeave(tx *gorm.DB, employeeID uint, days int) error {
	if tx == nil {
		tx = r.db
	}

	// Условие в SQL, а не в коде: два параллельных утверждения не могут
	// оба пройти проверку по устаревшему значению
	result := tx.Model(&models.Employee{}).
		Where("id = ? AND used_leave + ? <= total_leave_per_year", employeeID, days).
		UpdateColumn("used_leave", gorm.Expr("used_leave + ?", days))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBalanceExceeded
	}
	return nil
}

func (r *GormEmployeeRepository) AddRecoveryHours(tx *gorm.DB, employeeID uint, hours float64) error {
	if tx == nil {
		tx = r.db
	}

	result := tx.Model(&models.Employee{}).
		Where("id = ?", employeeID).
		UpdateColumn("recovery_hours", gorm.Expr("MAX(0, recovery_hours + ?)", hours))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormEmployeeRepository) AdjustUsedLeave(employeeID uint, amount float64) error {
	result := r.db.Model(&models.Employee{}).
		Where("id = ?", employeeID).
		UpdateColumn("used_leave", gorm.Expr("MAX(0, used_leave - ?)", amount))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
