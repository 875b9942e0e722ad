package repository

import (
	"errors"
	"time"

	"staff-planner/internal/models"

	"gorm.io/gorm"
)

// ErrNotPending возвращается, когда заявку пытаются рассмотреть повторно:
// условное обновление статуса не нашло строку в статусе pending.
var ErrNotPending = errors.New("заявка уже рассмотрена")

// LeaveListFilter — фильтры списка заявок
type LeaveListFilter struct {
	EmployeeID *uint
	StoreID    *uint
	Status     string
	Limit      int
}

type LeaveRequestRepository interface {
	Create(request *models.LeaveRequest) error
	GetByID(id uint) (*models.LeaveRequest, error)
	List(filter LeaveListFilter) ([]models.LeaveRequest, error)

	// ApproveDays утверждает обычную заявку: в одной транзакции условно
	// прибавляет дни к used_leave сотрудника и переводит заявку из
	// pending в approved. Любой сбой откатывает обе записи.
	ApproveDays(requestID, employeeID uint, days int, reviewerID uint, comment string) error

	// ApproveRecovery утверждает заявку на часы восстановления: начисляет
	// часы и переводит статус в одной транзакции.
	ApproveRecovery(requestID, employeeID uint, hours float64, reviewerID uint, comment string) error

	Reject(requestID uint, reviewerID uint, comment string) error

	GetApprovedOverlapping(employeeID uint, start, end time.Time) ([]models.LeaveRequest, error)
	GetApprovedOverlappingAll(start, end time.Time, storeID *uint) ([]models.LeaveRequest, error)
	GetApprovedStartingAfter(date time.Time) ([]models.LeaveRequest, error)
	CountByEmployeeAndStatus(employeeID uint, status string) (int64, error)
	CountByStatus(status string) (int64, error)
}

type GormLeaveRequestRepository struct {
	db           *gorm.DB
	employeeRepo EmployeeRepository
}

func NewGormLeaveRequestRepository(db *gorm.DB, employeeRepo EmployeeRepository) (LeaveRequestRepository, error) {
	if err := db.AutoMigrate(&models.LeaveRequest{}); err != nil {
		return nil, err
	}
	return &GormLeaveRequestRepository{db: db, employeeRepo: employeeRepo}, nil
}

func (r *GormLeaveRequestRepository) Create(request *models.LeaveRequest) error {
	return r.db.Create(request).Error
}

func (r *GormLeaveRequestRepository) GetByID(id uint) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	result := r.db.First(&request, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &request, nil
}

func (r *GormLeaveRequestRepository) List(filter LeaveListFilter) ([]models.LeaveRequest, error) {
	query := r.db.Order("submitted_at DESC")

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var requests []models.LeaveRequest
	result := query.Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}

// markReviewed переводит заявку из pending в указанный статус; условие по
// статусу в SQL гарантирует, что заявка рассматривается ровно один раз
func (r *GormLeaveRequestRepository) markReviewed(tx *gorm.DB, requestID uint, status string, reviewerID uint, comment string) error {
	now := time.Now()
	result := tx.Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", requestID, models.LeaveStatusPending).
		Updates(map[string]interface{}{
			"status":        status,
			"admin_comment": comment,
			"reviewed_by":   reviewerID,
			"reviewed_at":   now,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotPending
	}
	return nil
}

func (r *GormLeaveRequestRepository) ApproveDays(requestID, employeeID uint, days int, reviewerID uint, comment string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.markReviewed(tx, requestID, models.LeaveStatusApproved, reviewerID, comment); err != nil {
			return err
		}

		// Пересчитанные дни фиксируются в заявке на момент утверждения
		if err := tx.Model(&models.LeaveRequest{}).
			Where("id = ?", requestID).
			UpdateColumn("calculated_days", days).Error; err != nil {
			return err
		}

		return r.employeeRepo.IncrementUsedLeave(tx, employeeID, days)
	})
}

func (r *GormLeaveRequestRepository) ApproveRecovery(requestID, employeeID uint, hours float64, reviewerID uint, comment string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.markReviewed(tx, requestID, models.LeaveStatusApproved, reviewerID, comment); err != nil {
			return err
		}
		return r.employeeRepo.AddRecoveryHours(tx, employeeID, hours)
	})
}

func (r *GormLeaveRequestRepository) Reject(requestID uint, reviewerID uint, comment string) error {
	return r.markReviewed(r.db, requestID, models.LeaveStatusRejected, reviewerID, comment)
}

func (r *GormLeaveRequestRepository) GetApprovedOverlapping(employeeID uint, start, end time.Time) ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	result := r.db.
		Where("employee_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			employeeID, models.LeaveStatusApproved, end, start).
		Find(&requests)

	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}

func (r *GormLeaveRequestRepository) GetApprovedOverlappingAll(start, end time.Time, storeID *uint) ([]models.LeaveRequest, error) {
	query := r.db.
		Where("status = ? AND start_date <= ? AND end_date >= ?",
			models.LeaveStatusApproved, end, start)
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	var requests []models.LeaveRequest
	result := query.Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}

func (r *GormLeaveRequestRepository) GetApprovedStartingAfter(date time.Time) ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	result := r.db.
		Where("status = ? AND start_date > ?", models.LeaveStatusApproved, date).
		Order("start_date ASC").
		Find(&requests)

	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}

func (r *GormLeaveRequestRepository) CountByEmployeeAndStatus(employeeID uint, status string) (int64, error) {
	var count int64
	result := r.db.Model(&models.LeaveRequest{}).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *GormLeaveRequestRepository) CountByStatus(status string) (int64, error) {
	var count int64
	result := r.db.Model(&models.LeaveRequest{}).
		Where("status = ?", status).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
