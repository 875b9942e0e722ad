package repository

import (
	"staff-planner/internal/models"

	"gorm.io/gorm"
)

type LeaveAdjustmentRepository interface {
	Create(adjustment *models.LeaveAdjustment) error
	GetByEmployee(employeeID uint) ([]models.LeaveAdjustment, error)
}

type GormLeaveAdjustmentRepository struct {
	db *gorm.DB
}

func NewGormLeaveAdjustmentRepository(db *gorm.DB) (LeaveAdjustmentRepository, error) {
	if err := db.AutoMigrate(&models.LeaveAdjustment{}); err != nil {
		return nil, err
	}
	return &GormLeaveAdjustmentRepository{db: db}, nil
}

func (r *GormLeaveAdjustmentRepository) Create(adjustment *models.LeaveAdjustment) error {
	return r.db.Create(adjustment).Error
}

func (r *GormLeaveAdjustmentRepository) GetByEmployee(employeeID uint) ([]models.LeaveAdjustment, error) {
	var adjustments []models.LeaveAdjustment
	result := r.db.
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&adjustments)

	if result.Error != nil {
		return nil, result.Error
	}
	return adjustments, nil
}
