package repository

import (
	"time"

	"staff-planner/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	// Upsert атомарно создает или обновляет отметку по ключу
	// (employee_id, date); два одновременных вызова детерминированно
	// сводятся к одной записи.
	Upsert(record *models.AttendanceRecord) error

	GetByEmployeeAndDate(employeeID uint, date time.Time) (*models.AttendanceRecord, error)
	GetRange(start, end time.Time, storeID *uint) ([]models.AttendanceRecord, error)
	CountByStatus(employeeID uint, start, end time.Time, status string) (int64, error)
	CountForDate(date time.Time, storeID *uint, status string) (int64, error)
}

type GormAttendanceRepository struct {
	db *gorm.DB
}

func NewGormAttendanceRepository(db *gorm.DB) (AttendanceRepository, error) {
	if err := db.AutoMigrate(&models.AttendanceRecord{}); err != nil {
		return nil, err
	}
	return &GormAttendanceRepository{db: db}, nil
}

func (r *GormAttendanceRepository) Upsert(record *models.AttendanceRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"store_id", "status", "justification", "justified_by", "updated_at",
		}),
	}).Create(record).Error
}

func (r *GormAttendanceRepository) GetByEmployeeAndDate(employeeID uint, date time.Time) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	result := r.db.
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&record)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}

func (r *GormAttendanceRepository) GetRange(start, end time.Time, storeID *uint) ([]models.AttendanceRecord, error) {
	query := r.db.Where("date >= ? AND date <= ?", start, end)
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	var records []models.AttendanceRecord
	result := query.Order("date ASC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (r *GormAttendanceRepository) CountByStatus(employeeID uint, start, end time.Time, status string) (int64, error) {
	var count int64
	result := r.db.Model(&models.AttendanceRecord{}).
		Where("employee_id = ? AND date >= ? AND date <= ? AND status = ?",
			employeeID, start, end, status).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *GormAttendanceRepository) CountForDate(date time.Time, storeID *uint, status string) (int64, error) {
	query := r.db.Model(&models.AttendanceRecord{}).
		Where("date = ? AND status = ?", date, status)
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	var count int64
	if result := query.Count(&count); result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
