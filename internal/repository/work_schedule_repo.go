package repository

import (
	"staff-planner/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WorkScheduleRepository interface {
	GetByEmployee(employeeID uint) ([]models.WorkScheduleEntry, error)
	GetByEmployees(employeeIDs []uint) (map[uint][]models.WorkScheduleEntry, error)
	Replace(employeeID uint, entries []models.WorkScheduleEntry) error
}

type GormWorkScheduleRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkScheduleRepository(db *gorm.DB) (*GormWorkScheduleRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.WorkScheduleEntry{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate work_schedules table")
		return nil, err
	}

	return &GormWorkScheduleRepository{db: db, logger: logger}, nil
}

func (r *GormWorkScheduleRepository) GetByEmployee(employeeID uint) ([]models.WorkScheduleEntry, error) {
	var entries []models.WorkScheduleEntry
	result := r.db.
		Where("employee_id = ?", employeeID).
		Order("day_of_week ASC").
		Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work schedule")
		return nil, result.Error
	}

	return entries, nil
}

func (r *GormWorkScheduleRepository) GetByEmployees(employeeIDs []uint) (map[uint][]models.WorkScheduleEntry, error) {
	schedules := make(map[uint][]models.WorkScheduleEntry, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return schedules, nil
	}

	var entries []models.WorkScheduleEntry
	result := r.db.
		Where("employee_id IN ?", employeeIDs).
		Order("day_of_week ASC").
		Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work schedules")
		return nil, result.Error
	}

	for _, entry := range entries {
		schedules[entry.EmployeeID] = append(schedules[entry.EmployeeID], entry)
	}
	return schedules, nil
}

// Replace полностью заменяет график сотрудника: удаление всех строк и
// вставка новых. Частичного обновления нет.
func (r *GormWorkScheduleRepository) Replace(employeeID uint, entries []models.WorkScheduleEntry) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"entries":     len(entries),
	}).Info("Replacing work schedule")

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).
			Delete(&models.WorkScheduleEntry{}).Error; err != nil {
			return err
		}

		for i := range entries {
			entries[i].ID = 0
			entries[i].EmployeeID = employeeID
		}
		return tx.Create(&entries).Error
	})
}
