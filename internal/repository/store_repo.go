package repository

import (
	"errors"
	"staff-planner/internal/models"

	"gorm.io/gorm"
)

type StoreRepository interface {
	GetByID(id uint) (*models.Store, error)
	GetAll() ([]models.Store, error)
}

type GormStoreRepository struct {
	db *gorm.DB
}

func NewGormStoreRepository(db *gorm.DB) (StoreRepository, error) {
	if err := db.AutoMigrate(&models.Store{}); err != nil {
		return nil, err
	}
	return &GormStoreRepository{db: db}, nil
}

func (r *GormStoreRepository) GetByID(id uint) (*models.Store, error) {
	var store models.Store
	result := r.db.First(&store, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &store, nil
}

func (r *GormStoreRepository) GetAll() ([]models.Store, error) {
	var stores []models.Store
	result := r.db.Order("name ASC").Find(&stores)
	if result.Error != nil {
		return nil, result.Error
	}
	return stores, nil
}
