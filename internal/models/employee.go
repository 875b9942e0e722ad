package models

import "time"

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type Employee struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Position string `json:"position"`
	Role     string `gorm:"default:'employee';index" json:"role"`

	// Сотрудник может быть не привязан к магазину
	StoreID *uint `gorm:"index" json:"store_id"`

	// Баланс отпускных дней: used_leave меняется только через
	// утверждение заявок и ручные корректировки
	TotalLeavePerYear int     `gorm:"not null;default:25" json:"total_leave_per_year"`
	UsedLeave         int     `gorm:"not null;default:0" json:"used_leave"`
	RecoveryHours     float64 `gorm:"not null;default:0" json:"recovery_hours"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Store *Store `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// Remaining возвращает остаток отпускных дней
func (e *Employee) Remaining() int {
	return e.TotalLeavePerYear - e.UsedLeave
}

// IsAdmin проверяет, является ли сотрудник администратором
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// IsValid проверяет валидность данных
func (e *Employee) IsValid() bool {
	if e.Name == "" {
		return false
	}
	if e.TotalLeavePerYear < 0 {
		return false
	}
	if e.UsedLeave < 0 {
		return false
	}
	if e.RecoveryHours < 0 {
		return false
	}
	return true
}
