package models

import "time"

// Типы ручных корректировок баланса
const (
	AdjustmentLeaveDays     = "leave_days"
	AdjustmentRecoveryHours = "recovery_hours"
)

// LeaveAdjustment — строка аудита ручной корректировки баланса.
// Только добавляется, никогда не изменяется и не удаляется.
type LeaveAdjustment struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	EmployeeID     uint      `gorm:"not null;index" json:"employee_id"`
	AdjustmentType string    `gorm:"type:varchar(20);not null" json:"adjustment_type"`
	Amount         float64   `gorm:"not null" json:"amount"`
	Reason         string    `gorm:"not null" json:"reason"`
	AdjustedBy     uint      `gorm:"not null" json:"adjusted_by"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LeaveAdjustment) TableName() string {
	return "leave_adjustments"
}
