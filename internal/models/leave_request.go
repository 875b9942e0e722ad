package models

import "time"

// Типы заявок. RequestTypeRecoveryHours — специальный маркер для запроса
// часов восстановления, а не настоящий диапазон дат.
const (
	RequestTypeVacation      = "vacation"
	RequestTypeSick          = "sick"
	RequestTypePersonal      = "personal"
	RequestTypeOther         = "other"
	RequestTypeRecoveryHours = "recovery_hours"
)

// Статусы заявки: переход только pending -> approved или pending -> rejected
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequest struct {
	ID         uint `gorm:"primarykey" json:"id"`
	EmployeeID uint `gorm:"not null;index" json:"employee_id"`

	// Снимки на момент подачи: историческое отображение должно пережить
	// переименования сотрудника и магазина
	EmployeeName string `json:"employee_name"`
	StoreID      *uint  `gorm:"index" json:"store_id"`

	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	Reason    string    `json:"reason"`
	Status    string    `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`

	// Рабочие дни, посчитанные по графику сотрудника на момент подачи
	CalculatedDays int `gorm:"not null;default:0" json:"calculated_days"`

	// Заполняется только для заявок типа recovery_hours
	RecoveryHoursRequested float64 `gorm:"not null;default:0" json:"recovery_hours_requested"`

	AdminComment string     `json:"admin_comment"`
	ReviewedBy   *uint      `json:"reviewed_by"`
	SubmittedAt  time.Time  `gorm:"autoCreateTime" json:"submitted_at"`
	ReviewedAt   *time.Time `json:"reviewed_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// IsPending проверяет, ожидает ли заявка рассмотрения
func (r *LeaveRequest) IsPending() bool {
	return r.Status == LeaveStatusPending
}

// IsRecoveryHours проверяет, является ли заявка запросом часов восстановления
func (r *LeaveRequest) IsRecoveryHours() bool {
	return r.Type == RequestTypeRecoveryHours
}

// Covers проверяет, попадает ли дата в диапазон заявки (включительно)
func (r *LeaveRequest) Covers(date time.Time) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}
