package models

import "time"

// Статусы отметки посещаемости
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord — отметка посещаемости: не более одной записи на пару
// (сотрудник, дата), запись обновляется атомарным upsert-ом.
type AttendanceRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date" json:"date"`

	// Снимок магазина на момент отметки
	StoreID *uint `gorm:"index" json:"store_id"`

	Status        string `gorm:"type:varchar(10);not null" json:"status"`
	Justification string `json:"justification"`

	// Кто зафиксировал отсутствие; для present всегда NULL
	JustifiedBy *uint `json:"justified_by"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance"
}

// IsValid проверяет валидность данных
func (a *AttendanceRecord) IsValid() bool {
	if a.EmployeeID == 0 {
		return false
	}
	if a.Date.IsZero() {
		return false
	}
	return a.Status == AttendancePresent || a.Status == AttendanceAbsent
}
