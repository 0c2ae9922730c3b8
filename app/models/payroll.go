package models

import "time"

// PayrollRecord is one month's salary disbursement for a staff member.
// Month uses the "2006-01" layout.
type PayrollRecord struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StaffName     string    `json:"staff_name" gorm:"not null" validate:"required"`
	Designation   string    `json:"designation,omitempty"`
	Month         string    `json:"month" gorm:"not null;index;type:varchar(7)" validate:"required"`
	BasicSalary   float64   `json:"basic_salary" gorm:"not null;type:numeric" validate:"gte=0"`
	Allowance     float64   `json:"allowance" gorm:"not null;type:numeric;default:0" validate:"gte=0"`
	Deduction     float64   `json:"deduction" gorm:"not null;type:numeric;default:0" validate:"gte=0"`
	NetSalary     float64   `json:"net_salary" gorm:"not null;type:numeric" validate:"gte=0"`
	GeneratedDate time.Time `json:"generated_date" gorm:"not null;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}
