package models

import "time"

// BookIssue records a book lent to a student, with any late or damage fee
// accrued on it. Fines count toward the student's liability whether or not
// the book has come back.
type BookIssue struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID  string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	BookTitle  string     `json:"book_title" gorm:"not null" validate:"required"`
	IssuedAt   time.Time  `json:"issued_at" gorm:"not null"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	LateFee    float64    `json:"late_fee" gorm:"not null;type:numeric;default:0" validate:"gte=0"`
	DamageFee  float64    `json:"damage_fee" gorm:"not null;type:numeric;default:0" validate:"gte=0"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// DamageReport records property damage attributed to a student. StudentID is
// an explicit reference; each report costs a flat damage charge.
type DamageReport struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID  *string    `json:"student_id,omitempty" gorm:"index;type:uuid"`
	ItemName   string     `json:"item_name" gorm:"not null" validate:"required"`
	ReportedBy string     `json:"reported_by,omitempty"`
	Notes      string     `json:"notes,omitempty" gorm:"type:text"`
	ReportedAt time.Time  `json:"reported_at" gorm:"not null"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
