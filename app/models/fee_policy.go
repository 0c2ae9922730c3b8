package models

import "time"

// GradeAll is the wildcard grade on a fee master: the rule applies to every
// student regardless of grade.
const GradeAll = "All"

// FeeType defines a billable head such as "Tuition Fee" or "Exam Fee".
type FeeType struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// FeeGroup is a cohort label such as "Day Scholar" or "Boarder".
type FeeGroup struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// FeeMaster is a policy rule: students in Grade (or GradeAll) owe Amount for
// the fee type by DueDate. Several masters can apply to one student at once;
// their amounts are additive.
type FeeMaster struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FeeTypeID  string     `json:"fee_type_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeGroupID string     `json:"fee_group_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount     float64    `json:"amount" gorm:"not null;type:numeric" validate:"gte=0"`
	DueDate    time.Time  `json:"due_date" gorm:"not null;type:date" validate:"required"`
	Grade      string     `json:"grade" gorm:"not null;index" validate:"required"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	FeeType  *FeeType  `json:"fee_type,omitempty" gorm:"foreignKey:FeeTypeID;references:ID"`
	FeeGroup *FeeGroup `json:"fee_group,omitempty" gorm:"foreignKey:FeeGroupID;references:ID"`
}

// AppliesTo reports whether this rule covers a student in the given grade.
func (m *FeeMaster) AppliesTo(grade string) bool {
	return m.Grade == GradeAll || m.Grade == grade
}
