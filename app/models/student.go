package models

import "time"

// Student represents an enrolled student. Grade and section are stored as
// labels (e.g. "7", "A") because fee policy rules match on them directly.
type Student struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	AdmissionNo      string     `json:"admission_no" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName        string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName         string     `json:"last_name" gorm:"not null" validate:"required"`
	Grade            string     `json:"grade" gorm:"not null;index" validate:"required"`
	Section          string     `json:"section" gorm:"not null" validate:"required"`
	FeeGroupID       *string    `json:"fee_group_id,omitempty" gorm:"index;type:uuid"`
	TransportRouteID *string    `json:"transport_route_id,omitempty" gorm:"index;type:uuid"`
	FatherContact    string     `json:"father_contact,omitempty" gorm:"type:varchar(20)"`
	GuardianContact  string     `json:"guardian_contact,omitempty" gorm:"type:varchar(20)"`
	IsActive         bool       `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// FullName joins first and last name for receipts and report rows.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
