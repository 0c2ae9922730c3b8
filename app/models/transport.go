package models

import "time"

// TransportRoute is a bus route students can be assigned to. The current fee
// policy charges a flat rate for any route, so no per-route fee is stored.
type TransportRoute struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Driver    string     `json:"driver,omitempty"`
	Vehicle   string     `json:"vehicle,omitempty" gorm:"type:varchar(20)"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
