package models

import "time"

// HostelRoom holds the monthly charge billed to any student allotted to it.
type HostelRoom struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Number     string     `json:"number" gorm:"uniqueIndex;not null" validate:"required"`
	Capacity   int        `json:"capacity" gorm:"not null;default:1" validate:"gte=1"`
	MonthlyFee float64    `json:"monthly_fee" gorm:"not null;type:numeric" validate:"gte=0"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// HostelAllotment links a student to a room. A student has at most one
// current allotment.
type HostelAllotment struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RoomID    string     `json:"room_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Room *HostelRoom `json:"room,omitempty" gorm:"foreignKey:RoomID;references:ID"`
}
