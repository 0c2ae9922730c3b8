package models

import "time"

// AssetPurchase records institutional property bought by the school. It feeds
// the expense side of the consolidated ledgers.
type AssetPurchase struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string     `json:"name" gorm:"not null" validate:"required"`
	Cost         float64    `json:"cost" gorm:"not null;type:numeric" validate:"gt=0"`
	Supplier     string     `json:"supplier,omitempty"`
	PurchaseDate time.Time  `json:"purchase_date" gorm:"not null;index" validate:"required"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
