package models

import "time"

// Payment methods accepted at the fee counter.
const (
	MethodCash   = "Cash"
	MethodOnline = "Online"
	MethodUPI    = "UPI"
	MethodCheque = "Cheque"
)

// FeeReceipt is a ledger entry for one realized payment. Receipts are
// append-only: there is no update or delete path anywhere in the system, and
// corrections are recorded as new entries. Student name, grade and section are
// denormalized at creation time so the receipt stays a faithful historical
// record even after the student is promoted.
type FeeReceipt struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ReceiptNo      string    `json:"receipt_no" gorm:"uniqueIndex;not null"`
	StudentID      string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentName    string    `json:"student_name" gorm:"not null"`
	Grade          string    `json:"grade" gorm:"not null;index"`
	Section        string    `json:"section" gorm:"not null"`
	AmountPaid     float64   `json:"amount_paid" gorm:"not null;type:numeric" validate:"gt=0"`
	Discount       float64   `json:"discount" gorm:"not null;type:numeric;default:0" validate:"gte=0"`
	DiscountReason string    `json:"discount_reason,omitempty" gorm:"type:text"`
	Penalty        float64   `json:"penalty" gorm:"not null;type:numeric;default:0" validate:"gte=0"`
	PenaltyReason  string    `json:"penalty_reason,omitempty" gorm:"type:text"`
	PaymentDate    time.Time `json:"payment_date" gorm:"not null;index"`
	PaymentMethod  string    `json:"payment_method" gorm:"not null;type:varchar(20)" validate:"required,oneof=Cash Online UPI Cheque"`
	Session        string    `json:"session" gorm:"not null;index" validate:"required"`
	Description    string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}
