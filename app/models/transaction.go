package models

import "time"

// Transaction types and the method buckets the ledger books filter on.
const (
	TxnIncome  = "Income"
	TxnExpense = "Expense"

	TxnMethodCash   = "Cash"
	TxnMethodBank   = "Bank"
	TxnMethodCheque = "Cheque"
	TxnMethodUPI    = "UPI"
)

// Transaction categories, fixed per originating record kind.
const (
	CategoryStudentFees   = "Student Fees"
	CategoryStaffPayroll  = "Staff Payroll"
	CategoryAssetPurchase = "Asset Purchase"
)

// FinancialTransaction is the normalized shape every money movement is folded
// into before the ledger books are derived. It is never persisted; the stream
// is rebuilt from receipts, payroll and asset rows on every request.
// ReferenceID points back at the originating record.
type FinancialTransaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Description string    `json:"description"`
	ReferenceID string    `json:"reference_id"`
}
