package accounts

import (
	"testing"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

func receipt(id string, amount float64, method string, date time.Time) *models.FeeReceipt {
	return &models.FeeReceipt{
		ID:            id,
		ReceiptNo:     "NEP-" + id,
		StudentID:     "s1",
		StudentName:   "Asha Verma",
		Grade:         "7",
		Section:       "A",
		AmountPaid:    amount,
		PaymentDate:   date,
		PaymentMethod: method,
		Session:       "2025-26",
	}
}

func payroll(id string, net float64, date time.Time) *models.PayrollRecord {
	return &models.PayrollRecord{ID: id, StaffName: "R. Iyer", Month: date.Format("2006-01"), NetSalary: net, GeneratedDate: date}
}

func asset(id string, cost float64, date time.Time) *models.AssetPurchase {
	return &models.AssetPurchase{ID: id, Name: "Projector", Cost: cost, PurchaseDate: date}
}

func TestBuildTransactionsShapes(t *testing.T) {
	txns := BuildTransactions(
		[]*models.FeeReceipt{receipt("r1", 4500, models.MethodCash, day)},
		[]*models.PayrollRecord{payroll("p1", 30000, day.AddDate(0, 0, -1))},
		[]*models.AssetPurchase{asset("a1", 12000, day.AddDate(0, 0, -2))},
	)
	require.Len(t, txns, 3)

	fee, pay, ast := txns[0], txns[1], txns[2]

	assert.Equal(t, models.TxnIncome, fee.Type)
	assert.Equal(t, models.CategoryStudentFees, fee.Category)
	assert.Equal(t, models.TxnMethodCash, fee.Method)
	assert.Equal(t, "r1", fee.ReferenceID)

	assert.Equal(t, models.TxnExpense, pay.Type)
	assert.Equal(t, models.CategoryStaffPayroll, pay.Category)
	assert.Equal(t, models.TxnMethodBank, pay.Method)

	assert.Equal(t, models.TxnExpense, ast.Type)
	assert.Equal(t, models.CategoryAssetPurchase, ast.Category)
}

func TestBuildTransactionsMethodMapping(t *testing.T) {
	tests := []struct {
		paymentMethod string
		want          string
	}{
		{models.MethodCash, models.TxnMethodCash},
		{models.MethodCheque, models.TxnMethodCheque},
		{models.MethodUPI, models.TxnMethodUPI},
		{models.MethodOnline, models.TxnMethodBank},
	}

	for _, tt := range tests {
		t.Run(tt.paymentMethod, func(t *testing.T) {
			txns := BuildTransactions([]*models.FeeReceipt{receipt("r1", 100, tt.paymentMethod, day)}, nil, nil)
			require.Len(t, txns, 1)
			assert.Equal(t, tt.want, txns[0].Method)
		})
	}
}

func TestBuildTransactionsSortedByDateDescending(t *testing.T) {
	txns := BuildTransactions(
		[]*models.FeeReceipt{receipt("r1", 100, models.MethodCash, day.AddDate(0, 0, -5))},
		[]*models.PayrollRecord{payroll("p1", 30000, day)},
		[]*models.AssetPurchase{asset("a1", 5000, day.AddDate(0, 0, -2))},
	)
	require.Len(t, txns, 3)
	for i := 1; i < len(txns); i++ {
		assert.False(t, txns[i-1].Date.Before(txns[i].Date), "stream must be date descending")
	}
}

func TestBuildTransactionsTieBreakIsSourceOrder(t *testing.T) {
	// Three movements on the same day from different sources keep the
	// documented order: receipts, then payroll, then assets.
	txns := BuildTransactions(
		[]*models.FeeReceipt{receipt("r1", 100, models.MethodCash, day), receipt("r2", 200, models.MethodUPI, day)},
		[]*models.PayrollRecord{payroll("p1", 30000, day)},
		[]*models.AssetPurchase{asset("a1", 5000, day)},
	)
	require.Len(t, txns, 4)
	assert.Equal(t, []string{"FEE-r1", "FEE-r2", "PAY-p1", "AST-a1"},
		[]string{txns[0].ID, txns[1].ID, txns[2].ID, txns[3].ID})
}

func TestBuildTransactionsIdempotent(t *testing.T) {
	receipts := []*models.FeeReceipt{
		receipt("r1", 100, models.MethodCash, day),
		receipt("r2", 250, models.MethodCheque, day.AddDate(0, 0, -1)),
	}
	payrolls := []*models.PayrollRecord{payroll("p1", 30000, day)}
	assets := []*models.AssetPurchase{asset("a1", 5000, day.AddDate(0, 0, -3))}

	first := BuildTransactions(receipts, payrolls, assets)
	second := BuildTransactions(receipts, payrolls, assets)
	require.Equal(t, first, second)
}

func TestBuildTransactionsEmptySources(t *testing.T) {
	txns := BuildTransactions(nil, nil, nil)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
}
