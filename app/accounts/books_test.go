package accounts

import (
	"testing"

	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStream() []models.FinancialTransaction {
	return BuildTransactions(
		[]*models.FeeReceipt{
			receipt("r1", 4500, models.MethodCash, day),
			receipt("r2", 3000, models.MethodUPI, day.AddDate(0, 0, -1)),
			receipt("r3", 1200, models.MethodCheque, day.AddDate(0, 0, -2)),
			receipt("r4", 800, models.MethodOnline, day.AddDate(0, 0, -3)),
		},
		[]*models.PayrollRecord{payroll("p1", 30000, day.AddDate(0, 0, -1))},
		[]*models.AssetPurchase{asset("a1", 5000, day.AddDate(0, 0, -4))},
	)
}

func TestCashAndBankPartitionTheLedger(t *testing.T) {
	txns := sampleStream()
	cash := Cashbook(txns)
	bank := Bankbook(txns)
	ledger := GeneralLedger(txns)

	// No overlap, no omission.
	require.Equal(t, len(ledger.Entries), len(cash.Entries)+len(bank.Entries))

	seen := make(map[string]bool)
	for _, e := range cash.Entries {
		seen[e.ID] = true
	}
	for _, e := range bank.Entries {
		require.False(t, seen[e.ID], "transaction %s in both books", e.ID)
		seen[e.ID] = true
	}
	for _, e := range ledger.Entries {
		assert.True(t, seen[e.ID], "transaction %s missing from both books", e.ID)
	}

	assert.InDelta(t, ledger.Balance, cash.Balance+bank.Balance, 1e-9)
}

func TestBookBalances(t *testing.T) {
	txns := sampleStream()

	cash := Cashbook(txns)
	assert.Equal(t, 4500.0, cash.Income)
	assert.Equal(t, 0.0, cash.Expense)
	assert.Equal(t, 4500.0, cash.Balance)

	bank := Bankbook(txns)
	assert.Equal(t, 3000.0+1200+800, bank.Income)
	assert.Equal(t, 30000.0+5000, bank.Expense)
	assert.Equal(t, bank.Income-bank.Expense, bank.Balance)

	ledger := GeneralLedger(txns)
	assert.Equal(t, 9500.0, ledger.Income)
	assert.Equal(t, 35000.0, ledger.Expense)
	assert.Equal(t, -25500.0, ledger.Balance)
}

func TestBooksOnEmptyStream(t *testing.T) {
	empty := Cashbook(nil)
	assert.NotNil(t, empty.Entries)
	assert.Zero(t, empty.Balance)
}

func TestProfitAndLossInvariants(t *testing.T) {
	stmt := ProfitAndLoss(sampleStream())

	assert.Equal(t, stmt.TotalIncome-stmt.TotalExpense, stmt.NetProfit)

	var income, expense float64
	for _, c := range stmt.Categories {
		income += c.Income
		expense += c.Expense
	}
	assert.Equal(t, stmt.TotalIncome, income)
	assert.Equal(t, stmt.TotalExpense, expense)
}

func TestProfitAndLossBucketsByFirstAppearance(t *testing.T) {
	stmt := ProfitAndLoss(sampleStream())

	require.Len(t, stmt.Categories, 3)
	// Stream is date descending: newest receipt first, so Student Fees opens
	// its bucket before Staff Payroll and Asset Purchase.
	assert.Equal(t, models.CategoryStudentFees, stmt.Categories[0].Category)
	assert.Equal(t, 9500.0, stmt.Categories[0].Income)
	assert.Zero(t, stmt.Categories[0].Expense)
}

func TestProfitAndLossEmpty(t *testing.T) {
	stmt := ProfitAndLoss(nil)
	assert.Empty(t, stmt.Categories)
	assert.Zero(t, stmt.NetProfit)
}
