package accounts

import "github.com/Digicommunique/nexusedupro-sub000/app/models"

// Book is a filtered view over the transaction stream with its net balance.
type Book struct {
	Entries []models.FinancialTransaction `json:"entries"`
	Income  float64                       `json:"income"`
	Expense float64                       `json:"expense"`
	Balance float64                       `json:"balance"`
}

// Cashbook keeps only cash movements.
func Cashbook(txns []models.FinancialTransaction) Book {
	return makeBook(txns, func(t models.FinancialTransaction) bool {
		return t.Method == models.TxnMethodCash
	})
}

// Bankbook keeps bank, cheque and UPI movements. Together with the cashbook
// it partitions the general ledger.
func Bankbook(txns []models.FinancialTransaction) Book {
	return makeBook(txns, func(t models.FinancialTransaction) bool {
		switch t.Method {
		case models.TxnMethodBank, models.TxnMethodCheque, models.TxnMethodUPI:
			return true
		}
		return false
	})
}

// GeneralLedger is the full unfiltered stream as a book.
func GeneralLedger(txns []models.FinancialTransaction) Book {
	return makeBook(txns, func(models.FinancialTransaction) bool { return true })
}

func makeBook(txns []models.FinancialTransaction, keep func(models.FinancialTransaction) bool) Book {
	book := Book{Entries: []models.FinancialTransaction{}}
	for _, t := range txns {
		if !keep(t) {
			continue
		}
		book.Entries = append(book.Entries, t)
		if t.Type == models.TxnIncome {
			book.Income += t.Amount
		} else {
			book.Expense += t.Amount
		}
	}
	book.Balance = book.Income - book.Expense
	return book
}

// CategorySummary accumulates income and expense for one category.
type CategorySummary struct {
	Category string  `json:"category"`
	Income   float64 `json:"income"`
	Expense  float64 `json:"expense"`
}

// ProfitLossStatement groups the stream by category. Categories appear in
// order of their first transaction.
type ProfitLossStatement struct {
	Categories   []CategorySummary `json:"categories"`
	TotalIncome  float64           `json:"total_income"`
	TotalExpense float64           `json:"total_expense"`
	NetProfit    float64           `json:"net_profit"`
}

// ProfitAndLoss builds the P&L statement. A category's bucket is created
// lazily by its first transaction.
func ProfitAndLoss(txns []models.FinancialTransaction) ProfitLossStatement {
	stmt := ProfitLossStatement{Categories: []CategorySummary{}}
	index := make(map[string]int)

	for _, t := range txns {
		i, ok := index[t.Category]
		if !ok {
			i = len(stmt.Categories)
			index[t.Category] = i
			stmt.Categories = append(stmt.Categories, CategorySummary{Category: t.Category})
		}
		if t.Type == models.TxnIncome {
			stmt.Categories[i].Income += t.Amount
			stmt.TotalIncome += t.Amount
		} else {
			stmt.Categories[i].Expense += t.Amount
			stmt.TotalExpense += t.Amount
		}
	}

	stmt.NetProfit = stmt.TotalIncome - stmt.TotalExpense
	return stmt
}
