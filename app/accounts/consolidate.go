// Package accounts folds fee receipts, payroll disbursements and asset
// purchases into one normalized transaction stream and derives the ledger
// books (cashbook, bankbook, general ledger) and the profit and loss
// statement from it. The stream is rebuilt from source rows on every request;
// no balance is ever stored.
package accounts

import (
	"fmt"
	"sort"

	"github.com/Digicommunique/nexusedupro-sub000/app/models"
)

// BuildTransactions merges the three money-movement sources into a single
// stream sorted by date descending. The sort is stable, so transactions on
// the same date keep their source order: receipts first, then payroll, then
// assets, each in the order its list arrived. Calling it twice on the same
// inputs yields an identical stream.
func BuildTransactions(receipts []*models.FeeReceipt, payrolls []*models.PayrollRecord, assets []*models.AssetPurchase) []models.FinancialTransaction {
	txns := make([]models.FinancialTransaction, 0, len(receipts)+len(payrolls)+len(assets))

	for _, r := range receipts {
		txns = append(txns, models.FinancialTransaction{
			ID:          "FEE-" + r.ID,
			Date:        r.PaymentDate,
			Type:        models.TxnIncome,
			Category:    models.CategoryStudentFees,
			Amount:      r.AmountPaid,
			Method:      receiptMethod(r.PaymentMethod),
			Description: fmt.Sprintf("Fee receipt %s - %s (%s-%s)", r.ReceiptNo, r.StudentName, r.Grade, r.Section),
			ReferenceID: r.ID,
		})
	}

	for _, p := range payrolls {
		txns = append(txns, models.FinancialTransaction{
			ID:          "PAY-" + p.ID,
			Date:        p.GeneratedDate,
			Type:        models.TxnExpense,
			Category:    models.CategoryStaffPayroll,
			Amount:      p.NetSalary,
			Method:      models.TxnMethodBank,
			Description: fmt.Sprintf("Salary %s - %s", p.Month, p.StaffName),
			ReferenceID: p.ID,
		})
	}

	for _, a := range assets {
		txns = append(txns, models.FinancialTransaction{
			ID:          "AST-" + a.ID,
			Date:        a.PurchaseDate,
			Type:        models.TxnExpense,
			Category:    models.CategoryAssetPurchase,
			Amount:      a.Cost,
			Method:      models.TxnMethodBank,
			Description: "Asset purchase - " + a.Name,
			ReferenceID: a.ID,
		})
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	return txns
}

// receiptMethod maps a receipt's payment method onto a ledger method bucket.
// Cash stays cash, cheque and UPI keep their labels for the bankbook, and
// anything else (Online today) is treated as a bank movement.
func receiptMethod(paymentMethod string) string {
	switch paymentMethod {
	case models.MethodCash:
		return models.TxnMethodCash
	case models.MethodCheque:
		return models.TxnMethodCheque
	case models.MethodUPI:
		return models.TxnMethodUPI
	default:
		return models.TxnMethodBank
	}
}
