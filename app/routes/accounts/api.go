package accounts

import (
	"database/sql"

	"github.com/Digicommunique/nexusedupro-sub000/app/accounts"
	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

// buildStream fetches the three money-movement sources and consolidates
// them. Every book request rebuilds the stream from the current rows; no
// running balance is kept anywhere.
func buildStream(db *sql.DB) ([]models.FinancialTransaction, error) {
	receipts, err := database.GetFeeReceipts(db, database.ReceiptFilters{})
	if err != nil {
		return nil, err
	}
	payrolls, err := database.GetPayrollRecords(db)
	if err != nil {
		return nil, err
	}
	assets, err := database.GetAssetPurchases(db)
	if err != nil {
		return nil, err
	}
	return accounts.BuildTransactions(receipts, payrolls, assets), nil
}

// GetCashbookAPI returns cash movements and their net balance
func GetCashbookAPI(c *fiber.Ctx, db *sql.DB) error {
	txns, err := buildStream(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build transaction stream")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    accounts.Cashbook(txns),
	})
}

// GetBankbookAPI returns bank, cheque and UPI movements and their net balance
func GetBankbookAPI(c *fiber.Ctx, db *sql.DB) error {
	txns, err := buildStream(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build transaction stream")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    accounts.Bankbook(txns),
	})
}

// GetGeneralLedgerAPI returns the full consolidated stream
func GetGeneralLedgerAPI(c *fiber.Ctx, db *sql.DB) error {
	txns, err := buildStream(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build transaction stream")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    accounts.GeneralLedger(txns),
	})
}

// GetProfitLossAPI returns the per-category profit and loss statement
func GetProfitLossAPI(c *fiber.Ctx, db *sql.DB) error {
	txns, err := buildStream(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build transaction stream")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    accounts.ProfitAndLoss(txns),
	})
}
