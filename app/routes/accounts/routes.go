package accounts

import (
	"github.com/Digicommunique/nexusedupro-sub000/app/config"
	"github.com/Digicommunique/nexusedupro-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupAccountsRoutes sets up the ledger book and P&L routes
func SetupAccountsRoutes(app *fiber.App) {
	accounts := app.Group("/accounts")
	accounts.Use(auth.AuthMiddleware)

	accounts.Get("/", func(c *fiber.Ctx) error {
		return c.Render("accounts/index", fiber.Map{
			"Title":       "Accounts - NexusEduPro",
			"CurrentPage": "accounts",
		})
	})

	api := app.Group("/api/accounts")
	api.Use(auth.AuthMiddleware)

	api.Get("/cashbook", func(c *fiber.Ctx) error {
		return GetCashbookAPI(c, config.GetDB())
	})
	api.Get("/bankbook", func(c *fiber.Ctx) error {
		return GetBankbookAPI(c, config.GetDB())
	})
	api.Get("/general-ledger", func(c *fiber.Ctx) error {
		return GetGeneralLedgerAPI(c, config.GetDB())
	})
	api.Get("/profit-loss", func(c *fiber.Ctx) error {
		return GetProfitLossAPI(c, config.GetDB())
	})
}
