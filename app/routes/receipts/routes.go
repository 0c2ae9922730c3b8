package receipts

import (
	"github.com/Digicommunique/nexusedupro-sub000/app/config"
	"github.com/Digicommunique/nexusedupro-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupReceiptsRoutes sets up the fee receipt routes. The ledger is
// append-only, so there is deliberately no PUT or DELETE here; a wrong
// receipt is corrected by recording another one.
func SetupReceiptsRoutes(app *fiber.App) {
	receipts := app.Group("/receipts")
	receipts.Use(auth.AuthMiddleware)

	receipts.Get("/", func(c *fiber.Ctx) error {
		return c.Render("receipts/index", fiber.Map{
			"Title":       "Fee Receipts - NexusEduPro",
			"CurrentPage": "receipts",
		})
	})

	api := app.Group("/api/receipts")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetReceiptsAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetReceiptByIDAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})
}
