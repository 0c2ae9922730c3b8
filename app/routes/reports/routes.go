package reports

import (
	"github.com/Digicommunique/nexusedupro-sub000/app/config"
	"github.com/Digicommunique/nexusedupro-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupReportsRoutes sets up the consolidated fiscal report routes
func SetupReportsRoutes(app *fiber.App) {
	reports := app.Group("/reports")
	reports.Use(auth.AuthMiddleware)

	reports.Get("/", func(c *fiber.Ctx) error {
		return c.Render("reports/index", fiber.Map{
			"Title":       "Fiscal Reports - NexusEduPro",
			"CurrentPage": "reports",
		})
	})

	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/fiscal", func(c *fiber.Ctx) error {
		return GetFiscalReportAPI(c, config.GetDB())
	})
}
