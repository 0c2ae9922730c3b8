package payroll

import (
	"github.com/Digicommunique/nexusedupro-sub000/app/config"
	"github.com/Digicommunique/nexusedupro-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupPayrollRoutes sets up the payroll routes
func SetupPayrollRoutes(app *fiber.App) {
	api := app.Group("/api/payroll")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPayrollAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreatePayrollAPI(c, config.GetDB())
	})
	api.Post("/generate", auth.RoleMiddleware("admin"), func(c *fiber.Ctx) error {
		return GeneratePayrollAPI(c, config.GetDB())
	})
}
