package library

import (
	"github.com/Digicommunique/nexusedupro-sub000/app/config"
	"github.com/Digicommunique/nexusedupro-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupLibraryRoutes sets up book issue and damage report routes
func SetupLibraryRoutes(app *fiber.App) {
	issuesAPI := app.Group("/api/library/issues")
	issuesAPI.Use(auth.AuthMiddleware)

	issuesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetIssuesAPI(c, config.GetDB())
	})
	issuesAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateIssueAPI(c, config.GetDB())
	})
	issuesAPI.Put("/:id/return", func(c *fiber.Ctx) error {
		return ReturnBookAPI(c, config.GetDB())
	})

	damagesAPI := app.Group("/api/damages")
	damagesAPI.Use(auth.AuthMiddleware)

	damagesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetDamagesAPI(c, config.GetDB())
	})
	damagesAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateDamageAPI(c, config.GetDB())
	})
	damagesAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteDamageAPI(c, config.GetDB())
	})
}
