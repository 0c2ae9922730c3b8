package assets

import (
	"github.com/Digicommunique/nexusedupro-sub000/app/config"
	"github.com/Digicommunique/nexusedupro-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupAssetRoutes sets up the asset purchase routes
func SetupAssetRoutes(app *fiber.App) {
	api := app.Group("/api/assets")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetAssetsAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateAssetAPI(c, config.GetDB())
	})
	api.Delete("/:id", auth.RoleMiddleware("admin"), func(c *fiber.Ctx) error {
		return DeleteAssetAPI(c, config.GetDB())
	})
}
