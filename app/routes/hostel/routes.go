package hostel

import (
	"github.com/Digicommunique/nexusedupro-sub000/app/config"
	"github.com/Digicommunique/nexusedupro-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupHostelRoutes sets up the hostel room and allotment routes
func SetupHostelRoutes(app *fiber.App) {
	roomsAPI := app.Group("/api/hostel/rooms")
	roomsAPI.Use(auth.AuthMiddleware)

	roomsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetRoomsAPI(c, config.GetDB())
	})
	roomsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateRoomAPI(c, config.GetDB())
	})
	roomsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateRoomAPI(c, config.GetDB())
	})
	roomsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteRoomAPI(c, config.GetDB())
	})

	allotAPI := app.Group("/api/hostel/allotments")
	allotAPI.Use(auth.AuthMiddleware)

	allotAPI.Get("/", func(c *fiber.Ctx) error {
		return GetAllotmentsAPI(c, config.GetDB())
	})
	allotAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateAllotmentAPI(c, config.GetDB())
	})
	allotAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return VacateAllotmentAPI(c, config.GetDB())
	})
}
