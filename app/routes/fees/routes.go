package fees

import (
	"github.com/Digicommunique/nexusedupro-sub000/app/config"
	"github.com/Digicommunique/nexusedupro-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes sets up the fee policy routes: fee types, fee groups, fee
// masters and the per-student liability preview.
func SetupFeesRoutes(app *fiber.App) {
	fees := app.Group("/fees")
	fees.Use(auth.AuthMiddleware)

	fees.Get("/", func(c *fiber.Ctx) error {
		return c.Render("fees/index", fiber.Map{
			"Title":       "Fee Policy - NexusEduPro",
			"CurrentPage": "fees",
		})
	})

	feeTypesAPI := app.Group("/api/fee-types")
	feeTypesAPI.Use(auth.AuthMiddleware)

	feeTypesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeeTypesAPI(c, config.GetDB())
	})
	feeTypesAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeTypeAPI(c, config.GetDB())
	})
	feeTypesAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateFeeTypeAPI(c, config.GetDB())
	})
	feeTypesAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeTypeAPI(c, config.GetDB())
	})

	feeGroupsAPI := app.Group("/api/fee-groups")
	feeGroupsAPI.Use(auth.AuthMiddleware)

	feeGroupsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeeGroupsAPI(c, config.GetDB())
	})
	feeGroupsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeGroupAPI(c, config.GetDB())
	})
	feeGroupsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateFeeGroupAPI(c, config.GetDB())
	})
	feeGroupsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeGroupAPI(c, config.GetDB())
	})

	feeMastersAPI := app.Group("/api/fee-masters")
	feeMastersAPI.Use(auth.AuthMiddleware)

	feeMastersAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeeMastersAPI(c, config.GetDB())
	})
	feeMastersAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeMasterAPI(c, config.GetDB())
	})
	feeMastersAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeMasterAPI(c, config.GetDB())
	})

	feesAPI := app.Group("/api/fees")
	feesAPI.Use(auth.AuthMiddleware)

	feesAPI.Get("/liability/:studentId", func(c *fiber.Ctx) error {
		return GetStudentLiabilityAPI(c, config.GetDB())
	})
}
