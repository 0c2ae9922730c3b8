package transport

import (
	"database/sql"

	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type routeRequest struct {
	Name    string `json:"name" validate:"required"`
	Driver  string `json:"driver"`
	Vehicle string `json:"vehicle"`
}

// GetRoutesAPI returns all transport routes
func GetRoutesAPI(c *fiber.Ctx, db *sql.DB) error {
	routes, err := database.GetTransportRoutes(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch routes")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    routes,
	})
}

// CreateRouteAPI creates a transport route
func CreateRouteAPI(c *fiber.Ctx, db *sql.DB) error {
	var req routeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}

	r := &models.TransportRoute{Name: req.Name, Driver: req.Driver, Vehicle: req.Vehicle}
	query := `INSERT INTO transport_routes (name, driver, vehicle) VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`
	if err := db.QueryRow(query, r.Name, r.Driver, r.Vehicle).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create route")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    r,
	})
}

// UpdateRouteAPI edits a transport route
func UpdateRouteAPI(c *fiber.Ctx, db *sql.DB) error {
	var req routeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}

	result, err := db.Exec(`UPDATE transport_routes SET name = $1, driver = $2, vehicle = $3, updated_at = NOW()
							WHERE id = $4 AND deleted_at IS NULL`,
		req.Name, req.Driver, req.Vehicle, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update route")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Route updated successfully",
	})
}

// DeleteRouteAPI soft deletes a route; students assigned to it simply stop
// accruing the transport charge.
func DeleteRouteAPI(c *fiber.Ctx, db *sql.DB) error {
	result, err := db.Exec(`UPDATE transport_routes SET deleted_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete route")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Route deleted successfully",
	})
}
