package fees

import (
	"database/sql"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

// GetFeeMastersAPI returns all fee masters with their fee type names
func GetFeeMastersAPI(c *fiber.Ctx, db *sql.DB) error {
	masters, err := database.GetFeeMasters(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee masters")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    masters,
	})
}

// CreateFeeMasterAPI creates a fee policy rule
func CreateFeeMasterAPI(c *fiber.Ctx, db *sql.DB) error {
	type request struct {
		FeeTypeID  string  `json:"fee_type_id" validate:"required,uuid"`
		FeeGroupID string  `json:"fee_group_id" validate:"required,uuid"`
		Amount     float64 `json:"amount" validate:"gte=0"`
		DueDate    string  `json:"due_date" validate:"required"`
		Grade      string  `json:"grade" validate:"required"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields")
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "due_date must be a valid date (YYYY-MM-DD)")
	}

	m := &models.FeeMaster{
		FeeTypeID:  req.FeeTypeID,
		FeeGroupID: req.FeeGroupID,
		Amount:     req.Amount,
		DueDate:    dueDate,
		Grade:      req.Grade,
	}

	query := `INSERT INTO fee_masters (fee_type_id, fee_group_id, amount, due_date, grade)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	err = db.QueryRow(query, m.FeeTypeID, m.FeeGroupID, m.Amount, m.DueDate, m.Grade).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee master")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    m,
	})
}

// DeleteFeeMasterAPI soft deletes a fee policy rule
func DeleteFeeMasterAPI(c *fiber.Ctx, db *sql.DB) error {
	masterID := c.Params("id")

	result, err := db.Exec(`UPDATE fee_masters SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, masterID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee master")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Fee master not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee master deleted successfully",
	})
}
