package assets

import (
	"database/sql"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetAssetsAPI returns all asset purchases
func GetAssetsAPI(c *fiber.Ctx, db *sql.DB) error {
	assets, err := database.GetAssetPurchases(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assets")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    assets,
	})
}

type assetRequest struct {
	Name         string  `json:"name" validate:"required"`
	Cost         float64 `json:"cost" validate:"gt=0"`
	Supplier     string  `json:"supplier"`
	PurchaseDate string  `json:"purchase_date" validate:"required"`
}

// CreateAssetAPI records an asset purchase
func CreateAssetAPI(c *fiber.Ctx, db *sql.DB) error {
	var req assetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields")
	}
	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid purchase_date, expected YYYY-MM-DD")
	}

	a := &models.AssetPurchase{
		Name:         req.Name,
		Cost:         req.Cost,
		Supplier:     req.Supplier,
		PurchaseDate: purchaseDate,
	}
	query := `INSERT INTO asset_purchases (name, cost, supplier, purchase_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	if err := db.QueryRow(query, a.Name, a.Cost, a.Supplier, a.PurchaseDate).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create asset")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    a,
	})
}

// DeleteAssetAPI soft deletes an asset purchase. The expense drops out of the
// books on the next consolidation.
func DeleteAssetAPI(c *fiber.Ctx, db *sql.DB) error {
	result, err := db.Exec(`UPDATE asset_purchases SET deleted_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete asset")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Asset not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Asset deleted successfully",
	})
}
