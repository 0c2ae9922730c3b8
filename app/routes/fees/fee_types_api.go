package fees

import (
	"database/sql"

	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetFeeTypesAPI returns all fee types
func GetFeeTypesAPI(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT id, name, COALESCE(description, ''), created_at, updated_at
			  FROM fee_types WHERE deleted_at IS NULL ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee types")
	}
	defer rows.Close()

	feeTypes := []*models.FeeType{}
	for rows.Next() {
		ft := &models.FeeType{}
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Description, &ft.CreatedAt, &ft.UpdatedAt); err != nil {
			continue
		}
		feeTypes = append(feeTypes, ft)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    feeTypes,
	})
}

// CreateFeeTypeAPI creates a new fee type
func CreateFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	type request struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}

	ft := &models.FeeType{Name: req.Name, Description: req.Description}
	query := `INSERT INTO fee_types (name, description) VALUES ($1, $2)
			  RETURNING id, created_at, updated_at`
	if err := db.QueryRow(query, ft.Name, ft.Description).Scan(&ft.ID, &ft.CreatedAt, &ft.UpdatedAt); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee type")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    ft,
	})
}

// UpdateFeeTypeAPI edits a fee type. Once a fee master references the type
// its name is frozen; only the description may change.
func UpdateFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	feeTypeID := c.Params("id")

	type request struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	var currentName string
	var referenced bool
	err := db.QueryRow(`SELECT t.name, EXISTS (
						  SELECT 1 FROM fee_masters m
						  WHERE m.fee_type_id = t.id AND m.deleted_at IS NULL
						)
						FROM fee_types t WHERE t.id = $1 AND t.deleted_at IS NULL`,
		feeTypeID).Scan(&currentName, &referenced)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee type not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee type")
	}

	if referenced && req.Name != "" && req.Name != currentName {
		return fiber.NewError(fiber.StatusConflict, "Fee type is referenced by fee masters; only the description can be edited")
	}

	name := currentName
	if req.Name != "" {
		name = req.Name
	}

	_, err = db.Exec(`UPDATE fee_types SET name = $1, description = $2, updated_at = NOW()
					  WHERE id = $3 AND deleted_at IS NULL`, name, req.Description, feeTypeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee type")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee type updated successfully",
	})
}

// DeleteFeeTypeAPI soft deletes a fee type that no master references
func DeleteFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	feeTypeID := c.Params("id")

	var referenced bool
	err := db.QueryRow(`SELECT EXISTS (
						  SELECT 1 FROM fee_masters
						  WHERE fee_type_id = $1 AND deleted_at IS NULL
						)`, feeTypeID).Scan(&referenced)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check fee type usage")
	}
	if referenced {
		return fiber.NewError(fiber.StatusConflict, "Fee type is referenced by fee masters")
	}

	result, err := db.Exec(`UPDATE fee_types SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, feeTypeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee type")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Fee type not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee type deleted successfully",
	})
}

// GetFeeGroupsAPI returns all fee groups
func GetFeeGroupsAPI(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT id, name, COALESCE(description, ''), created_at, updated_at
			  FROM fee_groups WHERE deleted_at IS NULL ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee groups")
	}
	defer rows.Close()

	groups := []*models.FeeGroup{}
	for rows.Next() {
		g := &models.FeeGroup{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
			continue
		}
		groups = append(groups, g)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    groups,
	})
}

// CreateFeeGroupAPI creates a new fee group
func CreateFeeGroupAPI(c *fiber.Ctx, db *sql.DB) error {
	type request struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}

	g := &models.FeeGroup{Name: req.Name, Description: req.Description}
	query := `INSERT INTO fee_groups (name, description) VALUES ($1, $2)
			  RETURNING id, created_at, updated_at`
	if err := db.QueryRow(query, g.Name, g.Description).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee group")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    g,
	})
}

// UpdateFeeGroupAPI edits a fee group
func UpdateFeeGroupAPI(c *fiber.Ctx, db *sql.DB) error {
	groupID := c.Params("id")

	type request struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}

	result, err := db.Exec(`UPDATE fee_groups SET name = $1, description = $2, updated_at = NOW()
							WHERE id = $3 AND deleted_at IS NULL`, req.Name, req.Description, groupID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee group")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Fee group not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee group updated successfully",
	})
}

// DeleteFeeGroupAPI soft deletes a fee group that no master references
func DeleteFeeGroupAPI(c *fiber.Ctx, db *sql.DB) error {
	groupID := c.Params("id")

	var referenced bool
	err := db.QueryRow(`SELECT EXISTS (
						  SELECT 1 FROM fee_masters
						  WHERE fee_group_id = $1 AND deleted_at IS NULL
						)`, groupID).Scan(&referenced)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check fee group usage")
	}
	if referenced {
		return fiber.NewError(fiber.StatusConflict, "Fee group is referenced by fee masters")
	}

	result, err := db.Exec(`UPDATE fee_groups SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, groupID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee group")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Fee group not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee group deleted successfully",
	})
}
