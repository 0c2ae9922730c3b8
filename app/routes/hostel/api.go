package hostel

import (
	"database/sql"

	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetRoomsAPI returns all hostel rooms
func GetRoomsAPI(c *fiber.Ctx, db *sql.DB) error {
	rooms, err := database.GetHostelRooms(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch rooms")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rooms,
	})
}

type roomRequest struct {
	Number     string  `json:"number" validate:"required"`
	Capacity   int     `json:"capacity" validate:"gte=1"`
	MonthlyFee float64 `json:"monthly_fee" validate:"gte=0"`
}

// CreateRoomAPI creates a hostel room
func CreateRoomAPI(c *fiber.Ctx, db *sql.DB) error {
	var req roomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Capacity == 0 {
		req.Capacity = 1
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields")
	}

	r := &models.HostelRoom{Number: req.Number, Capacity: req.Capacity, MonthlyFee: req.MonthlyFee}
	query := `INSERT INTO hostel_rooms (number, capacity, monthly_fee) VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`
	if err := db.QueryRow(query, r.Number, r.Capacity, r.MonthlyFee).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create room")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    r,
	})
}

// UpdateRoomAPI edits a room; a fee change shows up in liability on the next
// computation.
func UpdateRoomAPI(c *fiber.Ctx, db *sql.DB) error {
	var req roomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields")
	}

	result, err := db.Exec(`UPDATE hostel_rooms SET number = $1, capacity = $2, monthly_fee = $3, updated_at = NOW()
							WHERE id = $4 AND deleted_at IS NULL`,
		req.Number, req.Capacity, req.MonthlyFee, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update room")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Room not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Room updated successfully",
	})
}

// DeleteRoomAPI soft deletes a room
func DeleteRoomAPI(c *fiber.Ctx, db *sql.DB) error {
	result, err := db.Exec(`UPDATE hostel_rooms SET deleted_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete room")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Room not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Room deleted successfully",
	})
}

// GetAllotmentsAPI returns current allotments
func GetAllotmentsAPI(c *fiber.Ctx, db *sql.DB) error {
	allotments, err := database.GetHostelAllotments(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch allotments")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    allotments,
	})
}

// CreateAllotmentAPI assigns a student to a room. An existing allotment is
// vacated first so each student holds at most one.
func CreateAllotmentAPI(c *fiber.Ctx, db *sql.DB) error {
	type request struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		RoomID    string `json:"room_id" validate:"required,uuid"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields")
	}

	tx, err := db.Begin()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to start transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE hostel_allotments SET deleted_at = NOW()
						  WHERE student_id = $1 AND deleted_at IS NULL`, req.StudentID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to vacate previous allotment")
	}

	a := &models.HostelAllotment{StudentID: req.StudentID, RoomID: req.RoomID}
	err = tx.QueryRow(`INSERT INTO hostel_allotments (student_id, room_id) VALUES ($1, $2)
					   RETURNING id, created_at`, a.StudentID, a.RoomID).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create allotment")
	}

	if err := tx.Commit(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to commit allotment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    a,
	})
}

// VacateAllotmentAPI ends an allotment
func VacateAllotmentAPI(c *fiber.Ctx, db *sql.DB) error {
	result, err := db.Exec(`UPDATE hostel_allotments SET deleted_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to vacate allotment")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Allotment not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Allotment vacated successfully",
	})
}
