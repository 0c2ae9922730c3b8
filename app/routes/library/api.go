package library

import (
	"database/sql"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetIssuesAPI returns all book issues
func GetIssuesAPI(c *fiber.Ctx, db *sql.DB) error {
	issues, err := database.GetBookIssues(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch book issues")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    issues,
	})
}

type issueRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	BookTitle string `json:"book_title" validate:"required"`
	IssuedAt  string `json:"issued_at"`
}

// CreateIssueAPI lends a book to a student
func CreateIssueAPI(c *fiber.Ctx, db *sql.DB) error {
	var req issueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields")
	}

	issuedAt := time.Now()
	if req.IssuedAt != "" {
		parsed, err := time.Parse("2006-01-02", req.IssuedAt)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid issued_at, expected YYYY-MM-DD")
		}
		issuedAt = parsed
	}

	b := &models.BookIssue{StudentID: req.StudentID, BookTitle: req.BookTitle, IssuedAt: issuedAt}
	query := `INSERT INTO book_issues (student_id, book_title, issued_at) VALUES ($1, $2, $3)
			  RETURNING id, created_at`
	if err := db.QueryRow(query, b.StudentID, b.BookTitle, b.IssuedAt).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create book issue")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    b,
	})
}

// ReturnBookAPI marks a book returned and records any late/damage fee assessed
// by the librarian. Fees accrue to the student's liability from here on.
func ReturnBookAPI(c *fiber.Ctx, db *sql.DB) error {
	type request struct {
		LateFee   float64 `json:"late_fee" validate:"gte=0"`
		DamageFee float64 `json:"damage_fee" validate:"gte=0"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fees must not be negative")
	}

	result, err := db.Exec(`UPDATE book_issues
							SET returned_at = NOW(), late_fee = $1, damage_fee = $2
							WHERE id = $3 AND returned_at IS NULL`,
		req.LateFee, req.DamageFee, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record return")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Open book issue not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Book return recorded",
	})
}

// GetDamagesAPI returns all damage reports
func GetDamagesAPI(c *fiber.Ctx, db *sql.DB) error {
	reports, err := database.GetDamageReports(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch damage reports")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reports,
	})
}

type damageRequest struct {
	StudentID  *string `json:"student_id" validate:"omitempty,uuid"`
	ItemName   string  `json:"item_name" validate:"required"`
	ReportedBy string  `json:"reported_by"`
	Notes      string  `json:"notes"`
}

// CreateDamageAPI files a damage report. The student reference is optional;
// unattributed damage is kept on record but charged to nobody.
func CreateDamageAPI(c *fiber.Ctx, db *sql.DB) error {
	var req damageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields")
	}

	d := &models.DamageReport{
		StudentID:  req.StudentID,
		ItemName:   req.ItemName,
		ReportedBy: req.ReportedBy,
		Notes:      req.Notes,
		ReportedAt: time.Now(),
	}
	query := `INSERT INTO damage_reports (student_id, item_name, reported_by, notes, reported_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	err := db.QueryRow(query, d.StudentID, d.ItemName, d.ReportedBy, d.Notes, d.ReportedAt).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create damage report")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    d,
	})
}

// DeleteDamageAPI withdraws a damage report
func DeleteDamageAPI(c *fiber.Ctx, db *sql.DB) error {
	result, err := db.Exec(`UPDATE damage_reports SET deleted_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete damage report")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Damage report not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Damage report deleted successfully",
	})
}
