package students

import (
	"database/sql"

	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetStudentsAPI returns students, optionally filtered by grade and section
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	grade := c.Query("grade")
	section := c.Query("section")

	all, err := database.GetAllStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	students := []*models.Student{}
	for _, s := range all {
		if grade != "" && s.Grade != grade {
			continue
		}
		if section != "" && s.Section != section {
			continue
		}
		students = append(students, s)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"count":   len(students),
	})
}

// GetStudentByIDAPI returns one student
func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

type studentRequest struct {
	AdmissionNo      string  `json:"admission_no" validate:"required"`
	FirstName        string  `json:"first_name" validate:"required"`
	LastName         string  `json:"last_name" validate:"required"`
	Grade            string  `json:"grade" validate:"required"`
	Section          string  `json:"section" validate:"required"`
	FeeGroupID       *string `json:"fee_group_id" validate:"omitempty,uuid"`
	TransportRouteID *string `json:"transport_route_id" validate:"omitempty,uuid"`
	FatherContact    string  `json:"father_contact"`
	GuardianContact  string  `json:"guardian_contact"`
}

// CreateStudentAPI registers a student
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields")
	}

	s := &models.Student{
		AdmissionNo:      req.AdmissionNo,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Grade:            req.Grade,
		Section:          req.Section,
		FeeGroupID:       req.FeeGroupID,
		TransportRouteID: req.TransportRouteID,
		FatherContact:    req.FatherContact,
		GuardianContact:  req.GuardianContact,
		IsActive:         true,
	}

	query := `INSERT INTO students
			  (admission_no, first_name, last_name, grade, section, fee_group_id,
			   transport_route_id, father_contact, guardian_contact)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, s.AdmissionNo, s.FirstName, s.LastName, s.Grade, s.Section,
		s.FeeGroupID, s.TransportRouteID, s.FatherContact, s.GuardianContact).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    s,
	})
}

// UpdateStudentAPI edits a student record. Receipts already written keep the
// name/grade/section they were issued with.
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields")
	}

	query := `UPDATE students
			  SET admission_no = $1, first_name = $2, last_name = $3, grade = $4, section = $5,
				  fee_group_id = $6, transport_route_id = $7, father_contact = $8,
				  guardian_contact = $9, updated_at = NOW()
			  WHERE id = $10 AND deleted_at IS NULL`
	result, err := db.Exec(query, req.AdmissionNo, req.FirstName, req.LastName, req.Grade,
		req.Section, req.FeeGroupID, req.TransportRouteID, req.FatherContact,
		req.GuardianContact, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
	})
}

// DeactivateStudentAPI soft deletes a student; their receipts remain in the
// ledger.
func DeactivateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	result, err := db.Exec(`UPDATE students SET is_active = false, deleted_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate student")
	}
	if rows, err := result.RowsAffected(); err != nil || rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deactivated successfully",
	})
}
