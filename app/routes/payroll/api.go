package payroll

import (
	"database/sql"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetPayrollAPI returns payroll records, optionally filtered by month
func GetPayrollAPI(c *fiber.Ctx, db *sql.DB) error {
	month := c.Query("month")

	all, err := database.GetPayrollRecords(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payroll records")
	}

	records := []*models.PayrollRecord{}
	for _, p := range all {
		if month != "" && p.Month != month {
			continue
		}
		records = append(records, p)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
		"count":   len(records),
	})
}

type payrollRequest struct {
	StaffName   string  `json:"staff_name" validate:"required"`
	Designation string  `json:"designation"`
	Month       string  `json:"month" validate:"required"`
	BasicSalary float64 `json:"basic_salary" validate:"gte=0"`
	Allowance   float64 `json:"allowance" validate:"gte=0"`
	Deduction   float64 `json:"deduction" validate:"gte=0"`
}

// CreatePayrollAPI records a single salary disbursement
func CreatePayrollAPI(c *fiber.Ctx, db *sql.DB) error {
	var req payrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields")
	}
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month, expected YYYY-MM")
	}

	p := &models.PayrollRecord{
		StaffName:     req.StaffName,
		Designation:   req.Designation,
		Month:         req.Month,
		BasicSalary:   req.BasicSalary,
		Allowance:     req.Allowance,
		Deduction:     req.Deduction,
		NetSalary:     req.BasicSalary + req.Allowance - req.Deduction,
		GeneratedDate: time.Now(),
	}
	if p.NetSalary < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Deduction exceeds gross salary")
	}

	query := `INSERT INTO payroll_records
			  (staff_name, designation, month, basic_salary, allowance, deduction, net_salary, generated_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at`
	err := db.QueryRow(query, p.StaffName, p.Designation, p.Month, p.BasicSalary,
		p.Allowance, p.Deduction, p.NetSalary, p.GeneratedDate).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create payroll record")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    p,
	})
}

// GeneratePayrollAPI rolls the previous month's payroll forward into the given
// month. Staff already paid for that month are skipped, so the run is safe to
// repeat.
func GeneratePayrollAPI(c *fiber.Ctx, db *sql.DB) error {
	type request struct {
		Month string `json:"month" validate:"required"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Month is required")
	}
	target, err := time.Parse("2006-01", req.Month)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month, expected YYYY-MM")
	}
	prevMonth := target.AddDate(0, -1, 0).Format("2006-01")

	all, err := database.GetPayrollRecords(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payroll records")
	}

	alreadyPaid := map[string]bool{}
	var template []*models.PayrollRecord
	for _, p := range all {
		switch p.Month {
		case req.Month:
			alreadyPaid[p.StaffName] = true
		case prevMonth:
			template = append(template, p)
		}
	}

	generated := 0
	skipped := 0
	now := time.Now()
	for _, prev := range template {
		if alreadyPaid[prev.StaffName] {
			skipped++
			continue
		}

		query := `INSERT INTO payroll_records
				  (staff_name, designation, month, basic_salary, allowance, deduction, net_salary, generated_date)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err := db.Exec(query, prev.StaffName, prev.Designation, req.Month,
			prev.BasicSalary, prev.Allowance, prev.Deduction, prev.NetSalary, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate payroll")
		}
		generated++
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Payroll generated",
		"generated": generated,
		"skipped":   skipped,
	})
}
