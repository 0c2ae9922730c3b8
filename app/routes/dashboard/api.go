package dashboard

import (
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/config"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

// GetDashboard renders the dashboard page
func GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard",
		"CurrentPage": "dashboard",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"user":        user,
	})
}

// GetDashboardStatsAPI returns headline figures for the dashboard: active
// student count, today's collection, and this month's income and expense.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var activeStudents int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students
						   WHERE is_active = true AND deleted_at IS NULL`).Scan(&activeStudents); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard statistics")
	}

	today := time.Now().Format("2006-01-02")
	var collectedToday float64
	err := db.QueryRow(`SELECT COALESCE(SUM(amount_paid), 0) FROM fee_receipts
						WHERE payment_date::date = $1`, today).Scan(&collectedToday)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard statistics")
	}

	monthStart := time.Now().Format("2006-01") + "-01"
	var monthIncome float64
	err = db.QueryRow(`SELECT COALESCE(SUM(amount_paid), 0) FROM fee_receipts
					   WHERE payment_date >= $1::date`, monthStart).Scan(&monthIncome)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard statistics")
	}

	var monthPayroll, monthAssets float64
	err = db.QueryRow(`SELECT COALESCE(SUM(net_salary), 0) FROM payroll_records
					   WHERE generated_date >= $1::date`, monthStart).Scan(&monthPayroll)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard statistics")
	}
	err = db.QueryRow(`SELECT COALESCE(SUM(cost), 0) FROM asset_purchases
					   WHERE deleted_at IS NULL AND purchase_date >= $1::date`, monthStart).Scan(&monthAssets)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard statistics")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"active_students": activeStudents,
			"collected_today": collectedToday,
			"month_income":    monthIncome,
			"month_expense":   monthPayroll + monthAssets,
		},
	})
}
