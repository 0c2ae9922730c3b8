package reports

import (
	"database/sql"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/billing"
	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/Digicommunique/nexusedupro-sub000/app/reports"
	"github.com/Digicommunique/nexusedupro-sub000/app/routes/fees"
	"github.com/gofiber/fiber/v2"
)

// GetFiscalReportAPI builds the consolidated liability/paid/due report for
// the filtered cohort, plus the grade-wise chart series.
//
// Query params: grade, section, session, from, to (dates as YYYY-MM-DD; both
// optional and open-ended).
func GetFiscalReportAPI(c *fiber.Ctx, db *sql.DB) error {
	filter := reports.FiscalFilter{
		Grade:   c.Query("grade"),
		Section: c.Query("section"),
		Session: c.Query("session"),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from must be a valid date (YYYY-MM-DD)")
		}
		filter.DateFrom = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "to must be a valid date (YYYY-MM-DD)")
		}
		end := t.AddDate(0, 0, 1).Add(-time.Second)
		filter.DateTo = &end
	}

	students, err := database.GetAllStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	masters, err := database.GetFeeMasters(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee masters")
	}
	receipts, err := database.GetFeeReceipts(db, database.ReceiptFilters{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch receipts")
	}

	policy := billing.DefaultPolicy()
	providers, err := fees.LoadProviders(db, policy)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load charge providers")
	}

	report := reports.BuildFiscalReport(students, masters, receipts, providers, policy, filter, time.Now())

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}
