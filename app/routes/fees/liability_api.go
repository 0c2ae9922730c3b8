package fees

import (
	"database/sql"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/billing"
	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/gofiber/fiber/v2"
)

// LoadProviders fetches the cross-module rows and wraps them in the billing
// provider adapters. Shared by the liability preview, the receipt counter and
// the fiscal report.
func LoadProviders(db *sql.DB, policy billing.Policy) (billing.Providers, error) {
	students, err := database.GetAllStudents(db)
	if err != nil {
		return billing.Providers{}, err
	}
	routes, err := database.GetTransportRoutes(db)
	if err != nil {
		return billing.Providers{}, err
	}
	allotments, err := database.GetHostelAllotments(db)
	if err != nil {
		return billing.Providers{}, err
	}
	rooms, err := database.GetHostelRooms(db)
	if err != nil {
		return billing.Providers{}, err
	}
	issues, err := database.GetBookIssues(db)
	if err != nil {
		return billing.Providers{}, err
	}
	reports, err := database.GetDamageReports(db)
	if err != nil {
		return billing.Providers{}, err
	}

	return billing.Providers{
		Transport: billing.NewTransportCharges(policy, students, routes),
		Hostel:    billing.NewHostelCharges(allotments, rooms),
		Library:   billing.NewLibraryCharges(issues),
		Damages:   billing.NewDamageUnitCharges(policy, reports),
	}, nil
}

// GetStudentLiabilityAPI returns the itemized liability snapshot for one
// student, computed fresh from the current fee policy and cross-module data.
func GetStudentLiabilityAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	masters, err := database.GetFeeMasters(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee masters")
	}

	policy := billing.DefaultPolicy()
	providers, err := LoadProviders(db, policy)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load charge providers")
	}

	snap := billing.ComputeLiability(student, masters, providers, policy, time.Now())

	// Paid so far, recomputed from the receipt ledger.
	receipts, err := database.GetFeeReceipts(db, database.ReceiptFilters{StudentID: studentID})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch receipts")
	}
	var paid float64
	for _, r := range receipts {
		paid += r.AmountPaid
	}
	due := snap.GrandTotal - paid
	if due < 0 {
		due = 0
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"student":   student,
			"liability": snap,
			"paid":      paid,
			"due":       due,
		},
	})
}
