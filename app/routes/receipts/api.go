package receipts

import (
	"database/sql"
	"strings"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/database"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// receiptPrefix starts every human-readable receipt number.
const receiptPrefix = "NEP"

// NewReceiptNo builds an institution-prefixed receipt number with a random
// suffix, e.g. NEP-3F2A9C1B.
func NewReceiptNo() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return receiptPrefix + "-" + suffix
}

// RecordPaymentRequest is the payload for recording a payment at the counter.
// Discount and penalty are always concrete numbers; omitting them means 0.
type RecordPaymentRequest struct {
	StudentID      string  `json:"student_id" validate:"required,uuid"`
	AmountPaid     float64 `json:"amount_paid" validate:"required,gt=0"`
	Discount       float64 `json:"discount" validate:"gte=0"`
	DiscountReason string  `json:"discount_reason"`
	Penalty        float64 `json:"penalty" validate:"gte=0"`
	PenaltyReason  string  `json:"penalty_reason"`
	PaymentMethod  string  `json:"payment_method" validate:"required,oneof=Cash Online UPI Cheque"`
	Session        string  `json:"session" validate:"required"`
	Description    string  `json:"description"`
}

// RecordPaymentAPI appends a receipt to the ledger. The student's name, grade
// and section are copied onto the receipt so it stays correct after
// promotions or transfers. Either the insert succeeds and the receipt exists,
// or it fails and nothing changed.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields: "+err.Error())
	}

	student, err := database.GetStudentByID(db, req.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	receipt := &models.FeeReceipt{
		ID:             uuid.NewString(),
		ReceiptNo:      NewReceiptNo(),
		StudentID:      student.ID,
		StudentName:    student.FullName(),
		Grade:          student.Grade,
		Section:        student.Section,
		AmountPaid:     req.AmountPaid,
		Discount:       req.Discount,
		DiscountReason: req.DiscountReason,
		Penalty:        req.Penalty,
		PenaltyReason:  req.PenaltyReason,
		PaymentDate:    time.Now(),
		PaymentMethod:  req.PaymentMethod,
		Session:        req.Session,
		Description:    req.Description,
	}

	if err := database.InsertFeeReceipt(db, receipt); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    receipt,
		"message": "Payment recorded successfully",
	})
}

// GetReceiptsAPI lists receipts with optional student/session/date filters
func GetReceiptsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.ReceiptFilters{
		StudentID: c.Query("student_id"),
		Session:   c.Query("session"),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from must be a valid date (YYYY-MM-DD)")
		}
		filters.DateFrom = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "to must be a valid date (YYYY-MM-DD)")
		}
		// Include the whole end day.
		end := t.AddDate(0, 0, 1).Add(-time.Second)
		filters.DateTo = &end
	}

	receipts, err := database.GetFeeReceipts(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch receipts")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    receipts,
	})
}

// GetReceiptByIDAPI returns a single receipt
func GetReceiptByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	receiptID := c.Params("id")

	query := `SELECT id, receipt_no, student_id, student_name, grade, section,
			  amount_paid, discount, COALESCE(discount_reason, ''), penalty, COALESCE(penalty_reason, ''),
			  payment_date, payment_method, session, COALESCE(description, ''), created_at
			  FROM fee_receipts WHERE id = $1`

	r := &models.FeeReceipt{}
	err := db.QueryRow(query, receiptID).Scan(
		&r.ID, &r.ReceiptNo, &r.StudentID, &r.StudentName, &r.Grade, &r.Section,
		&r.AmountPaid, &r.Discount, &r.DiscountReason, &r.Penalty, &r.PenaltyReason,
		&r.PaymentDate, &r.PaymentMethod, &r.Session, &r.Description, &r.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Receipt not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch receipt")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    r,
	})
}
