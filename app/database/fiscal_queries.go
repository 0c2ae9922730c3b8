package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/models"
)

// Fetchers for the rows the reconciliation engine consumes. Each returns the
// full current row set; derived figures (liability, due, books, P&L) are
// always recomputed from these rather than from any stored balance.

func GetFeeMasters(db *sql.DB) ([]*models.FeeMaster, error) {
	query := `SELECT m.id, m.fee_type_id, m.fee_group_id, m.amount, m.due_date, m.grade,
			  m.created_at, m.updated_at, t.name
			  FROM fee_masters m
			  JOIN fee_types t ON m.fee_type_id = t.id
			  WHERE m.deleted_at IS NULL
			  ORDER BY m.due_date, t.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	masters := []*models.FeeMaster{}
	for rows.Next() {
		m := &models.FeeMaster{}
		var typeName string
		err := rows.Scan(&m.ID, &m.FeeTypeID, &m.FeeGroupID, &m.Amount, &m.DueDate, &m.Grade,
			&m.CreatedAt, &m.UpdatedAt, &typeName)
		if err != nil {
			return nil, err
		}
		m.FeeType = &models.FeeType{ID: m.FeeTypeID, Name: typeName}
		masters = append(masters, m)
	}
	return masters, rows.Err()
}

// ReceiptFilters narrows receipt listings; zero values mean "any".
type ReceiptFilters struct {
	StudentID string
	Session   string
	DateFrom  *time.Time
	DateTo    *time.Time
}

func GetFeeReceipts(db *sql.DB, f ReceiptFilters) ([]*models.FeeReceipt, error) {
	query := `SELECT id, receipt_no, student_id, student_name, grade, section,
			  amount_paid, discount, COALESCE(discount_reason, ''), penalty, COALESCE(penalty_reason, ''),
			  payment_date, payment_method, session, COALESCE(description, ''), created_at
			  FROM fee_receipts WHERE 1=1`

	var args []interface{}
	argIndex := 1

	if f.StudentID != "" {
		query += fmt.Sprintf(" AND student_id = $%d", argIndex)
		args = append(args, f.StudentID)
		argIndex++
	}
	if f.Session != "" {
		query += fmt.Sprintf(" AND session = $%d", argIndex)
		args = append(args, f.Session)
		argIndex++
	}
	if f.DateFrom != nil {
		query += fmt.Sprintf(" AND payment_date >= $%d", argIndex)
		args = append(args, *f.DateFrom)
		argIndex++
	}
	if f.DateTo != nil {
		query += fmt.Sprintf(" AND payment_date <= $%d", argIndex)
		args = append(args, *f.DateTo)
		argIndex++
	}

	query += " ORDER BY payment_date DESC, created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receipts := []*models.FeeReceipt{}
	for rows.Next() {
		r := &models.FeeReceipt{}
		err := rows.Scan(&r.ID, &r.ReceiptNo, &r.StudentID, &r.StudentName, &r.Grade, &r.Section,
			&r.AmountPaid, &r.Discount, &r.DiscountReason, &r.Penalty, &r.PenaltyReason,
			&r.PaymentDate, &r.PaymentMethod, &r.Session, &r.Description, &r.CreatedAt)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}

// InsertFeeReceipt appends a receipt to the ledger. This is the only write
// path for receipts; there is no update or delete.
func InsertFeeReceipt(db *sql.DB, r *models.FeeReceipt) error {
	query := `INSERT INTO fee_receipts
			  (id, receipt_no, student_id, student_name, grade, section, amount_paid,
			   discount, discount_reason, penalty, penalty_reason, payment_date,
			   payment_method, session, description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			  RETURNING created_at`

	err := db.QueryRow(query,
		r.ID, r.ReceiptNo, r.StudentID, r.StudentName, r.Grade, r.Section, r.AmountPaid,
		r.Discount, r.DiscountReason, r.Penalty, r.PenaltyReason, r.PaymentDate,
		r.PaymentMethod, r.Session, r.Description,
	).Scan(&r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %v", err)
	}
	return nil
}

func GetTransportRoutes(db *sql.DB) ([]*models.TransportRoute, error) {
	query := `SELECT id, name, COALESCE(driver, ''), COALESCE(vehicle, ''), created_at, updated_at
			  FROM transport_routes WHERE deleted_at IS NULL ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := []*models.TransportRoute{}
	for rows.Next() {
		r := &models.TransportRoute{}
		if err := rows.Scan(&r.ID, &r.Name, &r.Driver, &r.Vehicle, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func GetHostelRooms(db *sql.DB) ([]*models.HostelRoom, error) {
	query := `SELECT id, number, capacity, monthly_fee, created_at, updated_at
			  FROM hostel_rooms WHERE deleted_at IS NULL ORDER BY number`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []*models.HostelRoom{}
	for rows.Next() {
		r := &models.HostelRoom{}
		if err := rows.Scan(&r.ID, &r.Number, &r.Capacity, &r.MonthlyFee, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

func GetHostelAllotments(db *sql.DB) ([]*models.HostelAllotment, error) {
	query := `SELECT id, student_id, room_id, created_at
			  FROM hostel_allotments WHERE deleted_at IS NULL`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	allotments := []*models.HostelAllotment{}
	for rows.Next() {
		a := &models.HostelAllotment{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.RoomID, &a.CreatedAt); err != nil {
			return nil, err
		}
		allotments = append(allotments, a)
	}
	return allotments, rows.Err()
}

func GetBookIssues(db *sql.DB) ([]*models.BookIssue, error) {
	query := `SELECT id, student_id, book_title, issued_at, returned_at, late_fee, damage_fee, created_at
			  FROM book_issues`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	issues := []*models.BookIssue{}
	for rows.Next() {
		b := &models.BookIssue{}
		if err := rows.Scan(&b.ID, &b.StudentID, &b.BookTitle, &b.IssuedAt, &b.ReturnedAt,
			&b.LateFee, &b.DamageFee, &b.CreatedAt); err != nil {
			return nil, err
		}
		issues = append(issues, b)
	}
	return issues, rows.Err()
}

func GetDamageReports(db *sql.DB) ([]*models.DamageReport, error) {
	query := `SELECT id, student_id, item_name, COALESCE(reported_by, ''), COALESCE(notes, ''),
			  reported_at, created_at
			  FROM damage_reports WHERE deleted_at IS NULL`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []*models.DamageReport{}
	for rows.Next() {
		d := &models.DamageReport{}
		if err := rows.Scan(&d.ID, &d.StudentID, &d.ItemName, &d.ReportedBy, &d.Notes,
			&d.ReportedAt, &d.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, d)
	}
	return reports, rows.Err()
}

func GetPayrollRecords(db *sql.DB) ([]*models.PayrollRecord, error) {
	query := `SELECT id, staff_name, COALESCE(designation, ''), month,
			  basic_salary, allowance, deduction, net_salary, generated_date, created_at
			  FROM payroll_records ORDER BY generated_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.PayrollRecord{}
	for rows.Next() {
		p := &models.PayrollRecord{}
		if err := rows.Scan(&p.ID, &p.StaffName, &p.Designation, &p.Month,
			&p.BasicSalary, &p.Allowance, &p.Deduction, &p.NetSalary,
			&p.GeneratedDate, &p.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

func GetAssetPurchases(db *sql.DB) ([]*models.AssetPurchase, error) {
	query := `SELECT id, name, cost, COALESCE(supplier, ''), purchase_date, created_at
			  FROM asset_purchases WHERE deleted_at IS NULL ORDER BY purchase_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []*models.AssetPurchase{}
	for rows.Next() {
		a := &models.AssetPurchase{}
		if err := rows.Scan(&a.ID, &a.Name, &a.Cost, &a.Supplier, &a.PurchaseDate, &a.CreatedAt); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}
