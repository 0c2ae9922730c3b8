package reports

import (
	"testing"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/billing"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func student(id, grade, section string) *models.Student {
	return &models.Student{
		ID:          id,
		AdmissionNo: "ADM-" + id,
		FirstName:   "Student",
		LastName:    id,
		Grade:       grade,
		Section:     section,
	}
}

func tuitionMaster(grade string, amount float64) *models.FeeMaster {
	return &models.FeeMaster{
		ID:        "fm-" + grade,
		FeeTypeID: "ft-tuition",
		Amount:    amount,
		DueDate:   reportDay.AddDate(0, 0, -1),
		Grade:     grade,
	}
}

func paidReceipt(studentID string, amount float64, session string, date time.Time) *models.FeeReceipt {
	return &models.FeeReceipt{
		ID:            "r-" + studentID + date.Format("0102"),
		StudentID:     studentID,
		AmountPaid:    amount,
		PaymentDate:   date,
		PaymentMethod: models.MethodCash,
		Session:       session,
	}
}

func build(students []*models.Student, masters []*models.FeeMaster, receipts []*models.FeeReceipt, f FiscalFilter) FiscalReport {
	return BuildFiscalReport(students, masters, receipts, billing.Providers{}, billing.DefaultPolicy(), f, reportDay)
}

func TestDueIsLiabilityMinusPaid(t *testing.T) {
	students := []*models.Student{student("s1", "7", "A")}
	masters := []*models.FeeMaster{tuitionMaster("7", 4500)}

	// Unpaid: full amount due.
	report := build(students, masters, nil, FiscalFilter{})
	require.Len(t, report.Rows, 1)
	assert.Equal(t, 4500.0, report.Rows[0].Liability)
	assert.Equal(t, 4500.0, report.Rows[0].Due)
	assert.Equal(t, 4500.0, report.Arrears)

	// Fully paid: due recomputes to zero.
	receipts := []*models.FeeReceipt{paidReceipt("s1", 4500, "2025-26", reportDay)}
	report = build(students, masters, receipts, FiscalFilter{})
	assert.Zero(t, report.Rows[0].Due)
	assert.Equal(t, 4500.0, report.Collected)
	assert.Zero(t, report.Arrears)
}

func TestDueNeverNegative(t *testing.T) {
	students := []*models.Student{student("s1", "7", "A")}
	masters := []*models.FeeMaster{tuitionMaster("7", 1000)}
	receipts := []*models.FeeReceipt{paidReceipt("s1", 2500, "2025-26", reportDay)}

	report := build(students, masters, receipts, FiscalFilter{})
	assert.Zero(t, report.Rows[0].Due)
	assert.Equal(t, 2500.0, report.Rows[0].Paid)
}

func TestGradeSectionFilter(t *testing.T) {
	students := []*models.Student{
		student("s1", "7", "A"),
		student("s2", "7", "B"),
		student("s3", "8", "A"),
	}

	report := build(students, nil, nil, FiscalFilter{Grade: "7"})
	assert.Len(t, report.Rows, 2)

	report = build(students, nil, nil, FiscalFilter{Grade: "7", Section: "B"})
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "s2", report.Rows[0].StudentID)
}

func TestSessionAndDateRangeScopePaidOnly(t *testing.T) {
	students := []*models.Student{student("s1", "7", "A")}
	masters := []*models.FeeMaster{tuitionMaster("7", 6000)}
	receipts := []*models.FeeReceipt{
		paidReceipt("s1", 1000, "2024-25", reportDay.AddDate(-1, 0, 0)),
		paidReceipt("s1", 2000, "2025-26", reportDay.AddDate(0, -1, 0)),
		paidReceipt("s1", 3000, "2025-26", reportDay),
	}

	// Session filter drops the old session's receipt; liability is untouched.
	report := build(students, masters, receipts, FiscalFilter{Session: "2025-26"})
	assert.Equal(t, 6000.0, report.Rows[0].Liability)
	assert.Equal(t, 5000.0, report.Rows[0].Paid)

	// Date window keeps only the receipt inside it.
	from := reportDay.AddDate(0, 0, -7)
	report = build(students, masters, receipts, FiscalFilter{DateFrom: &from})
	assert.Equal(t, 3000.0, report.Rows[0].Paid)

	to := reportDay.AddDate(0, 0, -7)
	report = build(students, masters, receipts, FiscalFilter{Session: "2025-26", DateTo: &to})
	assert.Equal(t, 2000.0, report.Rows[0].Paid)
}

func TestEfficiencyBounds(t *testing.T) {
	students := []*models.Student{student("s1", "7", "A")}
	masters := []*models.FeeMaster{tuitionMaster("7", 1000)}

	// Nothing owed, nothing collected: defined as 0, not NaN.
	report := build(students, nil, nil, FiscalFilter{})
	assert.Zero(t, report.Efficiency)

	// Half collected.
	receipts := []*models.FeeReceipt{paidReceipt("s1", 500, "2025-26", reportDay)}
	report = build(students, masters, receipts, FiscalFilter{})
	assert.InDelta(t, 50.0, report.Efficiency, 1e-9)

	// Everything collected (and then some): clamped to [0, 100].
	receipts = []*models.FeeReceipt{paidReceipt("s1", 5000, "2025-26", reportDay)}
	report = build(students, masters, receipts, FiscalFilter{})
	assert.LessOrEqual(t, report.Efficiency, 100.0)
	assert.GreaterOrEqual(t, report.Efficiency, 0.0)
}

func TestZeroActivityGradesStayOffTheChart(t *testing.T) {
	students := []*models.Student{
		student("s1", "7", "A"),
		student("s2", "9", "A"), // no fees, no payments
	}
	masters := []*models.FeeMaster{tuitionMaster("7", 4500)}

	report := build(students, masters, nil, FiscalFilter{})

	// Grade 9 had no money moving, so it is absent from the series but its
	// student still appears in the rows.
	require.Len(t, report.Rows, 2)
	require.Len(t, report.Series, 1)
	assert.Equal(t, "7", report.Series[0].Grade)
	assert.Equal(t, 4500.0, report.Series[0].Due)
}

func TestGradeSeriesAccumulates(t *testing.T) {
	students := []*models.Student{
		student("s1", "7", "A"),
		student("s2", "7", "B"),
	}
	masters := []*models.FeeMaster{tuitionMaster("7", 1000)}
	receipts := []*models.FeeReceipt{paidReceipt("s1", 1000, "2025-26", reportDay)}

	report := build(students, masters, receipts, FiscalFilter{})
	require.Len(t, report.Series, 1)
	assert.Equal(t, 1000.0, report.Series[0].Collected)
	assert.Equal(t, 1000.0, report.Series[0].Due)
	assert.Equal(t, report.Collected, report.Series[0].Collected)
}
