// Package reports builds the consolidated fiscal view: per-student liability,
// paid and due rows for a grade/section cohort, with session and date-range
// scoping on payments and grade-wise series for the collection charts.
package reports

import (
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/billing"
	"github.com/Digicommunique/nexusedupro-sub000/app/models"
)

// FiscalFilter scopes the report. Grade, Section and Session are exact-match
// labels; empty means "any". DateFrom and DateTo bound the payment dates of
// counted receipts and are open-ended when nil. Liability is intentionally
// not scoped by session or dates; it reflects total policy dues.
type FiscalFilter struct {
	Grade    string
	Section  string
	Session  string
	DateFrom *time.Time
	DateTo   *time.Time
}

// StudentFiscalRow is one student's line in the report.
type StudentFiscalRow struct {
	StudentID   string  `json:"student_id"`
	AdmissionNo string  `json:"admission_no"`
	Name        string  `json:"name"`
	Grade       string  `json:"grade"`
	Section     string  `json:"section"`
	Liability   float64 `json:"liability"`
	Paid        float64 `json:"paid"`
	Due         float64 `json:"due"`
}

// GradeSeries is one bar pair on the grade-wise collection chart.
type GradeSeries struct {
	Grade     string  `json:"grade"`
	Collected float64 `json:"collected"`
	Due       float64 `json:"due"`
}

// FiscalReport is the consolidated output: per-student rows, population
// aggregates and chart-ready grade series.
type FiscalReport struct {
	Rows       []StudentFiscalRow `json:"rows"`
	Collected  float64            `json:"collected"`
	Arrears    float64            `json:"arrears"`
	Efficiency float64            `json:"efficiency"`
	Series     []GradeSeries      `json:"series"`
}

// BuildFiscalReport walks every student matching the grade/section filter,
// computes liability from the fee policy and providers, sums the receipts the
// filter admits, and clamps due at zero so an overpaying student never shows
// a negative balance. Efficiency is collected/(collected+arrears) as a
// percentage, 0 when there is nothing on either side. Grades with no money
// moving in either direction stay off the chart series but still count in the
// aggregates.
func BuildFiscalReport(
	students []*models.Student,
	masters []*models.FeeMaster,
	receipts []*models.FeeReceipt,
	providers billing.Providers,
	policy billing.Policy,
	filter FiscalFilter,
	asOf time.Time,
) FiscalReport {
	report := FiscalReport{Rows: []StudentFiscalRow{}, Series: []GradeSeries{}}

	paidByStudent := sumPaid(receipts, filter)

	gradeIndex := make(map[string]int)
	for _, s := range students {
		if filter.Grade != "" && s.Grade != filter.Grade {
			continue
		}
		if filter.Section != "" && s.Section != filter.Section {
			continue
		}

		snap := billing.ComputeLiability(s, masters, providers, policy, asOf)
		paid := paidByStudent[s.ID]
		due := snap.GrandTotal - paid
		if due < 0 {
			due = 0
		}

		report.Rows = append(report.Rows, StudentFiscalRow{
			StudentID:   s.ID,
			AdmissionNo: s.AdmissionNo,
			Name:        s.FullName(),
			Grade:       s.Grade,
			Section:     s.Section,
			Liability:   snap.GrandTotal,
			Paid:        paid,
			Due:         due,
		})
		report.Collected += paid
		report.Arrears += due

		i, ok := gradeIndex[s.Grade]
		if !ok {
			i = len(report.Series)
			gradeIndex[s.Grade] = i
			report.Series = append(report.Series, GradeSeries{Grade: s.Grade})
		}
		report.Series[i].Collected += paid
		report.Series[i].Due += due
	}

	// Drop zero-activity grades from the chart; aggregates above already
	// include them.
	active := report.Series[:0]
	for _, g := range report.Series {
		if g.Collected != 0 || g.Due != 0 {
			active = append(active, g)
		}
	}
	report.Series = active

	report.Efficiency = efficiency(report.Collected, report.Arrears)
	return report
}

// sumPaid totals receipt amounts per student, admitting only receipts that
// match the session (when given) and fall inside the date window.
func sumPaid(receipts []*models.FeeReceipt, filter FiscalFilter) map[string]float64 {
	paid := make(map[string]float64)
	for _, r := range receipts {
		if filter.Session != "" && r.Session != filter.Session {
			continue
		}
		if filter.DateFrom != nil && r.PaymentDate.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && r.PaymentDate.After(*filter.DateTo) {
			continue
		}
		paid[r.StudentID] += r.AmountPaid
	}
	return paid
}

func efficiency(collected, arrears float64) float64 {
	total := collected + arrears
	if total == 0 {
		return 0
	}
	pct := collected / total * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
