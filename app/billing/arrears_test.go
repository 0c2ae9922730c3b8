package billing

import (
	"testing"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/stretchr/testify/assert"
)

func TestSuggestPenaltyPerOverdueHead(t *testing.T) {
	policy := DefaultPolicy()
	yesterday := testDay.AddDate(0, 0, -1)
	lastMonth := testDay.AddDate(0, -1, 0)
	nextWeek := testDay.AddDate(0, 0, 7)

	tests := []struct {
		name    string
		masters []*models.FeeMaster
		want    float64
	}{
		{"no masters", nil, 0},
		{"nothing overdue", []*models.FeeMaster{master("7", 100, nextWeek)}, 0},
		{"one overdue", []*models.FeeMaster{master("7", 4500, yesterday)}, policy.LatePenaltyUnit},
		{
			// Flat per head, so a month overdue costs the same as a day.
			"two overdue heads",
			[]*models.FeeMaster{master("7", 4500, yesterday), master(models.GradeAll, 200, lastMonth)},
			2 * policy.LatePenaltyUnit,
		},
		{
			"other grade ignored",
			[]*models.FeeMaster{master("8", 4500, yesterday)},
			0,
		},
		{
			"due today is not overdue",
			[]*models.FeeMaster{master("7", 4500, testDay)},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestPenalty(tt.masters, "7", policy, testDay))
		})
	}
}

func TestOverdueMasterRaisesSuggestedPenalty(t *testing.T) {
	masters := []*models.FeeMaster{master("7", 4500, testDay.AddDate(0, 0, -1))}

	snap := ComputeLiability(testStudent("s1", "7"), masters, Providers{}, DefaultPolicy(), testDay)

	assert.Equal(t, 4500.0, snap.GrandTotal)
	assert.Greater(t, snap.SuggestedPenalty, 0.0)
	// Advisory only: the penalty joins the payable amount on settlement, not
	// the liability itself.
	assert.Equal(t, snap.InstitutionalTotal, snap.GrandTotal)
}

func TestResolvePayable(t *testing.T) {
	snap := LiabilitySnapshot{GrandTotal: 4500}

	tests := []struct {
		name string
		adj  Adjustment
		want float64
	}{
		{"no adjustment", Adjustment{}, 4500},
		{"zero values are valid", Adjustment{Discount: 0, Penalty: 0}, 4500},
		{"discount applied", Adjustment{Discount: 500, DiscountReason: "Sibling concession"}, 4000},
		{"penalty applied", Adjustment{Penalty: 100, PenaltyReason: "Late payment"}, 4600},
		{"both", Adjustment{Discount: 200, Penalty: 100}, 4400},
		{"discount exceeding total floors at zero", Adjustment{Discount: 9000}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePayable(snap, tt.adj))
		})
	}
}

func TestSuggestPenaltyIgnoresTimeOfDay(t *testing.T) {
	policy := DefaultPolicy()
	dueMidday := time.Date(2026, 3, 9, 13, 30, 0, 0, time.UTC)
	masters := []*models.FeeMaster{master("7", 4500, dueMidday)}

	// Due on the 9th, asked on the 10th: overdue regardless of clock times.
	assert.Equal(t, policy.LatePenaltyUnit, SuggestPenalty(masters, "7", policy, testDay))
}
