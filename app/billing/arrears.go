package billing

import (
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/models"
)

// SuggestPenalty charges one flat penalty unit per applicable fee master
// whose due date has passed as of the given day. The charge is per overdue
// head, not per day overdue. The result is a suggestion; the operator may
// override it (including to 0) when the receipt is written.
func SuggestPenalty(masters []*models.FeeMaster, grade string, policy Policy, asOf time.Time) float64 {
	today := asOf.Truncate(24 * time.Hour)
	var penalty float64
	for _, m := range masters {
		if !m.AppliesTo(grade) {
			continue
		}
		if m.DueDate.Truncate(24 * time.Hour).Before(today) {
			penalty += policy.LatePenaltyUnit
		}
	}
	return penalty
}

// Adjustment carries the operator's final discount and penalty for a
// settlement. Both values are always concrete numbers on the receipt; 0 means
// "no adjustment", there is no null state.
type Adjustment struct {
	Discount       float64 `json:"discount" validate:"gte=0"`
	DiscountReason string  `json:"discount_reason"`
	Penalty        float64 `json:"penalty" validate:"gte=0"`
	PenaltyReason  string  `json:"penalty_reason"`
}

// ResolvePayable applies the operator's adjustment to a liability snapshot:
// the amount to collect is the grand total plus the accepted penalty minus
// the discount, floored at zero.
func ResolvePayable(snap LiabilitySnapshot, adj Adjustment) float64 {
	payable := snap.GrandTotal + adj.Penalty - adj.Discount
	if payable < 0 {
		return 0
	}
	return payable
}
