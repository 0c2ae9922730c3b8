// Package billing computes what a student owes: institutional fees from the
// fee policy rules plus transport, hostel, library and damage charges pulled
// in through read-only providers. Everything here is pure computation over
// already-fetched rows; nothing is cached or written back, so a snapshot is
// always reproducible from the same inputs.
package billing

import (
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/models"
)

// Policy holds the flat charges applied outside the fee masters.
type Policy struct {
	TransportFlatFee float64
	LatePenaltyUnit  float64
	DamageChargeUnit float64
}

// DefaultPolicy mirrors the rates the fee office currently charges.
func DefaultPolicy() Policy {
	return Policy{
		TransportFlatFee: 1500,
		LatePenaltyUnit:  100,
		DamageChargeUnit: 500,
	}
}

// LiabilitySnapshot is the itemized total a student owes at a point in time.
// It is derived on demand and never persisted.
type LiabilitySnapshot struct {
	StudentID          string  `json:"student_id"`
	InstitutionalTotal float64 `json:"institutional_total"`
	TransportFee       float64 `json:"transport_fee"`
	HostelFee          float64 `json:"hostel_fee"`
	LibraryFines       float64 `json:"library_fines"`
	OtherDamages       float64 `json:"other_damages"`
	SuggestedPenalty   float64 `json:"suggested_penalty"`
	GrandTotal         float64 `json:"grand_total"`
}

// ComputeLiability aggregates every charge the student owes. Fee masters are
// matched on the student's grade (or the "All" wildcard) and summed; the
// cross-module providers contribute their charges, with missing linkages
// counting as zero so a number always comes out. SuggestedPenalty is
// evaluated against asOf (see SuggestPenalty) but is advisory only and not
// part of GrandTotal until an operator accepts it onto a receipt.
func ComputeLiability(student *models.Student, masters []*models.FeeMaster, p Providers, policy Policy, asOf time.Time) LiabilitySnapshot {
	snap := LiabilitySnapshot{StudentID: student.ID}

	for _, m := range masters {
		if m.AppliesTo(student.Grade) {
			snap.InstitutionalTotal += m.Amount
		}
	}

	if p.Transport != nil {
		snap.TransportFee = p.Transport.TransportFee(student.ID)
	}
	if p.Hostel != nil {
		snap.HostelFee = p.Hostel.HostelFee(student.ID)
	}
	if p.Library != nil {
		snap.LibraryFines = p.Library.LibraryFines(student.ID)
	}
	if p.Damages != nil {
		snap.OtherDamages = p.Damages.DamageCharges(student.ID)
	}

	snap.SuggestedPenalty = SuggestPenalty(masters, student.Grade, policy, asOf)
	snap.GrandTotal = snap.InstitutionalTotal + snap.TransportFee + snap.HostelFee +
		snap.LibraryFines + snap.OtherDamages
	return snap
}
