package billing

import (
	"testing"
	"time"

	"github.com/Digicommunique/nexusedupro-sub000/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func testStudent(id, grade string) *models.Student {
	return &models.Student{
		ID:        id,
		FirstName: "Asha",
		LastName:  "Verma",
		Grade:     grade,
		Section:   "A",
	}
}

func master(grade string, amount float64, due time.Time) *models.FeeMaster {
	return &models.FeeMaster{
		ID:        "fm-" + grade,
		FeeTypeID: "ft-1",
		Amount:    amount,
		DueDate:   due,
		Grade:     grade,
	}
}

func TestComputeLiabilityEmptyStudent(t *testing.T) {
	snap := ComputeLiability(testStudent("s1", "7"), nil, Providers{}, DefaultPolicy(), testDay)

	assert.Zero(t, snap.InstitutionalTotal)
	assert.Zero(t, snap.TransportFee)
	assert.Zero(t, snap.HostelFee)
	assert.Zero(t, snap.LibraryFines)
	assert.Zero(t, snap.OtherDamages)
	assert.Zero(t, snap.GrandTotal)
}

func TestComputeLiabilityGradeSelection(t *testing.T) {
	future := testDay.AddDate(0, 1, 0)
	masters := []*models.FeeMaster{
		master("7", 4500, future),
		master("8", 9999, future),
		master(models.GradeAll, 500, future),
	}

	snap := ComputeLiability(testStudent("s1", "7"), masters, Providers{}, DefaultPolicy(), testDay)

	// Grade 7 rule and the All rule apply; the grade 8 rule does not.
	assert.Equal(t, 5000.0, snap.InstitutionalTotal)
	assert.Equal(t, 5000.0, snap.GrandTotal)
}

func TestComputeLiabilityCrossModuleCharges(t *testing.T) {
	policy := DefaultPolicy()
	routeID := "route-1"
	student := testStudent("s1", "7")
	student.TransportRouteID = &routeID

	providers := Providers{
		Transport: NewTransportCharges(policy,
			[]*models.Student{student},
			[]*models.TransportRoute{{ID: routeID, Name: "North Loop"}},
		),
		Hostel: NewHostelCharges(
			[]*models.HostelAllotment{{StudentID: "s1", RoomID: "room-2"}},
			[]*models.HostelRoom{{ID: "room-2", Number: "H-202", MonthlyFee: 2000}},
		),
		Library: NewLibraryCharges([]*models.BookIssue{
			{StudentID: "s1", LateFee: 30, DamageFee: 70},
			{StudentID: "s1", LateFee: 50},
			{StudentID: "someone-else", LateFee: 999},
		}),
		Damages: NewDamageUnitCharges(policy, []*models.DamageReport{
			{StudentID: strPtr("s1"), ItemName: "Lab chair"},
			{StudentID: nil, ItemName: "Window"},
		}),
	}

	snap := ComputeLiability(student, nil, providers, policy, testDay)

	assert.Equal(t, policy.TransportFlatFee, snap.TransportFee)
	assert.Equal(t, 2000.0, snap.HostelFee)
	assert.Equal(t, 150.0, snap.LibraryFines)
	assert.Equal(t, policy.DamageChargeUnit, snap.OtherDamages)
	assert.Equal(t, policy.TransportFlatFee+2000+150+policy.DamageChargeUnit, snap.GrandTotal)
}

func TestComputeLiabilityMissingLinkagesAreZero(t *testing.T) {
	policy := DefaultPolicy()
	// Route assigned but not present in the route list, allotment pointing at
	// an unknown room: both degrade to zero instead of failing.
	student := testStudent("s1", "7")
	student.TransportRouteID = strPtr("ghost-route")

	providers := Providers{
		Transport: NewTransportCharges(policy, []*models.Student{student}, nil),
		Hostel: NewHostelCharges(
			[]*models.HostelAllotment{{StudentID: "s1", RoomID: "ghost-room"}},
			nil,
		),
	}

	snap := ComputeLiability(student, nil, providers, policy, testDay)
	assert.Zero(t, snap.TransportFee)
	assert.Zero(t, snap.HostelFee)
	assert.Zero(t, snap.GrandTotal)
}

func TestComputeLiabilityDeterministic(t *testing.T) {
	policy := DefaultPolicy()
	student := testStudent("s1", "7")
	masters := []*models.FeeMaster{
		master("7", 4500, testDay.AddDate(0, 0, -1)),
		master(models.GradeAll, 250, testDay.AddDate(0, 2, 0)),
	}
	providers := Providers{
		Library: NewLibraryCharges([]*models.BookIssue{{StudentID: "s1", LateFee: 45}}),
	}

	first := ComputeLiability(student, masters, providers, policy, testDay)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, ComputeLiability(student, masters, providers, policy, testDay))
	}
}
