package billing

import "github.com/Digicommunique/nexusedupro-sub000/app/models"

// The engine reads cross-module charges through these narrow interfaces so it
// depends on capabilities rather than on the transport/hostel/library record
// shapes. Each provider returns 0 for a student it knows nothing about.
type (
	TransportFeeProvider interface {
		TransportFee(studentID string) float64
	}
	HostelFeeProvider interface {
		HostelFee(studentID string) float64
	}
	LibraryFineProvider interface {
		LibraryFines(studentID string) float64
	}
	DamageChargeProvider interface {
		DamageCharges(studentID string) float64
	}
)

// Providers bundles the four collaborators ComputeLiability consumes.
type Providers struct {
	Transport TransportFeeProvider
	Hostel    HostelFeeProvider
	Library   LibraryFineProvider
	Damages   DamageChargeProvider
}

// TransportCharges resolves the flat route charge from in-memory student and
// route rows.
type TransportCharges struct {
	policy  Policy
	routes  map[string]bool
	byStuID map[string]string
}

func NewTransportCharges(policy Policy, students []*models.Student, routes []*models.TransportRoute) *TransportCharges {
	t := &TransportCharges{
		policy:  policy,
		routes:  make(map[string]bool, len(routes)),
		byStuID: make(map[string]string, len(students)),
	}
	for _, r := range routes {
		t.routes[r.ID] = true
	}
	for _, s := range students {
		if s.TransportRouteID != nil && *s.TransportRouteID != "" {
			t.byStuID[s.ID] = *s.TransportRouteID
		}
	}
	return t
}

func (t *TransportCharges) TransportFee(studentID string) float64 {
	routeID, ok := t.byStuID[studentID]
	if !ok || !t.routes[routeID] {
		return 0
	}
	// Flat rate per policy; routes do not carry individual fees yet.
	return t.policy.TransportFlatFee
}

// HostelCharges resolves allotment -> room -> monthly fee.
type HostelCharges struct {
	rooms   map[string]float64
	allotBy map[string]string
}

func NewHostelCharges(allotments []*models.HostelAllotment, rooms []*models.HostelRoom) *HostelCharges {
	h := &HostelCharges{
		rooms:   make(map[string]float64, len(rooms)),
		allotBy: make(map[string]string, len(allotments)),
	}
	for _, r := range rooms {
		h.rooms[r.ID] = r.MonthlyFee
	}
	for _, a := range allotments {
		h.allotBy[a.StudentID] = a.RoomID
	}
	return h
}

func (h *HostelCharges) HostelFee(studentID string) float64 {
	roomID, ok := h.allotBy[studentID]
	if !ok {
		return 0
	}
	// Unknown room degrades to zero contribution.
	return h.rooms[roomID]
}

// LibraryCharges sums late and damage fees across every issue on the
// student's card, returned or not.
type LibraryCharges struct {
	fines map[string]float64
}

func NewLibraryCharges(issues []*models.BookIssue) *LibraryCharges {
	l := &LibraryCharges{fines: make(map[string]float64)}
	for _, issue := range issues {
		l.fines[issue.StudentID] += issue.LateFee + issue.DamageFee
	}
	return l
}

func (l *LibraryCharges) LibraryFines(studentID string) float64 {
	return l.fines[studentID]
}

// DamageCharges bills a flat unit per damage report attributed to the
// student.
type DamageUnitCharges struct {
	policy Policy
	counts map[string]int
}

func NewDamageUnitCharges(policy Policy, reports []*models.DamageReport) *DamageUnitCharges {
	d := &DamageUnitCharges{policy: policy, counts: make(map[string]int)}
	for _, r := range reports {
		if r.StudentID != nil && *r.StudentID != "" {
			d.counts[*r.StudentID]++
		}
	}
	return d
}

func (d *DamageUnitCharges) DamageCharges(studentID string) float64 {
	return float64(d.counts[studentID]) * d.policy.DamageChargeUnit
}
