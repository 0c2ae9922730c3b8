package receipts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReceiptNoFormat(t *testing.T) {
	no := NewReceiptNo()

	assert.True(t, strings.HasPrefix(no, "NEP-"))
	assert.Len(t, no, len("NEP-")+8)

	suffix := strings.TrimPrefix(no, "NEP-")
	assert.Equal(t, strings.ToUpper(suffix), suffix)
}

func TestNewReceiptNoUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		no := NewReceiptNo()
		assert.False(t, seen[no], "duplicate receipt number %s", no)
		seen[no] = true
	}
}

func TestRecordPaymentRequestValidation(t *testing.T) {
	valid := RecordPaymentRequest{
		StudentID:     "0c2f6a1e-96d6-4f3a-9d3e-6b8f2c5a1d42",
		AmountPaid:    4500,
		PaymentMethod: "Cash",
		Session:       "2025-26",
	}
	assert.NoError(t, validate.Struct(&valid))

	tests := []struct {
		name   string
		mutate func(r *RecordPaymentRequest)
	}{
		{"missing student", func(r *RecordPaymentRequest) { r.StudentID = "" }},
		{"non-uuid student", func(r *RecordPaymentRequest) { r.StudentID = "abc" }},
		{"zero amount", func(r *RecordPaymentRequest) { r.AmountPaid = 0 }},
		{"negative discount", func(r *RecordPaymentRequest) { r.Discount = -5 }},
		{"negative penalty", func(r *RecordPaymentRequest) { r.Penalty = -1 }},
		{"unknown method", func(r *RecordPaymentRequest) { r.PaymentMethod = "Barter" }},
		{"missing session", func(r *RecordPaymentRequest) { r.Session = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, validate.Struct(&req))
		})
	}
}

func TestZeroAdjustmentIsValid(t *testing.T) {
	// A discount or penalty of 0 is a legitimate recorded value, not an
	// omission.
	req := RecordPaymentRequest{
		StudentID:     "0c2f6a1e-96d6-4f3a-9d3e-6b8f2c5a1d42",
		AmountPaid:    100,
		Discount:      0,
		Penalty:       0,
		PaymentMethod: "UPI",
		Session:       "2025-26",
	}
	assert.NoError(t, validate.Struct(&req))
}
