package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment status values. The only legal transitions are
// Pending -> Validated -> Applied and Pending -> Rejected; every
// transition is a status-guarded update, so a concurrent duplicate
// request observes zero rows affected and reports a conflict.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusValidated = "validated"
	PaymentStatusApplied   = "applied"
	PaymentStatusRejected  = "rejected"
)

// Payment-related domain errors.
var (
	ErrPaymentNotFound       = &Error{Code: ENOTFOUND, Message: "Payment not found"}
	ErrPaymentNotPending     = &Error{Code: ECONFLICT, Message: "Payment is not pending or was already processed"}
	ErrPaymentNotValidated   = &Error{Code: ECONFLICT, Message: "Payment is not validated or was already applied"}
	ErrNoAllocations         = &Error{Code: EINVALID, Message: "Select at least one invoice to pay"}
	ErrAllocationSumMismatch = &Error{Code: EINVALID, Message: "Sum of allocated amounts does not match the payment amount"}
)

// Payment is a user-submitted payment covering one or more invoices.
// Amounts are minor currency units. Applying a payment is the only
// operation that mutates invoice balances.
type Payment struct {
	ID          uuid.UUID
	ServerID    uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Method      string
	Bank        string
	ProofURL    string
	Status      string
	Reason      string // populated on rejection
	ValidatedBy uuid.UUID
	ValidatedAt time.Time
	AppliedBy   uuid.UUID
	AppliedAt   time.Time
	CreatedAt   time.Time

	Allocations []Allocation
}

// Allocation is the portion of a payment applied to one invoice.
// The amount is validated against the invoice balance at submission
// time; application clamps the balance at zero so the ledger invariant
// holds even if balances moved in between.
type Allocation struct {
	InvoiceID   uuid.UUID
	AmountCents int64
}

// AllocationsTotal returns the sum of all allocation amounts.
func AllocationsTotal(allocations []Allocation) int64 {
	var total int64
	for _, a := range allocations {
		total += a.AmountCents
	}
	return total
}

// PaymentSortField is the typed allow-list of sortable payment columns.
type PaymentSortField string

const (
	PaymentSortCreatedAt PaymentSortField = "created_at"
	PaymentSortAmount    PaymentSortField = "amount_cents"
)

// Valid reports whether the sort field is one of the allowed columns.
func (f PaymentSortField) Valid() bool {
	switch f {
	case PaymentSortCreatedAt, PaymentSortAmount:
		return true
	}
	return false
}
