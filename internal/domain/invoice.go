package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invoice status values. Status is never stored independently of the
// balance; it is always recomputed via InvoiceStatusFor.
const (
	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPartial = "partial"
	InvoiceStatusPaid    = "paid"
)

// DueDateOffsetDays is the number of days after the issue date that an
// invoice falls due. This is a billing term, not the dunning grace period:
// the two share a default value but are configured independently (grace
// period lives on the server record).
const DueDateOffsetDays = 5

// Invoice-related domain errors.
var (
	ErrDuplicateFolio           = &Error{Code: ECONFLICT, Message: "An invoice with this folio already exists for the server"}
	ErrInvoiceNotFound          = &Error{Code: ENOTFOUND, Message: "Invoice not found"}
	ErrInvoiceNoBalance         = &Error{Code: EINVALID, Message: "Invoice has no outstanding balance"}
	ErrAllocationExceedsBalance = &Error{Code: EINVALID, Message: "Allocation amount exceeds invoice balance"}
)

// Invoice is an amount owed by a server (tenant environment), expressed in
// minor currency units. Invoices are append-only ledger entries: they are
// created on upload and mutated only by payment application.
type Invoice struct {
	ID           uuid.UUID
	ServerID     uuid.UUID
	Folio        string // external invoice number, unique per server
	IssueDate    time.Time
	DueDate      time.Time
	TotalCents   int64
	BalanceCents int64
	Status       string
	PDFURL       string
	CreatedAt    time.Time
}

// InvoiceStatusFor derives the invoice status from its balance.
// Paid iff balance <= 0, Unpaid iff nothing has been applied yet,
// Partial otherwise.
func InvoiceStatusFor(balanceCents, totalCents int64) string {
	switch {
	case balanceCents <= 0:
		return InvoiceStatusPaid
	case balanceCents >= totalCents:
		return InvoiceStatusUnpaid
	default:
		return InvoiceStatusPartial
	}
}

// DueDateFor computes the due date for an invoice issued on issueDate.
func DueDateFor(issueDate time.Time) time.Time {
	return issueDate.AddDate(0, 0, DueDateOffsetDays)
}

// InvoiceSortField is the typed allow-list of sortable invoice columns.
// List endpoints accept only these values; anything else falls back to
// the default ordering.
type InvoiceSortField string

const (
	InvoiceSortIssueDate InvoiceSortField = "issue_date"
	InvoiceSortDueDate   InvoiceSortField = "due_date"
	InvoiceSortTotal     InvoiceSortField = "total_cents"
)

// Valid reports whether the sort field is one of the allowed columns.
func (f InvoiceSortField) Valid() bool {
	switch f {
	case InvoiceSortIssueDate, InvoiceSortDueDate, InvoiceSortTotal:
		return true
	}
	return false
}
