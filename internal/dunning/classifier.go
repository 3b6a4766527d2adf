// Package dunning classifies a server's outstanding invoices into the
// due-soon / overdue / suspend buckets that drive announcement
// regeneration and service suspension.
package dunning

import (
	"time"
)

// OpenInvoice is the slice of invoice state the classifier needs: when it
// falls due and that it still carries a positive balance.
type OpenInvoice struct {
	DueDate      time.Time
	BalanceCents int64
}

// Result holds the dunning flags for one server. The flags are not
// mutually exclusive; a server can have one invoice about to fall due
// and another already past grace.
type Result struct {
	// DueSoon is set when any open invoice falls due within the grace
	// period (strictly in the future).
	DueSoon bool

	// Overdue is set when any open invoice is past due but still within
	// the grace period.
	Overdue bool

	// Suspend is set when any open invoice is overdue by more than the
	// grace period.
	Suspend bool
}

// Clear reports whether no dunning condition applies. A server with no
// open invoices is always clear, which is what triggers the unlock path.
func (r Result) Clear() bool {
	return !r.DueSoon && !r.Overdue && !r.Suspend
}

// Classify computes the dunning state for a set of open invoices given a
// grace period in days. The reference date is passed in rather than read
// from the wall clock so the function stays pure and testable. Time of
// day is ignored; only whole calendar days count.
func Classify(invoices []OpenInvoice, graceDays int, today time.Time) Result {
	var res Result

	day := truncateToDay(today)

	for _, inv := range invoices {
		if inv.BalanceCents <= 0 {
			continue
		}

		due := truncateToDay(inv.DueDate)
		daysUntilDue := int(due.Sub(day).Hours() / 24)
		daysOverdue := -daysUntilDue

		switch {
		case daysUntilDue > 0 && daysUntilDue <= graceDays:
			res.DueSoon = true
		case daysOverdue > 0 && daysOverdue <= graceDays:
			res.Overdue = true
		case daysOverdue > graceDays:
			res.Suspend = true
		}
	}

	return res
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
