package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert types used by the portal. Alerts are an operational feed for
// admins (who paid, who registered), not the dunning announcements shown
// to customers.
const (
	AlertPaymentReceived = "payment_received"
	AlertPaymentApplied  = "payment_applied"
	AlertPaymentRejected = "payment_rejected"
)

// Alert is a short operational notice tied to a server and optionally the
// user who triggered it.
type Alert struct {
	ID           uuid.UUID
	ServerID     uuid.UUID
	UserID       uuid.UUID
	AlertType    string
	Message      string
	Acknowledged bool
	CreatedAt    time.Time
}
