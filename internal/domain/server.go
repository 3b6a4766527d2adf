package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultGraceDays is the fallback dunning grace period when a server has
// no configured value. Independent from DueDateOffsetDays even though the
// numbers coincide.
const DefaultGraceDays = 5

// Server-related domain errors.
var (
	ErrServerNotFound = &Error{Code: ENOTFOUND, Message: "Server or domain not found"}
)

// Server is a customer's hosted environment, the unit against which
// invoices, payments and announcements are scoped.
type Server struct {
	ID        uuid.UUID
	Name      string // the server's domain, e.g. "acme.altamar.mx"
	GraceDays int    // dunning grace period in days
	Status    string
	CreatedAt time.Time
}

// EffectiveGraceDays returns the configured grace period, or the default
// when unset.
func (s *Server) EffectiveGraceDays() int {
	if s.GraceDays <= 0 {
		return DefaultGraceDays
	}
	return s.GraceDays
}
