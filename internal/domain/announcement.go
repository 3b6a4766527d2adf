package domain

import (
	"time"

	"github.com/google/uuid"
)

// Announcement kinds produced by the dunning engine. An active Suspended
// announcement is the authoritative "service suspended" signal; archiving
// it is what unlocks the server.
const (
	AnnouncementDueSoon   = "due_soon"
	AnnouncementOverdue   = "overdue"
	AnnouncementSuspended = "suspended"
)

// Kinds reserved for admin-authored notices. They sit outside the
// dunning set so a regeneration pass never deletes them; the balance
// clear archive still closes them together with everything else.
const (
	AnnouncementDueWarning = "due_warning"
	AnnouncementSuspension = "suspension"
)

// Announcement status values.
const (
	AnnouncementStatusActive   = "active"
	AnnouncementStatusArchived = "archived"
)

// Announcement-related domain errors.
var (
	ErrAnnouncementNotFound     = &Error{Code: ENOTFOUND, Message: "Announcement not found"}
	ErrAnnouncementAcknowledged = &Error{Code: ECONFLICT, Message: "Announcement was already acknowledged"}
	ErrAnnouncementEngineOwned  = &Error{Code: EINVALID, Message: "Dunning announcements are generated automatically and cannot be edited"}
)

// Display windows for generated announcements.
const (
	DueSoonWindowDays   = 10
	OverdueWindowDays   = 10
	SuspendedWindowDays = 30
)

// Announcement is a time-windowed notice attached to a server, reflecting
// its billing state. The dunning engine is the sole writer of announcements
// with the kinds above; manual admin notices share the store but are a
// separate concern.
type Announcement struct {
	ID        uuid.UUID
	ServerID  uuid.UUID
	Kind      string
	Title     string
	Body      string
	StartsAt  time.Time
	EndsAt    time.Time
	Status    string
	CreatedAt time.Time
}

// DunningKinds lists the announcement kinds owned by the dunning engine,
// i.e. the ones replaced wholesale on each regeneration pass.
func DunningKinds() []string {
	return []string{AnnouncementDueSoon, AnnouncementOverdue, AnnouncementSuspended}
}

// ManualKind reports whether kind is one an admin may author directly.
func ManualKind(kind string) bool {
	return kind == AnnouncementDueWarning || kind == AnnouncementSuspension
}
