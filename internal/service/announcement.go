package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/dunning"
	"github.com/altamar/portal/internal/events"
	"github.com/altamar/portal/internal/store"
)

// AnnouncementService owns the dunning announcement lifecycle. Every
// billing mutation funnels through Regenerate (or RegenerateForServer when
// already inside a transaction), which rebuilds the server's dunning
// announcements from its current open balances.
type AnnouncementService struct {
	store  store.TxStore
	events events.Publisher
	log    zerolog.Logger
	now    func() time.Time
}

// NewAnnouncementService builds an AnnouncementService.
func NewAnnouncementService(st store.TxStore, pub events.Publisher, log zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{
		store:  st,
		events: pub,
		log:    log,
		now:    time.Now,
	}
}

// CreateNoticeParams are the admin-supplied fields for a manual notice.
// The server is addressed by its domain name, matching how admins refer
// to tenants. A zero StartsAt means the notice starts now.
type CreateNoticeParams struct {
	Domain   string
	Kind     string
	Title    string
	Body     string
	StartsAt time.Time
	EndsAt   time.Time
}

// UpdateNoticeParams is a partial patch for a manual notice; nil fields
// keep the current value.
type UpdateNoticeParams struct {
	Kind     *string
	Title    *string
	Body     *string
	StartsAt *time.Time
	EndsAt   *time.Time
}

// ListActive returns the announcements currently visible to a server's
// users.
func (s *AnnouncementService) ListActive(ctx context.Context, serverID uuid.UUID) ([]domain.Announcement, error) {
	return s.store.ListActiveAnnouncements(ctx, serverID)
}

// ListForServer returns all of a server's announcements for the admin
// view, engine-generated and manual alike.
func (s *AnnouncementService) ListForServer(ctx context.Context, serverID uuid.UUID) ([]domain.Announcement, error) {
	return s.store.ListServerAnnouncements(ctx, serverID)
}

// Get fetches one announcement.
func (s *AnnouncementService) Get(ctx context.Context, id uuid.UUID) (domain.Announcement, error) {
	return s.store.GetAnnouncementByID(ctx, id)
}

// CreateNotice publishes an admin-authored notice on a server. Only the
// manual kinds are accepted; the dunning kinds belong to the engine.
func (s *AnnouncementService) CreateNotice(ctx context.Context, params CreateNoticeParams) (domain.Announcement, error) {
	if !domain.ManualKind(params.Kind) {
		return domain.Announcement{}, domain.Invalid("announcement.create", "Unknown notice kind")
	}
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return domain.Announcement{}, domain.Invalid("announcement.create", "Title is required")
	}

	server, err := s.store.GetServerByName(ctx, strings.TrimSpace(params.Domain))
	if err != nil {
		return domain.Announcement{}, err
	}

	startsAt := params.StartsAt
	if startsAt.IsZero() {
		startsAt = s.now()
	}
	if !params.EndsAt.After(startsAt) {
		return domain.Announcement{}, domain.Invalid("announcement.create", "Notice must end after it starts")
	}

	notice, err := s.store.CreateAnnouncement(ctx, store.CreateAnnouncementParams{
		ServerID: server.ID,
		Kind:     params.Kind,
		Title:    title,
		Body:     strings.TrimSpace(params.Body),
		StartsAt: startsAt,
		EndsAt:   params.EndsAt,
	})
	if err != nil {
		return domain.Announcement{}, err
	}

	s.log.Info().
		Str("server", server.Name).
		Str("kind", notice.Kind).
		Msg("manual notice created")
	return notice, nil
}

// UpdateNotice edits an admin-authored notice. Engine-generated dunning
// announcements cannot be edited; the next regeneration pass would
// overwrite the change anyway.
func (s *AnnouncementService) UpdateNotice(ctx context.Context, id uuid.UUID, patch UpdateNoticeParams) (domain.Announcement, error) {
	current, err := s.store.GetAnnouncementByID(ctx, id)
	if err != nil {
		return domain.Announcement{}, err
	}
	if !domain.ManualKind(current.Kind) {
		return domain.Announcement{}, domain.ErrAnnouncementEngineOwned
	}

	params := store.UpdateAnnouncementParams{
		Kind:     current.Kind,
		Title:    current.Title,
		Body:     current.Body,
		StartsAt: current.StartsAt,
		EndsAt:   current.EndsAt,
	}
	if patch.Kind != nil {
		if !domain.ManualKind(*patch.Kind) {
			return domain.Announcement{}, domain.Invalid("announcement.update", "Unknown notice kind")
		}
		params.Kind = *patch.Kind
	}
	if patch.Title != nil {
		params.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Body != nil {
		params.Body = strings.TrimSpace(*patch.Body)
	}
	if patch.StartsAt != nil {
		params.StartsAt = *patch.StartsAt
	}
	if patch.EndsAt != nil {
		params.EndsAt = *patch.EndsAt
	}

	if params.Title == "" {
		return domain.Announcement{}, domain.Invalid("announcement.update", "Title is required")
	}
	if !params.EndsAt.After(params.StartsAt) {
		return domain.Announcement{}, domain.Invalid("announcement.update", "Notice must end after it starts")
	}

	return s.store.UpdateAnnouncement(ctx, id, params)
}

// Acknowledge records that a user has seen an announcement. A second
// acknowledgement reports a conflict.
func (s *AnnouncementService) Acknowledge(ctx context.Context, announcementID, userID uuid.UUID) error {
	if _, err := s.store.GetAnnouncementByID(ctx, announcementID); err != nil {
		return err
	}

	rows, err := s.store.AcknowledgeAnnouncement(ctx, announcementID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAnnouncementAcknowledged
	}
	return nil
}

// Regenerate recomputes one server's dunning announcements in its own
// transaction and emits a suspension event when the server crossed into
// the suspended state.
func (s *AnnouncementService) Regenerate(ctx context.Context, serverID uuid.UUID) (dunning.Result, error) {
	server, err := s.store.GetServerByID(ctx, serverID)
	if err != nil {
		return dunning.Result{}, err
	}

	var res dunning.Result
	err = s.store.WithTx(ctx, func(q store.Querier) error {
		res, err = s.RegenerateForServer(ctx, q, server)
		return err
	})
	if err != nil {
		return dunning.Result{}, err
	}

	if res.Suspend {
		s.publish(ctx, events.SubjectServerSuspended, map[string]string{
			"server_id": server.ID.String(),
			"server":    server.Name,
		})
	}
	return res, nil
}

// RegenerateAll recomputes dunning announcements for every server. A
// failure on one server is logged and does not stop the pass. Returns the
// number of servers processed successfully.
func (s *AnnouncementService) RegenerateAll(ctx context.Context) (int, error) {
	servers, err := s.store.ListServers(ctx)
	if err != nil {
		return 0, err
	}

	var done int
	for _, server := range servers {
		if _, err := s.Regenerate(ctx, server.ID); err != nil {
			s.log.Error().Err(err).
				Str("server", server.Name).
				Msg("regenerate announcements failed")
			continue
		}
		done++
	}
	return done, nil
}

// RegenerateForServer rebuilds a server's dunning announcements using the
// given querier, so callers already holding a transaction reconcile
// balances and announcements atomically.
//
// The pass is idempotent: it classifies the server's open invoices, then
// either archives everything (balance clear) or replaces the engine-owned
// announcements with exactly the set the classification calls for. An
// Overdue notice is omitted while a Suspended one exists; suspension
// already subsumes it.
func (s *AnnouncementService) RegenerateForServer(ctx context.Context, q store.Querier, server domain.Server) (dunning.Result, error) {
	invoices, err := q.ListOpenInvoices(ctx, server.ID)
	if err != nil {
		return dunning.Result{}, err
	}

	open := make([]dunning.OpenInvoice, 0, len(invoices))
	for _, inv := range invoices {
		open = append(open, dunning.OpenInvoice{
			DueDate:      inv.DueDate,
			BalanceCents: inv.BalanceCents,
		})
	}

	now := s.now()
	res := dunning.Classify(open, server.EffectiveGraceDays(), now)
	announcementsRegeneratedTotal.Inc()

	if res.Clear() {
		archived, err := q.ArchiveActiveAnnouncements(ctx, server.ID)
		if err != nil {
			return dunning.Result{}, err
		}
		if archived > 0 {
			s.log.Info().
				Str("server", server.Name).
				Int64("archived", archived).
				Msg("balance clear, announcements archived")
		}
		return res, nil
	}

	if err := q.DeleteDunningAnnouncements(ctx, server.ID); err != nil {
		return dunning.Result{}, err
	}

	if res.Suspend {
		_, err := q.CreateAnnouncement(ctx, store.CreateAnnouncementParams{
			ServerID: server.ID,
			Kind:     domain.AnnouncementSuspended,
			Title:    "Service suspended",
			Body:     fmt.Sprintf("Your service on %s has been suspended for non-payment. Settle your outstanding balance to restore access.", server.Name),
			StartsAt: now,
			EndsAt:   now.AddDate(0, 0, domain.SuspendedWindowDays),
		})
		if err != nil {
			return dunning.Result{}, err
		}
	} else if res.Overdue {
		_, err := q.CreateAnnouncement(ctx, store.CreateAnnouncementParams{
			ServerID: server.ID,
			Kind:     domain.AnnouncementOverdue,
			Title:    "Invoice overdue",
			Body:     fmt.Sprintf("You have an overdue invoice on %s. Please pay as soon as possible to avoid service suspension.", server.Name),
			StartsAt: now,
			EndsAt:   now.AddDate(0, 0, domain.OverdueWindowDays),
		})
		if err != nil {
			return dunning.Result{}, err
		}
	}

	if res.DueSoon {
		_, err := q.CreateAnnouncement(ctx, store.CreateAnnouncementParams{
			ServerID: server.ID,
			Kind:     domain.AnnouncementDueSoon,
			Title:    "Invoice due soon",
			Body:     fmt.Sprintf("You have an invoice on %s approaching its due date.", server.Name),
			StartsAt: now,
			EndsAt:   now.AddDate(0, 0, domain.DueSoonWindowDays),
		})
		if err != nil {
			return dunning.Result{}, err
		}
	}

	return res, nil
}

func (s *AnnouncementService) publish(ctx context.Context, subject string, payload any) {
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		s.log.Warn().Err(err).Str("subject", subject).Msg("publish event failed")
	}
}
