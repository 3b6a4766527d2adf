// Package events publishes billing lifecycle events so other systems
// (provisioning, notifications) can react to invoice and payment changes
// without polling the portal database.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Event subjects published by the portal.
const (
	SubjectInvoiceCreated   = "billing.invoice.created"
	SubjectPaymentSubmitted = "billing.payment.submitted"
	SubjectPaymentApplied   = "billing.payment.applied"
	SubjectPaymentRejected  = "billing.payment.rejected"
	SubjectServerSuspended  = "billing.server.suspended"
	SubjectServerUnlocked   = "billing.server.unlocked"
)

// Publisher emits portal events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close()
}

// NATSPublisher publishes JSON-encoded events to a NATS server.
type NATSPublisher struct {
	conn *nats.Conn
	log  zerolog.Logger
}

// NewNATSPublisher connects to the given NATS URL.
func NewNATSPublisher(url string, log zerolog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &NATSPublisher{conn: conn, log: log}, nil
}

// Publish encodes the payload as JSON and publishes it on the subject.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode event payload: %w", err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.log.Debug().Str("subject", subject).Msg("event published")
	return nil
}

// Close drains the connection so buffered events flush before shutdown.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.log.Warn().Err(err).Msg("drain nats connection")
	}
}

// NoopPublisher discards events. Used when no event bus is configured
// and in tests.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, subject string, payload any) error { return nil }
func (NoopPublisher) Close()                                                         {}
