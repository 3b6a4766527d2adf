package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/altamar/portal/internal/domain"
)

// Querier is the interface services depend on. *Queries implements it
// against a live database; mock_store.go provides the generated test
// double.
type Querier interface {
	// Servers
	GetServerByID(ctx context.Context, id uuid.UUID) (domain.Server, error)
	GetServerByName(ctx context.Context, name string) (domain.Server, error)
	ListServers(ctx context.Context) ([]domain.Server, error)

	// Users
	GetUserByLogin(ctx context.Context, username, domainName string) (domain.User, error)
	GetAdminByEmail(ctx context.Context, email string) (domain.User, error)
	CreateUser(ctx context.Context, params CreateUserParams) (domain.User, error)
	HasAcceptedNDA(ctx context.Context, userID uuid.UUID) (bool, error)
	AcceptNDA(ctx context.Context, params AcceptNDAParams) error

	// Invoices
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, id uuid.UUID) (domain.Invoice, error)
	ListOpenInvoices(ctx context.Context, serverID uuid.UUID) ([]domain.Invoice, error)
	ListInvoicesByIDs(ctx context.Context, serverID uuid.UUID, ids []uuid.UUID) ([]domain.Invoice, error)
	ApplyToInvoiceBalance(ctx context.Context, invoiceID uuid.UUID, amountCents int64) (domain.Invoice, error)
	SumOpenBalance(ctx context.Context, serverID uuid.UUID) (int64, error)
	ListInvoices(ctx context.Context, params ListInvoicesParams) ([]InvoiceWithServer, error)
	CountInvoices(ctx context.Context, params ListInvoicesParams) (int64, error)

	// Payments
	CreatePayment(ctx context.Context, params CreatePaymentParams) (domain.Payment, error)
	GetPaymentByID(ctx context.Context, id uuid.UUID) (domain.Payment, error)
	GetPaymentAllocations(ctx context.Context, paymentID uuid.UUID) ([]domain.Allocation, error)
	MarkPaymentValidated(ctx context.Context, paymentID, adminID uuid.UUID) (int64, error)
	MarkPaymentRejected(ctx context.Context, paymentID, adminID uuid.UUID, reason string) (int64, error)
	MarkPaymentApplied(ctx context.Context, paymentID, adminID uuid.UUID) (int64, error)
	ListPayments(ctx context.Context, params ListPaymentsParams) ([]PaymentWithServer, error)
	CountPayments(ctx context.Context, params ListPaymentsParams) (int64, error)

	// Announcements
	CreateAnnouncement(ctx context.Context, params CreateAnnouncementParams) (domain.Announcement, error)
	GetAnnouncementByID(ctx context.Context, id uuid.UUID) (domain.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id uuid.UUID, params UpdateAnnouncementParams) (domain.Announcement, error)
	ListActiveAnnouncements(ctx context.Context, serverID uuid.UUID) ([]domain.Announcement, error)
	ListServerAnnouncements(ctx context.Context, serverID uuid.UUID) ([]domain.Announcement, error)
	AcknowledgeAnnouncement(ctx context.Context, announcementID, userID uuid.UUID) (int64, error)
	DeleteDunningAnnouncements(ctx context.Context, serverID uuid.UUID) error
	ArchiveActiveAnnouncements(ctx context.Context, serverID uuid.UUID) (int64, error)
	ArchiveSuspendedAnnouncement(ctx context.Context, serverID uuid.UUID) (int64, error)

	// Eulas
	CreateEula(ctx context.Context, params EulaRecordParams) (domain.Eula, error)
	GetEulaByID(ctx context.Context, id uuid.UUID) (domain.Eula, error)
	UpdateEula(ctx context.Context, id uuid.UUID, params EulaRecordParams) (domain.Eula, error)
	DeleteEula(ctx context.Context, id uuid.UUID) error
	UpsertEula(ctx context.Context, params EulaRecordParams) (domain.Eula, error)
	ListEulas(ctx context.Context, params ListEulasParams) ([]domain.Eula, error)
	CountEulas(ctx context.Context, params ListEulasParams) (int64, error)

	// Alerts
	CreateAlert(ctx context.Context, params CreateAlertParams) (domain.Alert, error)
	ListAlerts(ctx context.Context, params ListAlertsParams) ([]AlertWithContext, error)
	CountAlerts(ctx context.Context, params ListAlertsParams) (int64, error)
}

// TxStore adds transaction support on top of Querier. The pgx Store
// implements it; services that mutate multiple rows require it.
type TxStore interface {
	Querier
	WithTx(ctx context.Context, fn func(Querier) error) error
}

var _ TxStore = (*Store)(nil)
