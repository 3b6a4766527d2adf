package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/store"
)

// ServerService serves server lookups for the admin views.
type ServerService struct {
	store store.TxStore
}

// NewServerService builds a ServerService.
func NewServerService(st store.TxStore) *ServerService {
	return &ServerService{store: st}
}

// List returns all servers ordered by domain name.
func (s *ServerService) List(ctx context.Context) ([]domain.Server, error) {
	return s.store.ListServers(ctx)
}

// Get fetches one server.
func (s *ServerService) Get(ctx context.Context, id uuid.UUID) (domain.Server, error) {
	return s.store.GetServerByID(ctx, id)
}
