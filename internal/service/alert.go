package service

import (
	"context"

	"github.com/altamar/portal/internal/store"
)

// ListAlertsParams are the admin alert feed filters.
type ListAlertsParams struct {
	Type    string
	Search  string
	Page    int32
	PerPage int32
}

// AlertPage is one page of the admin alert feed.
type AlertPage struct {
	Items []store.AlertWithContext
	Total int64
}

// AlertService serves the admin alert feed.
type AlertService struct {
	store store.TxStore
}

// NewAlertService builds an AlertService.
func NewAlertService(st store.TxStore) *AlertService {
	return &AlertService{store: st}
}

// List returns a page of alerts, newest first.
func (s *AlertService) List(ctx context.Context, params ListAlertsParams) (AlertPage, error) {
	limit, offset := pageBounds(params.Page, params.PerPage)
	storeParams := store.ListAlertsParams{
		Type:   params.Type,
		Search: params.Search,
		Limit:  limit,
		Offset: offset,
	}

	items, err := s.store.ListAlerts(ctx, storeParams)
	if err != nil {
		return AlertPage{}, err
	}
	total, err := s.store.CountAlerts(ctx, storeParams)
	if err != nil {
		return AlertPage{}, err
	}
	return AlertPage{Items: items, Total: total}, nil
}
