package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_invoiceFilter_ParameterizesSearch(t *testing.T) {
	where, args := invoiceFilter(ListInvoicesParams{Search: "F-10", Status: "unpaid"})

	assert.Equal(t, "WHERE (i.folio ILIKE $1 OR s.name ILIKE $1) AND i.status = $2", where)
	assert.Equal(t, []any{"%F-10%", "unpaid"}, args)
}

func Test_invoiceFilter_EmptyMeansNoWhere(t *testing.T) {
	where, args := invoiceFilter(ListInvoicesParams{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func Test_paymentFilter_StatusOnly(t *testing.T) {
	where, args := paymentFilter(ListPaymentsParams{Status: "pending"})

	assert.Equal(t, "WHERE p.status = $1", where)
	assert.Equal(t, []any{"pending"}, args)
}

func Test_alertFilter_TypeAndSearch(t *testing.T) {
	where, args := alertFilter(ListAlertsParams{Type: "payment_applied", Search: "acme"})

	assert.Equal(t, "WHERE a.alert_type = $1 AND (a.message ILIKE $2 OR u.username ILIKE $2 OR s.name ILIKE $2)", where)
	assert.Equal(t, []any{"payment_applied", "%acme%"}, args)
}

func Test_eulaFilter_TriStateBooleans(t *testing.T) {
	signed := true
	where, args := eulaFilter(ListEulasParams{Search: "sublime", Signed: &signed})

	assert.Equal(t, "WHERE (server_ref ILIKE $1 OR server_url ILIKE $1 OR client ILIKE $1 OR distributor ILIKE $1) AND contract_signed = $2", where)
	assert.Equal(t, []any{"%sublime%", true}, args)

	where, args = eulaFilter(ListEulasParams{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}
