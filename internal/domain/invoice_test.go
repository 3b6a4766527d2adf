package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_InvoiceStatusFor(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		total   int64
		want    string
	}{
		{"untouched invoice is unpaid", 10000, 10000, InvoiceStatusUnpaid},
		{"partially covered", 4000, 10000, InvoiceStatusPartial},
		{"fully covered", 0, 10000, InvoiceStatusPaid},
		{"one cent remaining", 1, 10000, InvoiceStatusPartial},
		{"negative balance still paid", -1, 10000, InvoiceStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InvoiceStatusFor(tt.balance, tt.total))
		})
	}
}

func Test_DueDateFor(t *testing.T) {
	issued := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC), DueDateFor(issued))
}

func Test_SortFieldAllowLists(t *testing.T) {
	assert.True(t, InvoiceSortDueDate.Valid())
	assert.False(t, InvoiceSortField("balance_cents; DROP TABLE invoices").Valid())

	assert.True(t, PaymentSortAmount.Valid())
	assert.False(t, PaymentSortField("bank").Valid())
}
