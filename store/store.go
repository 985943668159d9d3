package store

import (
	"context"

	"github.com/xraph/invoicing/invoice"
	"github.com/xraph/invoicing/payment"
)

// Store is the unified storage interface for all invoicing records. One
// store instance owns both collections so that recording a payment can
// flip the paid invoice inside a single operation. Instead of embedding
// the per-entity sub-interfaces, all methods are declared explicitly to
// avoid naming conflicts.
type Store interface {
	// Invoice methods
	CreateInvoice(ctx context.Context, inv *invoice.Invoice) error
	GetInvoice(ctx context.Context, number int64) (*invoice.Invoice, error)
	ListInvoices(ctx context.Context) ([]*invoice.Invoice, error)
	UpdateInvoice(ctx context.Context, number int64, patch invoice.Patch) (*invoice.Invoice, error)
	DeleteInvoice(ctx context.Context, number int64) error
	MarkInvoiceRejected(ctx context.Context, number int64) (*invoice.Invoice, error)

	// Payment methods
	RecordPayment(ctx context.Context, p *payment.Payment) error
	ListPayments(ctx context.Context) ([]*payment.Payment, error)

	// Core methods
	Ping(ctx context.Context) error
	Close() error
}
