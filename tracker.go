package invoicing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xraph/invoicing/id"
	"github.com/xraph/invoicing/invoice"
	"github.com/xraph/invoicing/payment"
	"github.com/xraph/invoicing/plugin"
	"github.com/xraph/invoicing/store"
	"github.com/xraph/invoicing/types"
)

// Tracker is the invoice/payment engine. It owns one store instance
// holding both collections and enforces every domain rule: creation and
// update validation, the Pending-only edit window, sequential invoice
// numbering, and the atomic pay transition.
type Tracker struct {
	store   store.Store
	plugins *plugin.Registry
	logger  *slog.Logger
}

// New creates a new Tracker instance.
func New(s store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:   s,
		plugins: plugin.NewRegistry(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Option configures a Tracker instance.
type Option func(*Tracker)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
		t.plugins.WithLogger(logger)
	}
}

// WithPlugin registers a plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(t *Tracker) {
		_ = t.plugins.Register(p) //nolint:errcheck // best-effort plugin registration during init
	}
}

// Start initializes plugins. Call it once before serving requests.
func (t *Tracker) Start(ctx context.Context) error {
	if err := t.store.Ping(ctx); err != nil {
		return err
	}

	t.plugins.EmitInit(ctx, t)

	t.logger.Info("invoice tracker started",
		"plugins", t.plugins.Count(),
	)

	return nil
}

// Stop shuts down the Tracker.
func (t *Tracker) Stop() error {
	ctx := context.Background()
	t.plugins.EmitShutdown(ctx)

	return t.store.Close()
}

// Ping reports whether the backing store is reachable.
func (t *Tracker) Ping(ctx context.Context) error {
	return t.store.Ping(ctx)
}

// ──────────────────────────────────────────────────
// Invoice Ledger
// ──────────────────────────────────────────────────

// ListInvoices returns all invoices in insertion order.
func (t *Tracker) ListInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	return t.store.ListInvoices(ctx)
}

// GetInvoice retrieves an invoice by number.
func (t *Tracker) GetInvoice(ctx context.Context, number int64) (*invoice.Invoice, error) {
	if err := checkNumber(number); err != nil {
		return nil, err
	}
	return t.store.GetInvoice(ctx, number)
}

// CreateInvoice validates a draft and stores it as a new Pending invoice.
// The invoice number is assigned by the store (previous max + 1, starting
// at 1) and the issue date is fixed to today.
func (t *Tracker) CreateInvoice(ctx context.Context, draft invoice.Draft) (*invoice.Invoice, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	inv := &invoice.Invoice{
		Payee:       draft.Payee,
		Amount:      draft.Amount,
		DueDate:     draft.DueDate,
		Status:      invoice.StatusPending,
		IssueDate:   types.Today(),
		Description: draft.Description,
	}

	if err := t.store.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	t.logger.Info("invoice created",
		"invoice_number", inv.Number,
		"payee", inv.Payee,
		"amount", inv.Amount.String(),
	)

	t.plugins.EmitInvoiceCreated(ctx, inv)
	return inv, nil
}

// UpdateInvoice merges a partial patch into a Pending invoice. Unsupplied
// fields keep their prior values; number, status, and issue date are never
// altered. Returns the merged record.
func (t *Tracker) UpdateInvoice(ctx context.Context, number int64, patch invoice.Patch) (*invoice.Invoice, error) {
	if err := checkNumber(number); err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	inv, err := t.store.UpdateInvoice(ctx, number, patch)
	if err != nil {
		return nil, err
	}

	t.logger.Info("invoice updated", "invoice_number", inv.Number)

	t.plugins.EmitInvoiceUpdated(ctx, inv)
	return inv, nil
}

// DeleteInvoice removes an invoice permanently, regardless of status.
// Deleting an absent number fails with ErrInvoiceNotFound; the failure is
// idempotent, not a success.
func (t *Tracker) DeleteInvoice(ctx context.Context, number int64) error {
	if err := checkNumber(number); err != nil {
		return err
	}

	if err := t.store.DeleteInvoice(ctx, number); err != nil {
		return err
	}

	t.logger.Info("invoice deleted", "invoice_number", number)

	t.plugins.EmitInvoiceDeleted(ctx, number)
	return nil
}

// RejectInvoice transitions a Pending invoice to Rejected. A Paid or
// already-Rejected invoice cannot be rejected.
func (t *Tracker) RejectInvoice(ctx context.Context, number int64) (*invoice.Invoice, error) {
	if err := checkNumber(number); err != nil {
		return nil, err
	}

	inv, err := t.store.MarkInvoiceRejected(ctx, number)
	if err != nil {
		return nil, err
	}

	t.logger.Info("invoice rejected", "invoice_number", inv.Number)

	t.plugins.EmitInvoiceRejected(ctx, inv)
	return inv, nil
}

// ──────────────────────────────────────────────────
// Payment Processor
// ──────────────────────────────────────────────────

// ListPayments returns all payments in insertion order.
func (t *Tracker) ListPayments(ctx context.Context) ([]*payment.Payment, error) {
	return t.store.ListPayments(ctx)
}

// RecordPayment records a payment against a Pending invoice. The amount
// is copied from the invoice — never supplied by the caller — and the
// invoice flips to Paid in the same store operation as the append: both
// succeed or neither does.
func (t *Tracker) RecordPayment(ctx context.Context, invoiceNumber int64, method payment.Method) (*payment.Payment, error) {
	if err := checkNumber(invoiceNumber); err != nil {
		return nil, err
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q (accepted: Cash, Credit, ACH, Wire)", ErrInvalidMethod, string(method))
	}

	p := &payment.Payment{
		ID:            id.NewPaymentID(),
		Method:        method,
		Date:          types.Today(),
		InvoiceNumber: invoiceNumber,
	}

	if err := t.store.RecordPayment(ctx, p); err != nil {
		return nil, err
	}

	t.logger.Info("payment recorded",
		"payment_id", p.ID.String(),
		"invoice_number", p.InvoiceNumber,
		"method", string(p.Method),
		"amount", p.Amount.String(),
	)

	t.plugins.EmitPaymentRecorded(ctx, p)
	if inv, err := t.store.GetInvoice(ctx, p.InvoiceNumber); err == nil {
		t.plugins.EmitInvoicePaid(ctx, inv)
	}
	return p, nil
}

// ──────────────────────────────────────────────────
// Validation helpers
// ──────────────────────────────────────────────────

// checkNumber rejects identifiers that cannot be valid invoice numbers.
// Zero and negative values are malformed, not merely absent.
func checkNumber(number int64) error {
	if number <= 0 {
		return fmt.Errorf("%w: got %d", ErrMalformedNumber, number)
	}
	return nil
}

func validateDraft(draft invoice.Draft) error {
	if draft.Payee == "" {
		return fmt.Errorf("%w: payee is required", ErrInvalidInput)
	}
	if !draft.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be a positive number", ErrInvalidInput)
	}
	if draft.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrInvalidInput)
	}
	return nil
}

func validatePatch(patch invoice.Patch) error {
	if patch.Empty() {
		return fmt.Errorf("%w: supply at least one of payee, amount, dueDate, description", ErrEmptyPatch)
	}
	if patch.Payee != nil && *patch.Payee == "" {
		return fmt.Errorf("%w: payee cannot be empty", ErrInvalidInput)
	}
	if patch.Amount != nil && !patch.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be a positive number", ErrInvalidInput)
	}
	if patch.DueDate != nil && patch.DueDate.IsZero() {
		return fmt.Errorf("%w: due date cannot be cleared", ErrInvalidInput)
	}
	return nil
}
