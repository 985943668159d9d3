// Package audithook bridges Tracker lifecycle events to an audit trail backend.
//
// It defines a local Recorder interface so the package does not depend on any
// particular audit system. Callers inject a RecorderFunc adapter that bridges
// to their backend at wiring time.
package audithook

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xraph/invoicing/invoice"
	"github.com/xraph/invoicing/payment"
	"github.com/xraph/invoicing/plugin"
)

// Compile-time interface checks.
var (
	_ plugin.Plugin            = (*Extension)(nil)
	_ plugin.OnInvoiceCreated  = (*Extension)(nil)
	_ plugin.OnInvoiceUpdated  = (*Extension)(nil)
	_ plugin.OnInvoiceDeleted  = (*Extension)(nil)
	_ plugin.OnInvoiceRejected = (*Extension)(nil)
	_ plugin.OnInvoicePaid     = (*Extension)(nil)
	_ plugin.OnPaymentRecorded = (*Extension)(nil)
)

// Recorder is the interface that audit backends must implement.
// It is defined locally so that the audithook package does not depend on
// a concrete audit system — callers inject their backend at wiring time.
type Recorder interface {
	Record(ctx context.Context, event *AuditEvent) error
}

// AuditEvent is a local representation of an audit event.
type AuditEvent struct {
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	Category   string         `json:"category"`
	ResourceID string         `json:"resource_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Outcome    string         `json:"outcome"`
	Severity   string         `json:"severity"`
	Reason     string         `json:"reason,omitempty"`
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, event *AuditEvent) error

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, event *AuditEvent) error {
	return f(ctx, event)
}

// Extension bridges Tracker lifecycle events to an audit trail backend.
type Extension struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
}

// New creates an Extension that emits audit events through the provided Recorder.
func New(r Recorder, opts ...Option) *Extension {
	e := &Extension{
		recorder: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements plugin.Plugin.
func (e *Extension) Name() string { return "audit-hook" }

// ──────────────────────────────────────────────────
// Invoice lifecycle hooks
// ──────────────────────────────────────────────────

// OnInvoiceCreated implements plugin.OnInvoiceCreated.
func (e *Extension) OnInvoiceCreated(ctx context.Context, v interface{}) error {
	number, meta := invoiceDetails(v)
	return e.record(ctx, ActionInvoiceCreated, SeverityInfo, OutcomeSuccess,
		ResourceInvoice, number, CategoryBilling, nil, meta...)
}

// OnInvoiceUpdated implements plugin.OnInvoiceUpdated.
func (e *Extension) OnInvoiceUpdated(ctx context.Context, v interface{}) error {
	number, meta := invoiceDetails(v)
	return e.record(ctx, ActionInvoiceUpdated, SeverityInfo, OutcomeSuccess,
		ResourceInvoice, number, CategoryBilling, nil, meta...)
}

// OnInvoiceDeleted implements plugin.OnInvoiceDeleted.
func (e *Extension) OnInvoiceDeleted(ctx context.Context, number int64) error {
	return e.record(ctx, ActionInvoiceDeleted, SeverityWarning, OutcomeSuccess,
		ResourceInvoice, strconv.FormatInt(number, 10), CategoryBilling, nil,
		"invoice_number", number,
	)
}

// OnInvoiceRejected implements plugin.OnInvoiceRejected.
func (e *Extension) OnInvoiceRejected(ctx context.Context, v interface{}) error {
	number, meta := invoiceDetails(v)
	return e.record(ctx, ActionInvoiceRejected, SeverityWarning, OutcomeSuccess,
		ResourceInvoice, number, CategoryBilling, nil, meta...)
}

// OnInvoicePaid implements plugin.OnInvoicePaid.
func (e *Extension) OnInvoicePaid(ctx context.Context, v interface{}) error {
	number, meta := invoiceDetails(v)
	return e.record(ctx, ActionInvoicePaid, SeverityInfo, OutcomeSuccess,
		ResourceInvoice, number, CategoryPayment, nil, meta...)
}

// ──────────────────────────────────────────────────
// Payment lifecycle hooks
// ──────────────────────────────────────────────────

// OnPaymentRecorded implements plugin.OnPaymentRecorded.
func (e *Extension) OnPaymentRecorded(ctx context.Context, v interface{}) error {
	p, ok := v.(*payment.Payment)
	if !ok {
		return e.record(ctx, ActionPaymentRecorded, SeverityInfo, OutcomeSuccess,
			ResourcePayment, "", CategoryPayment, nil,
			"event", "payment_recorded",
		)
	}
	return e.record(ctx, ActionPaymentRecorded, SeverityInfo, OutcomeSuccess,
		ResourcePayment, p.ID.String(), CategoryPayment, nil,
		"payment_id", p.ID.String(),
		"invoice_number", p.InvoiceNumber,
		"method", string(p.Method),
		"amount", p.Amount.FormatMajor(),
	)
}

// ──────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────

// invoiceDetails extracts the resource ID and metadata pairs from a hook payload.
func invoiceDetails(v interface{}) (string, []any) {
	inv, ok := v.(*invoice.Invoice)
	if !ok {
		return "", nil
	}
	return strconv.FormatInt(inv.Number, 10), []any{
		"invoice_number", inv.Number,
		"payee", inv.Payee,
		"amount", inv.Amount.FormatMajor(),
		"status", string(inv.Status),
	}
}

// record builds and sends an audit event if the action is enabled.
func (e *Extension) record(
	ctx context.Context,
	action, severity, outcome string,
	resource, resourceID, category string,
	err error,
	kvPairs ...any,
) error {
	if e.enabled != nil && !e.enabled[action] {
		return nil
	}

	meta := make(map[string]any, len(kvPairs)/2+1)
	for i := 0; i+1 < len(kvPairs); i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvPairs[i])
		}
		meta[key] = kvPairs[i+1]
	}

	var reason string
	if err != nil {
		reason = err.Error()
		meta["error"] = err.Error()
	}

	evt := &AuditEvent{
		Action:     action,
		Resource:   resource,
		Category:   category,
		ResourceID: resourceID,
		Metadata:   meta,
		Outcome:    outcome,
		Severity:   severity,
		Reason:     reason,
	}

	if recErr := e.recorder.Record(ctx, evt); recErr != nil {
		e.logger.Warn("audithook: failed to record audit event",
			"action", action,
			"resource_id", resourceID,
			"error", recErr,
		)
	}
	return nil
}
