// Package observability provides a metrics extension for the invoice tracker
// that records lifecycle event counts via a MetricFactory.
package observability

import (
	"context"

	"github.com/xraph/invoicing/invoice"
	"github.com/xraph/invoicing/payment"
	"github.com/xraph/invoicing/plugin"
)

// Ensure MetricsExtension implements required interfaces.
var (
	_ plugin.Plugin            = (*MetricsExtension)(nil)
	_ plugin.OnInit            = (*MetricsExtension)(nil)
	_ plugin.OnInvoiceCreated  = (*MetricsExtension)(nil)
	_ plugin.OnInvoiceUpdated  = (*MetricsExtension)(nil)
	_ plugin.OnInvoiceDeleted  = (*MetricsExtension)(nil)
	_ plugin.OnInvoiceRejected = (*MetricsExtension)(nil)
	_ plugin.OnInvoicePaid     = (*MetricsExtension)(nil)
	_ plugin.OnPaymentRecorded = (*MetricsExtension)(nil)
)

// Counter interface for metric counters.
type Counter interface {
	Inc()
	Add(float64)
}

// Histogram interface for metric histograms.
type Histogram interface {
	Observe(float64)
}

// MetricFactory creates metrics.
type MetricFactory interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// MetricsExtension records system-wide lifecycle metrics.
// Register it as a tracker plugin to automatically track invoicing metrics.
type MetricsExtension struct {
	factory MetricFactory

	// Invoice metrics
	InvoiceCreated  Counter
	InvoiceUpdated  Counter
	InvoiceDeleted  Counter
	InvoiceRejected Counter
	InvoicePaid     Counter
	InvoiceAmount   Histogram

	// Payment metrics
	PaymentRecorded Counter
	PaymentAmount   Histogram

	// Error metrics
	StoreErrors  Counter
	PluginErrors Counter
}

// NewMetricsExtension creates a MetricsExtension with the provided MetricFactory.
// Use app.Metrics() in forge extensions.
func NewMetricsExtension(factory MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		factory: factory,

		// Invoice metrics
		InvoiceCreated:  factory.Counter("invoicing.invoice.created"),
		InvoiceUpdated:  factory.Counter("invoicing.invoice.updated"),
		InvoiceDeleted:  factory.Counter("invoicing.invoice.deleted"),
		InvoiceRejected: factory.Counter("invoicing.invoice.rejected"),
		InvoicePaid:     factory.Counter("invoicing.invoice.paid"),
		InvoiceAmount:   factory.Histogram("invoicing.invoice.amount"),

		// Payment metrics
		PaymentRecorded: factory.Counter("invoicing.payment.recorded"),
		PaymentAmount:   factory.Histogram("invoicing.payment.amount"),

		// Error metrics
		StoreErrors:  factory.Counter("invoicing.store.errors"),
		PluginErrors: factory.Counter("invoicing.plugin.errors"),
	}
}

// Name implements plugin.Plugin.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnInit implements plugin.OnInit.
func (m *MetricsExtension) OnInit(_ context.Context, _ interface{}) error {
	// No initialization needed
	return nil
}

// ──────────────────────────────────────────────────
// Invoice lifecycle hooks
// ──────────────────────────────────────────────────

// OnInvoiceCreated implements plugin.OnInvoiceCreated.
func (m *MetricsExtension) OnInvoiceCreated(_ context.Context, v interface{}) error {
	m.InvoiceCreated.Inc()
	if inv, ok := v.(*invoice.Invoice); ok {
		m.InvoiceAmount.Observe(majorUnits(inv.Amount.Cents()))
	}
	return nil
}

// OnInvoiceUpdated implements plugin.OnInvoiceUpdated.
func (m *MetricsExtension) OnInvoiceUpdated(_ context.Context, _ interface{}) error {
	m.InvoiceUpdated.Inc()
	return nil
}

// OnInvoiceDeleted implements plugin.OnInvoiceDeleted.
func (m *MetricsExtension) OnInvoiceDeleted(_ context.Context, _ int64) error {
	m.InvoiceDeleted.Inc()
	return nil
}

// OnInvoiceRejected implements plugin.OnInvoiceRejected.
func (m *MetricsExtension) OnInvoiceRejected(_ context.Context, _ interface{}) error {
	m.InvoiceRejected.Inc()
	return nil
}

// OnInvoicePaid implements plugin.OnInvoicePaid.
func (m *MetricsExtension) OnInvoicePaid(_ context.Context, _ interface{}) error {
	m.InvoicePaid.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Payment lifecycle hooks
// ──────────────────────────────────────────────────

// OnPaymentRecorded implements plugin.OnPaymentRecorded.
func (m *MetricsExtension) OnPaymentRecorded(_ context.Context, v interface{}) error {
	m.PaymentRecorded.Inc()
	if p, ok := v.(*payment.Payment); ok {
		m.PaymentAmount.Observe(majorUnits(p.Amount.Cents()))
	}
	return nil
}

func majorUnits(cents int64) float64 {
	return float64(cents) / 100
}
