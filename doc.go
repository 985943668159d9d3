// Package invoicing provides a small composable invoice and payment
// tracking engine for Go applications.
//
// Invoicing is designed as a library, not a service. Import it directly
// into your Go application, or serve it over REST with the web package.
// It provides:
//
//   - An invoice ledger with sequential invoice numbers and a strict
//     Pending -> Paid / Pending -> Rejected lifecycle
//   - A payment processor that copies the invoice amount and flips the
//     invoice to Paid atomically with recording the payment
//   - Exact integer-cent money arithmetic with decimal wire encoding
//   - Pluggable lifecycle hooks (audit trail and metrics built-in)
//   - A Forge extension adapter with DI registration
//
// # Quick Start
//
// Create a tracker with the in-memory store:
//
//	import (
//	    "github.com/xraph/invoicing"
//	    "github.com/xraph/invoicing/store/memory"
//	)
//
//	tracker := invoicing.New(memory.New())
//
//	if err := tracker.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer tracker.Stop()
//
// # Core Concepts
//
// Invoices are created as Pending and numbered sequentially:
//
//	due, _ := invoicing.ParseDate("2025-05-01")
//	inv, err := tracker.CreateInvoice(ctx, invoice.Draft{
//	    Payee:   "Jane Doe",
//	    Amount:  invoicing.Cents(1050), // $10.50
//	    DueDate: due,
//	})
//
// Only Pending invoices may be edited or paid. Recording a payment copies
// the invoice amount and marks the invoice Paid in one operation:
//
//	pay, err := tracker.RecordPayment(ctx, inv.Number, payment.MethodCash)
//
// The web package exposes the same operations as a JSON REST API under
// /api, and cmd/invoiced serves it as a standalone binary.
package invoicing
