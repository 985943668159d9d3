// Package memory provides the in-memory store backend. It is the default
// backend: the tracker's data model is two process-lifetime lists, and a
// single mutex serializes every mutation so sequential invoice numbering
// and the Pending-status checks hold even under a concurrent HTTP server.
package memory

import (
	"context"
	"sync"

	"github.com/xraph/invoicing"
	"github.com/xraph/invoicing/invoice"
	"github.com/xraph/invoicing/payment"
)

type Store struct {
	mu sync.RWMutex

	// Invoice storage, insertion-ordered with a number index.
	invoices []*invoice.Invoice
	byNumber map[int64]*invoice.Invoice

	// nextNumber is an explicit counter so numbers stay strictly
	// increasing across the store's lifetime even after deletions.
	nextNumber int64

	// Payment storage, append-only.
	payments []*payment.Payment
}

func New() *Store {
	return &Store{
		invoices: make([]*invoice.Invoice, 0),
		byNumber: make(map[int64]*invoice.Invoice),
		payments: make([]*payment.Payment, 0),
	}
}

// Invoice Store implementation

// CreateInvoice assigns the next sequential invoice number and stores a
// copy of inv. The assigned number is written back to inv.
func (s *Store) CreateInvoice(_ context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextNumber++
	inv.Number = s.nextNumber

	stored := inv.Clone()
	s.invoices = append(s.invoices, stored)
	s.byNumber[stored.Number] = stored
	return nil
}

func (s *Store) GetInvoice(_ context.Context, number int64) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if inv, ok := s.byNumber[number]; ok {
		return inv.Clone(), nil
	}
	return nil, invoicing.ErrInvoiceNotFound
}

func (s *Store) ListInvoices(_ context.Context) ([]*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*invoice.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		result = append(result, inv.Clone())
	}
	return result, nil
}

// UpdateInvoice merges patch into a Pending invoice. The status check and
// the merge happen under one lock so a concurrent payment cannot slip in
// between them.
func (s *Store) UpdateInvoice(_ context.Context, number int64, patch invoice.Patch) (*invoice.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.byNumber[number]
	if !ok {
		return nil, invoicing.ErrInvoiceNotFound
	}
	if !inv.Editable() {
		return nil, invoicing.ErrInvoiceNotEditable
	}

	patch.Apply(inv)
	return inv.Clone(), nil
}

func (s *Store) DeleteInvoice(_ context.Context, number int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byNumber[number]; !ok {
		return invoicing.ErrInvoiceNotFound
	}

	delete(s.byNumber, number)
	for i, inv := range s.invoices {
		if inv.Number == number {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) MarkInvoiceRejected(_ context.Context, number int64) (*invoice.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.byNumber[number]
	if !ok {
		return nil, invoicing.ErrInvoiceNotFound
	}
	if inv.Status != invoice.StatusPending {
		return nil, invoicing.ErrInvoiceNotEditable
	}

	inv.Status = invoice.StatusRejected
	return inv.Clone(), nil
}

// Payment Store implementation

// RecordPayment copies the invoice amount into p, appends the payment,
// and flips the invoice to Paid under one lock, so both writes land or
// neither does. The copied amount is written back to p.
func (s *Store) RecordPayment(_ context.Context, p *payment.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.byNumber[p.InvoiceNumber]
	if !ok {
		return invoicing.ErrInvoiceNotFound
	}
	if inv.Status != invoice.StatusPending {
		return invoicing.ErrInvoiceNotPayable
	}

	p.Amount = inv.Amount
	s.payments = append(s.payments, p.Clone())
	inv.Status = invoice.StatusPaid
	return nil
}

func (s *Store) ListPayments(_ context.Context) ([]*payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*payment.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		result = append(result, p.Clone())
	}
	return result, nil
}

// Core methods

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) Close() error { return nil }
