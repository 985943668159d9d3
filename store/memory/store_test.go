package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/xraph/invoicing"
	"github.com/xraph/invoicing/invoice"
	"github.com/xraph/invoicing/payment"
	"github.com/xraph/invoicing/types"
)

func newInvoice(payee string, cents int64) *invoice.Invoice {
	due, _ := types.ParseDate("2025-05-01")
	return &invoice.Invoice{
		Payee:     payee,
		Amount:    types.Cents(cents),
		DueDate:   due,
		Status:    invoice.StatusPending,
		IssueDate: types.Today(),
	}
}

func TestCreateInvoiceAssignsSequentialNumbers(t *testing.T) {
	ctx := context.Background()
	s := New()

	for i := int64(1); i <= 3; i++ {
		inv := newInvoice("Payee", 1000)
		if err := s.CreateInvoice(ctx, inv); err != nil {
			t.Fatalf("CreateInvoice() error = %v", err)
		}
		if inv.Number != i {
			t.Errorf("invoice %d: Number = %d, want %d", i, inv.Number, i)
		}
	}
}

func TestNumbersNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	first := newInvoice("First", 1000)
	second := newInvoice("Second", 2000)
	if err := s.CreateInvoice(ctx, first); err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}
	if err := s.CreateInvoice(ctx, second); err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	if err := s.DeleteInvoice(ctx, second.Number); err != nil {
		t.Fatalf("DeleteInvoice() error = %v", err)
	}

	third := newInvoice("Third", 3000)
	if err := s.CreateInvoice(ctx, third); err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}
	if third.Number != 3 {
		t.Errorf("Number = %d, want 3 (numbers must not be reused)", third.Number)
	}
}

func TestGetInvoice(t *testing.T) {
	ctx := context.Background()
	s := New()

	inv := newInvoice("Jane Doe", 1050)
	if err := s.CreateInvoice(ctx, inv); err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	got, err := s.GetInvoice(ctx, inv.Number)
	if err != nil {
		t.Fatalf("GetInvoice() error = %v", err)
	}
	if got.Payee != "Jane Doe" || !got.Amount.Equal(types.Cents(1050)) {
		t.Errorf("GetInvoice() = %+v", got)
	}

	// Mutating the returned copy must not touch the stored record.
	got.Payee = "changed"
	again, _ := s.GetInvoice(ctx, inv.Number)
	if again.Payee != "Jane Doe" {
		t.Error("GetInvoice() returned a shared reference, want a copy")
	}

	if _, err := s.GetInvoice(ctx, 99); !errors.Is(err, invoicing.ErrInvoiceNotFound) {
		t.Errorf("GetInvoice(99) error = %v, want ErrInvoiceNotFound", err)
	}
}

func TestListInvoicesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, payee := range []string{"A", "B", "C"} {
		if err := s.CreateInvoice(ctx, newInvoice(payee, 1000)); err != nil {
			t.Fatalf("CreateInvoice() error = %v", err)
		}
	}

	list, err := s.ListInvoices(ctx)
	if err != nil {
		t.Fatalf("ListInvoices() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	for i, payee := range []string{"A", "B", "C"} {
		if list[i].Payee != payee {
			t.Errorf("list[%d].Payee = %q, want %q", i, list[i].Payee, payee)
		}
	}
}

func TestUpdateInvoice(t *testing.T) {
	ctx := context.Background()
	s := New()

	inv := newInvoice("Jane Doe", 1050)
	if err := s.CreateInvoice(ctx, inv); err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	payee := "John Doe"
	got, err := s.UpdateInvoice(ctx, inv.Number, invoice.Patch{Payee: &payee})
	if err != nil {
		t.Fatalf("UpdateInvoice() error = %v", err)
	}
	if got.Payee != "John Doe" {
		t.Errorf("Payee = %q, want %q", got.Payee, "John Doe")
	}
	if !got.Amount.Equal(types.Cents(1050)) {
		t.Error("unsupplied fields must retain prior values")
	}

	if _, err := s.UpdateInvoice(ctx, 99, invoice.Patch{Payee: &payee}); !errors.Is(err, invoicing.ErrInvoiceNotFound) {
		t.Errorf("UpdateInvoice(99) error = %v, want ErrInvoiceNotFound", err)
	}
}

func TestUpdateNonPendingInvoice(t *testing.T) {
	ctx := context.Background()
	s := New()

	inv := newInvoice("Jane Doe", 1050)
	if err := s.CreateInvoice(ctx, inv); err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	p := &payment.Payment{Method: payment.MethodCash, Date: types.Today(), InvoiceNumber: inv.Number}
	if err := s.RecordPayment(ctx, p); err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}

	payee := "John Doe"
	if _, err := s.UpdateInvoice(ctx, inv.Number, invoice.Patch{Payee: &payee}); !errors.Is(err, invoicing.ErrInvoiceNotEditable) {
		t.Errorf("UpdateInvoice() on Paid invoice error = %v, want ErrInvoiceNotEditable", err)
	}
}

func TestDeleteInvoice(t *testing.T) {
	ctx := context.Background()
	s := New()

	inv := newInvoice("Jane Doe", 1050)
	if err := s.CreateInvoice(ctx, inv); err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	if err := s.DeleteInvoice(ctx, inv.Number); err != nil {
		t.Fatalf("DeleteInvoice() error = %v", err)
	}
	if err := s.DeleteInvoice(ctx, inv.Number); !errors.Is(err, invoicing.ErrInvoiceNotFound) {
		t.Errorf("second DeleteInvoice() error = %v, want ErrInvoiceNotFound", err)
	}

	list, _ := s.ListInvoices(ctx)
	if len(list) != 0 {
		t.Errorf("len = %d after delete, want 0", len(list))
	}
}

func TestMarkInvoiceRejected(t *testing.T) {
	ctx := context.Background()
	s := New()

	inv := newInvoice("Jane Doe", 1050)
	if err := s.CreateInvoice(ctx, inv); err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	got, err := s.MarkInvoiceRejected(ctx, inv.Number)
	if err != nil {
		t.Fatalf("MarkInvoiceRejected() error = %v", err)
	}
	if got.Status != invoice.StatusRejected {
		t.Errorf("Status = %q, want Rejected", got.Status)
	}

	if _, err := s.MarkInvoiceRejected(ctx, inv.Number); !errors.Is(err, invoicing.ErrInvoiceNotEditable) {
		t.Errorf("second MarkInvoiceRejected() error = %v, want ErrInvoiceNotEditable", err)
	}
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()
	s := New()

	inv := newInvoice("Jane Doe", 10000)
	if err := s.CreateInvoice(ctx, inv); err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	p := &payment.Payment{Method: payment.MethodCash, Date: types.Today(), InvoiceNumber: inv.Number}
	if err := s.RecordPayment(ctx, p); err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}

	if !p.Amount.Equal(types.Cents(10000)) {
		t.Errorf("Amount = %v, want the invoice amount", p.Amount)
	}

	got, _ := s.GetInvoice(ctx, inv.Number)
	if got.Status != invoice.StatusPaid {
		t.Errorf("invoice Status = %q after payment, want Paid", got.Status)
	}

	payments, _ := s.ListPayments(ctx)
	if len(payments) != 1 {
		t.Fatalf("len(payments) = %d, want 1", len(payments))
	}
}

func TestRecordPaymentFailures(t *testing.T) {
	ctx := context.Background()
	s := New()

	inv := newInvoice("Jane Doe", 10000)
	if err := s.CreateInvoice(ctx, inv); err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	// Unknown invoice.
	p := &payment.Payment{Method: payment.MethodCash, Date: types.Today(), InvoiceNumber: 99}
	if err := s.RecordPayment(ctx, p); !errors.Is(err, invoicing.ErrInvoiceNotFound) {
		t.Errorf("RecordPayment(99) error = %v, want ErrInvoiceNotFound", err)
	}

	// Pay once, then a second payment must fail without side effects.
	first := &payment.Payment{Method: payment.MethodCash, Date: types.Today(), InvoiceNumber: inv.Number}
	if err := s.RecordPayment(ctx, first); err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}
	second := &payment.Payment{Method: payment.MethodCredit, Date: types.Today(), InvoiceNumber: inv.Number}
	if err := s.RecordPayment(ctx, second); !errors.Is(err, invoicing.ErrInvoiceNotPayable) {
		t.Errorf("second RecordPayment() error = %v, want ErrInvoiceNotPayable", err)
	}

	payments, _ := s.ListPayments(ctx)
	if len(payments) != 1 {
		t.Errorf("len(payments) = %d after rejected double payment, want 1", len(payments))
	}
}
