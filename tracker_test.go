package invoicing_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	invoicing "github.com/xraph/invoicing"
	"github.com/xraph/invoicing/invoice"
	"github.com/xraph/invoicing/payment"
	"github.com/xraph/invoicing/store/memory"
	"github.com/xraph/invoicing/types"
)

func newTracker(opts ...invoicing.Option) *invoicing.Tracker {
	opts = append(opts, invoicing.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return invoicing.New(memory.New(), opts...)
}

func mustDate(t *testing.T, s string) types.Date {
	t.Helper()
	d, err := types.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", s, err)
	}
	return d
}

func TestCreateInvoiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	tracker := newTracker()

	inv, err := tracker.CreateInvoice(ctx, invoice.Draft{
		Payee:   "Jane Doe",
		Amount:  invoicing.Cents(1050),
		DueDate: mustDate(t, "2025-05-01"),
	})
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	if inv.Number != 1 {
		t.Errorf("Number = %d, want 1", inv.Number)
	}
	if inv.Status != invoice.StatusPending {
		t.Errorf("Status = %q, want Pending", inv.Status)
	}
	if inv.IssueDate.IsZero() {
		t.Error("IssueDate not set")
	}

	got, err := tracker.GetInvoice(ctx, inv.Number)
	if err != nil {
		t.Fatalf("GetInvoice() error = %v", err)
	}
	if got.Payee != "Jane Doe" || !got.Amount.Equal(invoicing.Cents(1050)) || got.DueDate.String() != "2025-05-01" {
		t.Errorf("GetInvoice() = %+v", got)
	}
}

func TestCreateInvoiceValidation(t *testing.T) {
	ctx := context.Background()
	tracker := newTracker()
	due := mustDate(t, "2025-05-01")

	tests := []struct {
		name  string
		draft invoice.Draft
	}{
		{"empty payee", invoice.Draft{Amount: invoicing.Cents(1000), DueDate: due}},
		{"zero amount", invoice.Draft{Payee: "Jane", DueDate: due}},
		{"negative amount", invoice.Draft{Payee: "Jane", Amount: invoicing.Cents(-500), DueDate: due}},
		{"missing due date", invoice.Draft{Payee: "Jane", Amount: invoicing.Cents(1000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tracker.CreateInvoice(ctx, tt.draft); !errors.Is(err, invoicing.ErrInvalidInput) {
				t.Errorf("CreateInvoice() error = %v, want ErrInvalidInput", err)
			}
		})
	}

	// Failed creations must not consume invoice numbers.
	inv, err := tracker.CreateInvoice(ctx, invoice.Draft{Payee: "Jane", Amount: invoicing.Cents(1000), DueDate: due})
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}
	if inv.Number != 1 {
		t.Errorf("Number = %d after failed creations, want 1", inv.Number)
	}
}

func TestMalformedNumber(t *testing.T) {
	ctx := context.Background()
	tracker := newTracker()

	for _, number := range []int64{0, -1} {
		if _, err := tracker.GetInvoice(ctx, number); !errors.Is(err, invoicing.ErrMalformedNumber) {
			t.Errorf("GetInvoice(%d) error = %v, want ErrMalformedNumber", number, err)
		}
	}
}

func TestUpdateInvoice(t *testing.T) {
	ctx := context.Background()
	tracker := newTracker()

	inv, err := tracker.CreateInvoice(ctx, invoice.Draft{
		Payee: "Jane Doe", Amount: invoicing.Cents(1050), DueDate: mustDate(t, "2025-05-01"),
	})
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	amount := invoicing.Cents(2000)
	got, err := tracker.UpdateInvoice(ctx, inv.Number, invoice.Patch{Amount: &amount})
	if err != nil {
		t.Fatalf("UpdateInvoice() error = %v", err)
	}
	if !got.Amount.Equal(amount) {
		t.Errorf("Amount = %v, want %v", got.Amount, amount)
	}
	if got.Payee != "Jane Doe" {
		t.Error("unsupplied fields must retain prior values")
	}
	if got.Number != inv.Number || got.Status != invoice.StatusPending || !got.IssueDate.Equal(inv.IssueDate) {
		t.Error("number, status, and issue date must never change on update")
	}

	if _, err := tracker.UpdateInvoice(ctx, inv.Number, invoice.Patch{}); !errors.Is(err, invoicing.ErrEmptyPatch) {
		t.Errorf("empty patch error = %v, want ErrEmptyPatch", err)
	}

	bad := invoicing.Cents(0)
	if _, err := tracker.UpdateInvoice(ctx, inv.Number, invoice.Patch{Amount: &bad}); !errors.Is(err, invoicing.ErrInvalidInput) {
		t.Errorf("zero amount error = %v, want ErrInvalidInput", err)
	}
}

func TestPaymentFlow(t *testing.T) {
	ctx := context.Background()
	tracker := newTracker()

	inv, err := tracker.CreateInvoice(ctx, invoice.Draft{
		Payee: "Jane Doe", Amount: invoicing.Cents(10000), DueDate: mustDate(t, "2025-05-01"),
	})
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	p, err := tracker.RecordPayment(ctx, inv.Number, payment.MethodCash)
	if err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}
	if !p.Amount.Equal(invoicing.Cents(10000)) {
		t.Errorf("Amount = %v, want the invoice amount", p.Amount)
	}
	if p.InvoiceNumber != inv.Number {
		t.Errorf("InvoiceNumber = %d, want %d", p.InvoiceNumber, inv.Number)
	}
	if p.ID.IsNil() {
		t.Error("payment ID not assigned")
	}
	if p.Date.IsZero() {
		t.Error("payment date not set")
	}

	paid, err := tracker.GetInvoice(ctx, inv.Number)
	if err != nil {
		t.Fatalf("GetInvoice() error = %v", err)
	}
	if paid.Status != invoice.StatusPaid {
		t.Errorf("Status = %q after payment, want Paid", paid.Status)
	}

	// A second payment must fail with no side effects.
	if _, err := tracker.RecordPayment(ctx, inv.Number, payment.MethodCredit); !errors.Is(err, invoicing.ErrInvoiceNotPayable) {
		t.Errorf("second RecordPayment() error = %v, want ErrInvoiceNotPayable", err)
	}
	payments, _ := tracker.ListPayments(ctx)
	if len(payments) != 1 {
		t.Errorf("len(payments) = %d, want 1", len(payments))
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	ctx := context.Background()
	tracker := newTracker()

	if _, err := tracker.RecordPayment(ctx, 1, payment.Method("Bitcoin")); !errors.Is(err, invoicing.ErrInvalidMethod) {
		t.Errorf("unknown method error = %v, want ErrInvalidMethod", err)
	}
	if _, err := tracker.RecordPayment(ctx, 1, payment.MethodCash); !errors.Is(err, invoicing.ErrInvoiceNotFound) {
		t.Errorf("missing invoice error = %v, want ErrInvoiceNotFound", err)
	}
	if _, err := tracker.RecordPayment(ctx, 0, payment.MethodCash); !errors.Is(err, invoicing.ErrMalformedNumber) {
		t.Errorf("zero number error = %v, want ErrMalformedNumber", err)
	}
}

func TestRejectInvoice(t *testing.T) {
	ctx := context.Background()
	tracker := newTracker()

	inv, err := tracker.CreateInvoice(ctx, invoice.Draft{
		Payee: "Jane Doe", Amount: invoicing.Cents(1050), DueDate: mustDate(t, "2025-05-01"),
	})
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	got, err := tracker.RejectInvoice(ctx, inv.Number)
	if err != nil {
		t.Fatalf("RejectInvoice() error = %v", err)
	}
	if got.Status != invoice.StatusRejected {
		t.Errorf("Status = %q, want Rejected", got.Status)
	}

	if _, err := tracker.RecordPayment(ctx, inv.Number, payment.MethodCash); !errors.Is(err, invoicing.ErrInvoiceNotPayable) {
		t.Errorf("payment after reject error = %v, want ErrInvoiceNotPayable", err)
	}
	if _, err := tracker.RejectInvoice(ctx, inv.Number); !errors.Is(err, invoicing.ErrInvoiceNotEditable) {
		t.Errorf("second RejectInvoice() error = %v, want ErrInvoiceNotEditable", err)
	}
}

// lifecyclePlugin records the hook invocations it receives.
type lifecyclePlugin struct {
	mu     sync.Mutex
	events []string
}

func (p *lifecyclePlugin) Name() string { return "lifecycle-test" }

func (p *lifecyclePlugin) add(event string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *lifecyclePlugin) seen() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func (p *lifecyclePlugin) OnInvoiceCreated(context.Context, interface{}) error {
	p.add("created")
	return nil
}

func (p *lifecyclePlugin) OnInvoicePaid(context.Context, interface{}) error {
	p.add("paid")
	return nil
}

func (p *lifecyclePlugin) OnPaymentRecorded(context.Context, interface{}) error {
	p.add("payment")
	return nil
}

func TestPluginHooks(t *testing.T) {
	ctx := context.Background()
	pl := &lifecyclePlugin{}
	tracker := newTracker(invoicing.WithPlugin(pl))

	inv, err := tracker.CreateInvoice(ctx, invoice.Draft{
		Payee: "Jane Doe", Amount: invoicing.Cents(1050), DueDate: mustDate(t, "2025-05-01"),
	})
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}
	if _, err := tracker.RecordPayment(ctx, inv.Number, payment.MethodCash); err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}

	want := []string{"created", "payment", "paid"}
	got := pl.seen()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStartStop(t *testing.T) {
	ctx := context.Background()
	tracker := newTracker()

	if err := tracker.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := tracker.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if err := tracker.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}
