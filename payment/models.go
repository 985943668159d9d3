package payment

import (
	"github.com/xraph/invoicing/id"
	"github.com/xraph/invoicing/types"
)

// Method is how a payment was made.
type Method string

const (
	MethodCash   Method = "Cash"
	MethodCredit Method = "Credit"
	MethodACH    Method = "ACH"
	MethodWire   Method = "Wire"
)

// Valid reports whether m is a known payment method.
func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodCredit, MethodACH, MethodWire:
		return true
	}
	return false
}

// Methods returns all accepted payment methods.
func Methods() []Method {
	return []Method{MethodCash, MethodCredit, MethodACH, MethodWire}
}

// Payment records money received against a Pending invoice. Payments are
// append-only: never updated, never deleted. Amount is copied from the
// invoice when the payment is recorded, not supplied by the caller, and
// recording a payment flips the referenced invoice to Paid in the same
// store operation.
type Payment struct {
	ID            id.PaymentID `json:"id"`
	Method        Method       `json:"paymentMethod"`
	Amount        types.Money  `json:"amount"`
	Date          types.Date   `json:"paymentDate"`
	InvoiceNumber int64        `json:"invoiceNumber"`
}

// Clone returns a copy of the payment.
func (p *Payment) Clone() *Payment {
	cp := *p
	return &cp
}
