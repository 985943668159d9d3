package invoicing

import (
	"errors"
)

// Sentinel errors for common failure scenarios. Validation failures wrap
// ErrInvalidInput so callers can classify with errors.Is while still
// surfacing a human-readable message.
var (
	// General errors
	ErrNotFound     = errors.New("invoicing: not found")
	ErrInvalidInput = errors.New("invoicing: invalid input")

	// Identifier errors. A malformed invoice number (zero, negative, or
	// not numeric at all) is distinct from NotFound.
	ErrMalformedNumber = errors.New("invoicing: invoice number must be a positive integer")

	// Invoice errors
	ErrInvoiceNotFound    = errors.New("invoicing: invoice not found")
	ErrInvoiceNotEditable = errors.New("invoicing: cannot modify a Paid or Rejected invoice")
	ErrInvoiceNotPayable  = errors.New("invoicing: invoice is not in a payable state")
	ErrEmptyPatch         = errors.New("invoicing: no fields supplied to update")

	// Payment errors
	ErrInvalidMethod = errors.New("invoicing: invalid payment method")
)
