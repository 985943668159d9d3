package audithook

// Action constants for audit events.
const (
	// Invoice actions
	ActionInvoiceCreated  = "invoice.created"
	ActionInvoiceUpdated  = "invoice.updated"
	ActionInvoiceDeleted  = "invoice.deleted"
	ActionInvoiceRejected = "invoice.rejected"
	ActionInvoicePaid     = "invoice.paid"

	// Payment actions
	ActionPaymentRecorded = "payment.recorded"
)

// Resource constants for audit events.
const (
	ResourceInvoice = "invoice"
	ResourcePayment = "payment"
)

// Category constants for audit events.
const (
	CategoryBilling = "billing"
	CategoryPayment = "payment"
)

// Severity levels for audit events.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Outcome values for audit events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePartial = "partial"
)
