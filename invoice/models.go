package invoice

import (
	"github.com/xraph/invoicing/types"
)

// Status is the lifecycle state of an invoice.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusPaid     Status = "Paid"
	StatusRejected Status = "Rejected"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusRejected:
		return true
	}
	return false
}

// Invoice is a bill issued to a payee. Numbers are sequential integers
// assigned by the store at creation and never reused; Status starts at
// Pending and IssueDate is fixed at creation.
type Invoice struct {
	Number      int64       `json:"invoiceNumber"`
	Payee       string      `json:"payee"`
	Amount      types.Money `json:"amount"`
	DueDate     types.Date  `json:"dueDate"`
	Status      Status      `json:"status"`
	IssueDate   types.Date  `json:"issueDate"`
	Description string      `json:"description,omitempty"`
}

// Editable reports whether the invoice may still be modified or paid.
// Only Pending invoices are mutable.
func (i *Invoice) Editable() bool { return i.Status == StatusPending }

// Clone returns a deep copy of the invoice.
func (i *Invoice) Clone() *Invoice {
	cp := *i
	return &cp
}

// Draft carries the caller-supplied fields for a new invoice. Number,
// Status, and IssueDate are assigned by the system.
type Draft struct {
	Payee       string      `json:"payee"`
	Amount      types.Money `json:"amount"`
	DueDate     types.Date  `json:"dueDate"`
	Description string      `json:"description"`
}

// Patch is a partial update of a Pending invoice. Nil fields retain their
// prior values; Number, Status, and IssueDate can never be patched.
type Patch struct {
	Payee       *string      `json:"payee"`
	Amount      *types.Money `json:"amount"`
	DueDate     *types.Date  `json:"dueDate"`
	Description *string      `json:"description"`
}

// Empty reports whether the patch supplies no fields at all.
func (p Patch) Empty() bool {
	return p.Payee == nil && p.Amount == nil && p.DueDate == nil && p.Description == nil
}

// Apply merges the patch into an invoice.
func (p Patch) Apply(inv *Invoice) {
	if p.Payee != nil {
		inv.Payee = *p.Payee
	}
	if p.Amount != nil {
		inv.Amount = *p.Amount
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Description != nil {
		inv.Description = *p.Description
	}
}
