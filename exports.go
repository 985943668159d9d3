package invoicing

import "github.com/xraph/invoicing/types"

// Re-export common types for convenience so users don't have to import the
// types package.

// Money is re-exported from the types package.
type Money = types.Money

// Date is re-exported from the types package.
type Date = types.Date

// Re-export Money constructors
var (
	Cents       = types.Cents
	ParseAmount = types.ParseAmount
)

// Re-export Date constructors
var (
	Today     = types.Today
	DateOf    = types.DateOf
	ParseDate = types.ParseDate
)
