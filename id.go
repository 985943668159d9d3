package invoicing

import "github.com/xraph/invoicing/id"

// ID is the identifier type for TypeID-backed invoicing records.
type ID = id.ID

// Prefix identifies the record type encoded in a TypeID.
type Prefix = id.Prefix
