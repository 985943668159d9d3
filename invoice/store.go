package invoice

import (
	"context"
)

// Store is the storage contract for invoices. Implementations must keep
// List in insertion order, assign strictly increasing invoice numbers on
// Create, and perform each mutation atomically: a failed Update or a
// rejected status transition leaves the stored record untouched.
type Store interface {
	Create(ctx context.Context, inv *Invoice) error
	Get(ctx context.Context, number int64) (*Invoice, error)
	List(ctx context.Context) ([]*Invoice, error)
	Update(ctx context.Context, number int64, patch Patch) (*Invoice, error)
	Delete(ctx context.Context, number int64) error
	MarkRejected(ctx context.Context, number int64) (*Invoice, error)
}
