package payment

import (
	"context"
)

// Store is the storage contract for payments. Record must copy the amount
// from the referenced invoice and transition that invoice from Pending to
// Paid atomically with appending the payment — both succeed or neither
// does. List returns payments in insertion order.
type Store interface {
	Record(ctx context.Context, p *Payment) error
	List(ctx context.Context) ([]*Payment, error)
}
