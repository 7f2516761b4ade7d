package domain

import "context"

// CollectionRepository is the durable storage port for the invoice
// collection. The whole collection lives in a single named slot and is
// replaced wholesale on every save; there are no partial updates.
type CollectionRepository interface {
	// Load reads the persisted collection. A missing slot yields an
	// empty slice, not an error.
	Load(ctx context.Context) ([]Invoice, error)

	// Save replaces the slot with the given collection.
	Save(ctx context.Context, invoices []Invoice) error
}
