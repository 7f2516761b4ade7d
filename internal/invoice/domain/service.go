package domain

import (
	"context"
	"errors"
)

// InvoicePatch carries a partial update for the current invoice. Nil
// fields are left untouched. Business, Client and LineItems replace the
// whole block when present: callers send the complete block with their
// edits applied, not a field-by-field nested patch.
type InvoicePatch struct {
	InvoiceNumber *string          `json:"invoiceNumber,omitempty"`
	IssueDate     *string          `json:"issueDate,omitempty"`
	DueDate       *string          `json:"dueDate,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
	Template      *Template        `json:"template,omitempty"`
	Business      *BusinessDetails `json:"business,omitempty"`
	Client        *ClientDetails   `json:"client,omitempty"`
	LineItems     *[]LineItem      `json:"lineItems,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Status        *InvoiceStatus   `json:"status,omitempty"`
}

// Service owns the invoice collection and the current-invoice pointer.
//
// Operations keyed by an absent id are silent no-ops: the UI only ever
// passes ids it obtained from a collection snapshot, and a stale id is
// not worth failing over. The collection is never observably empty once
// Init has completed.
type Service interface {
	// Init loads the persisted collection and seeds a fresh invoice if
	// it comes back empty. Called once on startup.
	Init(ctx context.Context) error

	// List returns a snapshot copy of the collection in creation order.
	List(ctx context.Context) []Invoice

	// Current returns the current invoice, or ok=false when the
	// collection has not been initialised yet.
	Current(ctx context.Context) (Invoice, bool)

	// Get looks up an invoice by id.
	Get(ctx context.Context, id string) (Invoice, bool)

	// Create appends a fresh empty invoice and makes it current.
	Create(ctx context.Context) Invoice

	// UpdateCurrent merges the patch into the current invoice and
	// refreshes its updatedAt. No-op when nothing is current.
	UpdateCurrent(ctx context.Context, patch InvoicePatch)

	// Duplicate clones the invoice with the given id into a new draft
	// record and makes it current. ok=false when the id is unknown.
	Duplicate(ctx context.Context, id string) (Invoice, bool)

	// Delete removes the invoice with the given id. When the removed
	// invoice was current, the first remaining invoice becomes current;
	// when the collection would become empty a fresh invoice is
	// synthesized so callers never observe an empty collection.
	Delete(ctx context.Context, id string)

	// Select makes the invoice with the given id current. No-op when
	// the id is unknown.
	Select(ctx context.Context, id string)
}

var (
	ErrInvoiceNotFound = errors.New("invoice_not_found")
)
