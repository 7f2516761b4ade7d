package service

import (
	"context"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/starfolksoftware/invoicegen/internal/clock"
	"github.com/starfolksoftware/invoicegen/internal/config"
	invoicedomain "github.com/starfolksoftware/invoicegen/internal/invoice/domain"
	"github.com/starfolksoftware/invoicegen/internal/ledger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log      *zap.Logger
	Clock    clock.Clock
	GenID    *snowflake.Node
	Repo     invoicedomain.CollectionRepository
	Defaults *config.DefaultsHolder
}

// Service owns the in-memory invoice collection and its current
// pointer. Mutations replace the collection value wholesale under the
// mutex, then hand a snapshot to the repository in the background:
// in-memory state is immediately visible to subsequent reads, the
// durable write is fire-and-forget and a failed write only reaches the
// log.
type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	genID    *snowflake.Node
	repo     invoicedomain.CollectionRepository
	defaults *config.DefaultsHolder

	mu        sync.Mutex
	invoices  []invoicedomain.Invoice
	currentID string

	persistMu  sync.Mutex
	persistSeq uint64
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		log:      p.Log.Named("invoice.service"),
		clock:    p.Clock,
		genID:    p.GenID,
		repo:     p.Repo,
		defaults: p.Defaults,
	}
}

// Init loads the persisted collection. An empty collection is seeded
// with one fresh invoice so the UI never sees zero invoices; the first
// record becomes current.
func (s *Service) Init(ctx context.Context) error {
	invoices, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(invoices) == 0 {
		seeded := s.emptyInvoice(nil)
		invoices = []invoicedomain.Invoice{seeded}
		s.persist(invoices)
	}

	s.invoices = invoices
	s.currentID = invoices[0].ID
	s.log.Info("collection loaded", zap.Int("invoices", len(invoices)))
	return nil
}

func (s *Service) List(ctx context.Context) []invoicedomain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]invoicedomain.Invoice, len(s.invoices))
	for i, inv := range s.invoices {
		out[i] = inv.Clone()
	}
	return out
}

func (s *Service) Current(ctx context.Context) (invoicedomain.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(s.currentID)
}

func (s *Service) Get(ctx context.Context, id string) (invoicedomain.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(id)
}

func (s *Service) Create(ctx context.Context) invoicedomain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.emptyInvoice(s.invoices)
	next := append(s.snapshotLocked(), created)
	s.invoices = next
	s.currentID = created.ID
	s.persist(next)

	s.log.Info("invoice created",
		zap.String("id", created.ID),
		zap.String("number", created.InvoiceNumber),
	)
	return created.Clone()
}

func (s *Service) UpdateCurrent(ctx context.Context, patch invoicedomain.InvoicePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentID == "" {
		return
	}

	next := s.snapshotLocked()
	found := false
	for i := range next {
		if next[i].ID != s.currentID {
			continue
		}
		applyPatch(&next[i], patch)
		next[i].UpdatedAt = clock.Timestamp(s.clock)
		found = true
		break
	}
	if !found {
		// Stale pointer; nothing to update.
		return
	}

	s.invoices = next
	s.persist(next)
}

func (s *Service) Duplicate(ctx context.Context, id string) (invoicedomain.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.findLocked(id)
	if !ok {
		return invoicedomain.Invoice{}, false
	}

	now := clock.Timestamp(s.clock)
	dup := source.Clone()
	dup.ID = s.genID.Generate().String()
	dup.InvoiceNumber = ledger.NextInvoiceNumber(s.invoices)
	dup.Status = invoicedomain.InvoiceStatusDraft
	dup.CreatedAt = now
	dup.UpdatedAt = now

	next := append(s.snapshotLocked(), dup)
	s.invoices = next
	s.currentID = dup.ID
	s.persist(next)

	s.log.Info("invoice duplicated",
		zap.String("source", source.ID),
		zap.String("id", dup.ID),
		zap.String("number", dup.InvoiceNumber),
	)
	return dup.Clone(), true
}

func (s *Service) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]invoicedomain.Invoice, 0, len(s.invoices))
	removed := false
	for _, inv := range s.invoices {
		if inv.ID == id {
			removed = true
			continue
		}
		next = append(next, inv)
	}
	if !removed {
		return
	}

	if id == s.currentID {
		if len(next) > 0 {
			s.currentID = next[0].ID
		} else {
			// The collection must never be observably empty: synthesize
			// a fresh invoice and make it the sole member.
			seeded := s.emptyInvoice(nil)
			next = append(next, seeded)
			s.currentID = seeded.ID
		}
	}

	s.invoices = next
	s.persist(next)
	s.log.Info("invoice deleted", zap.String("id", id))
}

func (s *Service) Select(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findLocked(id); !ok {
		return
	}
	s.currentID = id
}

// emptyInvoice builds a fresh draft with defaults and a single empty
// line item. The invoice number is generated over the given collection.
func (s *Service) emptyInvoice(existing []invoicedomain.Invoice) invoicedomain.Invoice {
	defaults := s.defaults.Get()
	now := clock.Timestamp(s.clock)

	template := invoicedomain.Template(defaults.Template)
	if !template.Valid() {
		template = invoicedomain.TemplateClassic
	}

	return invoicedomain.Invoice{
		ID:            s.genID.Generate().String(),
		InvoiceNumber: ledger.NextInvoiceNumber(existing),
		IssueDate:     clock.Today(s.clock),
		DueDate:       clock.DueDate(s.clock, defaults.DueInDays),
		Currency:      defaults.Currency,
		Template:      template,
		Business:      invoicedomain.BusinessDetails{},
		Client:        invoicedomain.ClientDetails{},
		LineItems:     []invoicedomain.LineItem{s.emptyLineItem()},
		Status:        invoicedomain.InvoiceStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (s *Service) emptyLineItem() invoicedomain.LineItem {
	return invoicedomain.LineItem{
		ID:       s.genID.Generate().String(),
		Quantity: 1,
	}
}

// findLocked resolves an id against the collection. The current
// pointer is an id, never an object reference, so every read resolves
// freshly here and can never see a stale record.
func (s *Service) findLocked(id string) (invoicedomain.Invoice, bool) {
	if id == "" {
		return invoicedomain.Invoice{}, false
	}
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv.Clone(), true
		}
	}
	return invoicedomain.Invoice{}, false
}

func (s *Service) snapshotLocked() []invoicedomain.Invoice {
	out := make([]invoicedomain.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// persist hands the snapshot to the repository without blocking the
// caller. Writes are serialized and stale snapshots are dropped when a
// newer one is already queued, so the slot always converges on the
// latest collection value. A write failure does not roll back
// in-memory state. Called with s.mu held.
func (s *Service) persist(snapshot []invoicedomain.Invoice) {
	s.persistSeq++
	seq := s.persistSeq

	go func() {
		s.persistMu.Lock()
		defer s.persistMu.Unlock()

		s.mu.Lock()
		latest := s.persistSeq
		s.mu.Unlock()
		if seq != latest {
			return
		}

		if err := s.repo.Save(context.Background(), snapshot); err != nil {
			s.log.Error("persist collection failed", zap.Error(err))
		}
	}()
}

// applyPatch merges non-nil patch fields. Business, Client and
// LineItems replace the whole block.
func applyPatch(inv *invoicedomain.Invoice, patch invoicedomain.InvoicePatch) {
	if patch.InvoiceNumber != nil {
		inv.InvoiceNumber = *patch.InvoiceNumber
	}
	if patch.IssueDate != nil {
		inv.IssueDate = *patch.IssueDate
	}
	if patch.DueDate != nil {
		inv.DueDate = *patch.DueDate
	}
	if patch.Currency != nil {
		inv.Currency = *patch.Currency
	}
	if patch.Template != nil {
		inv.Template = *patch.Template
	}
	if patch.Business != nil {
		inv.Business = *patch.Business
	}
	if patch.Client != nil {
		inv.Client = *patch.Client
	}
	if patch.LineItems != nil {
		items := make([]invoicedomain.LineItem, len(*patch.LineItems))
		copy(items, *patch.LineItems)
		inv.LineItems = items
	}
	if patch.Notes != nil {
		inv.Notes = *patch.Notes
	}
	if patch.Status != nil {
		inv.Status = *patch.Status
	}
}
