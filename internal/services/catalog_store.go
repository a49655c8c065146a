package services

import (
	"context"
	"fmt"

	"github.com/you/storefront/domain"
	"go.uber.org/zap"
)

// CatalogStoreImpl implements domain.CatalogStore. The catalog lives only in memory.
type CatalogStoreImpl struct {
	client domain.CatalogClient
	events domain.EventLogger
	log    *zap.Logger

	cell *stateCell[domain.Catalog]
}

// NewCatalogStore creates an empty catalog store
func NewCatalogStore(client domain.CatalogClient, events domain.EventLogger, log *zap.Logger) *CatalogStoreImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogStoreImpl{
		client: client,
		events: events,
		log:    log.Named("catalog"),
		cell: newStateCell(domain.Catalog{
			Items:  []domain.Product{},
			Status: domain.StatusIdle,
		}, domain.Catalog.Clone),
	}
}

// Snapshot implements domain.CatalogStore
func (s *CatalogStoreImpl) Snapshot() domain.Catalog {
	return s.cell.snapshot()
}

// Subscribe implements domain.CatalogStore
func (s *CatalogStoreImpl) Subscribe(fn func(domain.Catalog)) func() {
	return s.cell.subscribe(fn)
}

// Fetch implements domain.CatalogStore.
// On failure the previous items and total are kept; a success does not clear an earlier Error.
func (s *CatalogStoreImpl) Fetch(ctx context.Context) (domain.Catalog, error) {
	s.cell.commit(func(c *domain.Catalog) {
		c.Status = domain.StatusLoading
	})

	res, err := s.client.FetchAll(ctx)
	if err != nil {
		msg := domain.MessageOr(err, domain.DefaultFetchMessage)
		snap := s.cell.commit(func(c *domain.Catalog) {
			c.Status = domain.StatusFailed
			c.Error = msg
		})
		s.log.Warn("catalog fetch failed", zap.Error(err))
		s.emit(ctx, domain.NewStoreEvent(domain.CatalogFetchFailureEvent).WithError(msg))
		return snap, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	items := make([]domain.Product, len(res.Products))
	copy(items, res.Products)
	snap := s.cell.commit(func(c *domain.Catalog) {
		c.Items = items
		c.Total = res.Total
		c.Rejected = res.Rejected
		c.Status = domain.StatusSucceeded
	})

	if res.Rejected > 0 {
		s.log.Warn("quarantined malformed products", zap.Int("rejected", res.Rejected))
	}
	s.emit(ctx, domain.NewStoreEvent(domain.CatalogFetchEvent).
		WithMetadata("count", len(items)).
		WithMetadata("total", res.Total).
		WithMetadata("rejected", res.Rejected))
	return snap, nil
}

// Add implements domain.CatalogStore. The new product gets max(id)+1 and goes to the front.
func (s *CatalogStoreImpl) Add(ctx context.Context, draft domain.ProductDraft) domain.Product {
	var product domain.Product
	s.cell.commit(func(c *domain.Catalog) {
		product = draft.WithID(c.MaxID() + 1)
		items := make([]domain.Product, 0, len(c.Items)+1)
		items = append(items, product)
		c.Items = append(items, c.Items...)
		c.Total++
	})

	s.emit(ctx, domain.NewStoreEvent(domain.ProductAddEvent).WithProduct(product.ID))
	return product
}

// Update implements domain.CatalogStore. Reports false, without committing, when no item has patch.ID.
func (s *CatalogStoreImpl) Update(ctx context.Context, patch domain.ProductPatch) (domain.Catalog, bool) {
	snap, ok := s.cell.commitIf(func(c *domain.Catalog) bool {
		for i := range c.Items {
			if c.Items[i].ID == patch.ID {
				items := make([]domain.Product, len(c.Items))
				copy(items, c.Items)
				items[i] = patch.Apply(items[i])
				c.Items = items
				return true
			}
		}
		return false
	})

	if !ok {
		s.log.Debug("update ignored, product not found", zap.Int("product_id", patch.ID))
		return snap, false
	}
	s.emit(ctx, domain.NewStoreEvent(domain.ProductUpdateEvent).WithProduct(patch.ID))
	return snap, true
}

// Delete implements domain.CatalogStore.
// Total is decremented even when no item matched.
func (s *CatalogStoreImpl) Delete(ctx context.Context, id int) domain.Catalog {
	removed := 0
	snap := s.cell.commit(func(c *domain.Catalog) {
		items := make([]domain.Product, 0, len(c.Items))
		for _, p := range c.Items {
			if p.ID == id {
				removed++
				continue
			}
			items = append(items, p)
		}
		c.Items = items
		c.Total--
	})

	s.emit(ctx, domain.NewStoreEvent(domain.ProductDeleteEvent).
		WithProduct(id).
		WithMetadata("removed", removed).
		WithMetadata("total", snap.Total))
	return snap
}

func (s *CatalogStoreImpl) emit(ctx context.Context, event *domain.StoreEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.LogEvent(ctx, event); err != nil {
		s.log.Warn("failed to log store event", zap.String("event_type", string(event.EventType)), zap.Error(err))
	}
}

var _ domain.CatalogStore = (*CatalogStoreImpl)(nil)
