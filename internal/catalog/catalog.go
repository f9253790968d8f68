// Package catalog holds the frozen card catalog shared by all scoring
// requests. The snapshot is loaded once before the server accepts traffic
// and replaced atomically on refresh; readers never lock.
package catalog

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/cardpath/backend/internal/model"
)

// Snapshot is an immutable view of the catalog and its reference data.
// Never mutate a snapshot after it has been published.
type Snapshot struct {
	Cards     []model.Card
	Services  model.ServiceMapping
	ApplyURLs map[string]string
}

// ApplyURLFor returns the application URL for a card, empty when unknown.
func (s *Snapshot) ApplyURLFor(cardName string) string {
	return s.ApplyURLs[cardName]
}

// Loader fetches catalog data from backing storage.
type Loader interface {
	ListCards(ctx context.Context) ([]model.Card, error)
	GetServiceMapping(ctx context.Context) (model.ServiceMapping, error)
	GetApplyURLs(ctx context.Context) (map[string]string, error)
}

// Store publishes the current snapshot. Concurrent Current calls are
// wait-free; Reload builds the new snapshot off to the side and swaps it in.
type Store struct {
	loader   Loader
	snapshot atomic.Pointer[Snapshot]
}

// NewStore creates a Store. Reload must succeed once before Current is used.
func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Reload fetches all catalog data and atomically publishes a new snapshot.
// Missing reference data (service mapping, apply URLs) degrades to empty
// maps rather than failing the reload; an empty card list is an error since
// scoring over nothing serves nobody.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	cards, err := s.loader.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cards: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	services, err := s.loader.GetServiceMapping(ctx)
	if err != nil {
		services = model.EmptyServiceMapping()
	}

	urls, err := s.loader.GetApplyURLs(ctx)
	if err != nil || urls == nil {
		urls = map[string]string{}
	}

	snap := &Snapshot{Cards: cards, Services: services, ApplyURLs: urls}
	s.snapshot.Store(snap)
	return snap, nil
}

// Current returns the published snapshot, or nil before the first Reload.
func (s *Store) Current() *Snapshot {
	return s.snapshot.Load()
}
