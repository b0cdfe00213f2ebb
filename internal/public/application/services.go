package application

import (
	"context"

	"github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

// DirectoryRepository abstracts the durable store directory cache.
// Lookup returns every cached record matching the query by case-insensitive
// bidirectional substring containment; an empty slice is a cache miss.
type DirectoryRepository interface {
	Lookup(ctx context.Context, query string) ([]domain.Store, error)
	Populate(ctx context.Context, stores []domain.Store) error
	All(ctx context.Context) ([]domain.Store, error)
	Purge(ctx context.Context) (int64, error)
}

// DirectoryFetcher retrieves the live tenant listing for a mall directory
// page. A failed fetch returns an error; it never blocks beyond its
// configured timeout.
type DirectoryFetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]domain.Store, error)
}

// LanguageProber answers whether a derived locale-specific directory URL is
// reachable.
type LanguageProber interface {
	Probe(ctx context.Context, url string) (bool, error)
}

// StoreAvailability pairs a matched store with its resolved status.
// Availability is nil when the store's hours string could not be parsed;
// the store is still worth speaking as a plain record.
type StoreAvailability struct {
	Store        domain.Store
	Availability *domain.Availability
}

// FloorSelection is the outcome of floor-based narrowing. When no candidate
// sits on the requested floor, Fallback is set and Stores carries the full
// unfiltered candidate list for the host to present instead.
type FloorSelection struct {
	Stores   []domain.Store
	Fallback bool
}

// LanguageSupport reports whether a locale-specific directory exists and
// the address that was probed.
type LanguageSupport struct {
	Supported bool
	URL       string
}

// DirectoryQueryService exposes the per-turn lookup pipeline to the host
// platform: resolve a free-text store request against the cached or freshly
// fetched directory, then optionally rank by time or narrow by floor.
type DirectoryQueryService interface {
	Find(ctx context.Context, userRequest, mallLink string) ([]domain.Store, error)
	Availability(ctx context.Context, userRequest, mallLink string, at domain.ClockTime) ([]StoreAvailability, error)
	ByFloor(ctx context.Context, userRequest, mallLink, floorPhrase string) (FloorSelection, error)
	LanguageSupport(ctx context.Context, lang, mallLink string) (LanguageSupport, error)
}
