package application

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

// directoryQueryService is the concrete implementation of
// DirectoryQueryService.
type directoryQueryService struct {
	repo          DirectoryRepository
	fetcher       DirectoryFetcher
	prober        LanguageProber
	logger        *log.Logger
	directoryPath string

	// Serializes cache population on concurrent misses. Lookups are pure
	// reads and need no coordination.
	populateMu sync.Mutex
}

// NewDirectoryQueryService creates the lookup pipeline service.
// directoryPath is the path appended to the mall base link to reach the
// tenant listing, e.g. "en/directory/".
func NewDirectoryQueryService(repo DirectoryRepository, fetcher DirectoryFetcher, prober LanguageProber, logger *log.Logger, directoryPath string) DirectoryQueryService {
	return &directoryQueryService{
		repo:          repo,
		fetcher:       fetcher,
		prober:        prober,
		logger:        logger,
		directoryPath: strings.Trim(directoryPath, "/") + "/",
	}
}

// Find resolves a free-text store request. Cached matches win; on a cache
// miss the live directory page is fetched, the cache is populated with the
// full listing, and the request is matched against the fetched records.
// A failed fetch degrades to an empty result, so callers cannot distinguish
// "fetch unavailable" from "nothing found"; the failure is logged here so
// operators can.
func (s *directoryQueryService) Find(ctx context.Context, userRequest, mallLink string) ([]domain.Store, error) {
	query := domain.NormalizeName(userRequest)
	if query == "" {
		return nil, nil
	}

	cached, err := s.repo.Lookup(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(cached) > 0 {
		return cached, nil
	}

	s.populateMu.Lock()
	defer s.populateMu.Unlock()

	// Another request may have populated the cache while we waited.
	cached, err = s.repo.Lookup(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(cached) > 0 {
		return cached, nil
	}

	fetched, err := s.fetcher.Fetch(ctx, s.directoryURL(mallLink))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		s.logger.Printf("directory fetch failed, returning empty result: %v", err)
		return nil, nil
	}

	if len(fetched) > 0 {
		if err := s.repo.Populate(ctx, fetched); err != nil {
			s.logger.Printf("directory cache populate failed: %v", err)
		}
	}

	return domain.MatchStores(query, fetched), nil
}

// Availability resolves the request and tags each matched store with its
// open/closed status at the supplied time. Stores with unparseable hours
// stay in the result without an availability tag. Open stores are listed
// before closed ones, mirroring how the host speaks them.
func (s *directoryQueryService) Availability(ctx context.Context, userRequest, mallLink string, at domain.ClockTime) ([]StoreAvailability, error) {
	stores, err := s.Find(ctx, userRequest, mallLink)
	if err != nil {
		return nil, err
	}

	open := make([]StoreAvailability, 0, len(stores))
	closed := make([]StoreAvailability, 0, len(stores))
	for _, store := range stores {
		hours, err := domain.ParseHours(store.Hours)
		if err != nil {
			s.logger.Printf("skipping availability for %q: %v", store.Name, err)
			closed = append(closed, StoreAvailability{Store: store})
			continue
		}
		availability := domain.ResolveAvailability(hours, at)
		entry := StoreAvailability{Store: store, Availability: &availability}
		if availability.State == domain.StateOpen {
			open = append(open, entry)
		} else {
			closed = append(closed, entry)
		}
	}
	return append(open, closed...), nil
}

// ByFloor resolves the request and narrows the candidates to the floor the
// user asked for. When nothing sits on that floor the full candidate list
// comes back with Fallback set, per the host's present-everything policy.
func (s *directoryQueryService) ByFloor(ctx context.Context, userRequest, mallLink, floorPhrase string) (FloorSelection, error) {
	stores, err := s.Find(ctx, userRequest, mallLink)
	if err != nil {
		return FloorSelection{}, err
	}

	byFloor := domain.MatchFloor(floorPhrase, stores)
	if len(byFloor) == 0 {
		return FloorSelection{Stores: stores, Fallback: true}, nil
	}
	return FloorSelection{Stores: byFloor}, nil
}

// LanguageSupport derives the locale-specific directory address
// (base + lang + "/directory/") and probes its reachability.
func (s *directoryQueryService) LanguageSupport(ctx context.Context, lang, mallLink string) (LanguageSupport, error) {
	url := strings.TrimRight(mallLink, "/") + "/" + strings.ToLower(strings.TrimSpace(lang)) + "/directory/"
	supported, err := s.prober.Probe(ctx, url)
	if err != nil {
		return LanguageSupport{URL: url}, err
	}
	return LanguageSupport{Supported: supported, URL: url}, nil
}

// directoryURL joins the mall base link with the configured directory path.
func (s *directoryQueryService) directoryURL(mallLink string) string {
	return strings.TrimRight(mallLink, "/") + "/" + s.directoryPath
}
