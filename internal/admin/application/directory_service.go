package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

// directoryService implements DirectoryService.
type directoryService struct {
	repo          DirectoryRepository
	fetcher       DirectoryFetcher
	directoryPath string
}

// NewDirectoryService creates the admin directory management service.
func NewDirectoryService(repo DirectoryRepository, fetcher DirectoryFetcher, directoryPath string) DirectoryService {
	return &directoryService{
		repo:          repo,
		fetcher:       fetcher,
		directoryPath: strings.Trim(directoryPath, "/") + "/",
	}
}

// Refresh fetches the live directory page and merges the listing into the
// cache. Unlike the public pipeline, a failed fetch surfaces as an error
// here: an operator asked for it and wants to know.
func (s *directoryService) Refresh(ctx context.Context, mallLink string) (int, error) {
	pageURL := strings.TrimRight(mallLink, "/") + "/" + s.directoryPath
	stores, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return 0, fmt.Errorf("refresh directory from %s: %w", pageURL, err)
	}
	if len(stores) == 0 {
		return 0, fmt.Errorf("refresh directory from %s: no tenant cards found", pageURL)
	}
	if err := s.repo.Populate(ctx, stores); err != nil {
		return 0, err
	}
	return len(stores), nil
}

func (s *directoryService) List(ctx context.Context) ([]domain.Store, error) {
	return s.repo.All(ctx)
}

func (s *directoryService) Purge(ctx context.Context) (int64, error) {
	return s.repo.Purge(ctx)
}
