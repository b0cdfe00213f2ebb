package application

import (
	"context"

	"github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

// DirectoryRepository is the admin-side port to the durable directory
// cache. Admin use-cases see the whole cache, not query-scoped views.
type DirectoryRepository interface {
	Populate(ctx context.Context, stores []domain.Store) error
	All(ctx context.Context) ([]domain.Store, error)
	Purge(ctx context.Context) (int64, error)
}

// DirectoryFetcher retrieves the live tenant listing for a directory page.
type DirectoryFetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]domain.Store, error)
}

// DirectoryService describes operator use-cases for managing the cached
// directory: forcing a refetch, inspecting the cache, and purging it.
type DirectoryService interface {
	Refresh(ctx context.Context, mallLink string) (int, error)
	List(ctx context.Context) ([]domain.Store, error)
	Purge(ctx context.Context) (int64, error)
}
