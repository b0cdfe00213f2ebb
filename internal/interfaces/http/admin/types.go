package admin

import (
	"time"

	publicdomain "github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

type storeEntryResponse struct {
	Name      string    `json:"name"`
	Hours     string    `json:"hours"`
	Location  string    `json:"location,omitempty"`
	LogoURL   string    `json:"logoURL,omitempty"`
	FetchedAt time.Time `json:"fetchedAt"`
}

type storeListResponse struct {
	Total  int                  `json:"total"`
	Stores []storeEntryResponse `json:"stores"`
}

func buildStoreListResponse(stores []publicdomain.Store) storeListResponse {
	entries := make([]storeEntryResponse, 0, len(stores))
	for _, store := range stores {
		entries = append(entries, storeEntryResponse{
			Name:      store.Name,
			Hours:     store.Hours,
			Location:  store.Location,
			LogoURL:   store.LogoURL,
			FetchedAt: store.FetchedAt,
		})
	}
	return storeListResponse{Total: len(entries), Stores: entries}
}
