package scraper

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directoryPage = `<!DOCTYPE html>
<html><body>
<div class="directory-listing">
  <div class="directory-tenant-card">
    <img src="/logos/starbucks.png" alt="Starbucks">
    <div class="tenant-info-container">
      <div class="tenant-info-row">Starbucks Coffee</div>
      <div class="tenant-hours-container">9am-10pm</div>
      <div class="tenant-location-container">Street Level 1, near Centerstage</div>
    </div>
  </div>
  <div class="directory-tenant-card">
    <img src="/logos/nike.png" alt="Nike">
    <div class="tenant-info-container">
      <div class="tenant-info-row">Nike</div>
      <div class="tenant-hours-container">10:30am-8:30pm</div>
      <div class="tenant-location-container">Level 2, Mauka Wing</div>
    </div>
  </div>
  <div class="directory-tenant-card">
    <div class="tenant-info-container">
      <div class="tenant-info-row">Coming Soon</div>
      <div class="tenant-hours-container"></div>
      <div class="tenant-location-container">Level 4</div>
    </div>
  </div>
</div>
</body></html>`

func newFetcher() *TenantFetcher {
	return NewTenantFetcher(log.New(io.Discard, "", 0), DefaultSelectors(), "", 0)
}

func TestFetchExtractsTenantCards(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(directoryPage))
	}))
	defer server.Close()

	stores, err := newFetcher().Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	// The card without hours is dropped.
	require.Len(t, stores, 2)

	assert.Equal(t, "Starbucks Coffee", stores[0].Name)
	assert.Equal(t, "9am-10pm", stores[0].Hours)
	assert.Equal(t, "Street Level 1, near Centerstage", stores[0].Location)
	assert.Equal(t, "/logos/starbucks.png", stores[0].LogoURL)
	assert.False(t, stores[0].FetchedAt.IsZero())

	assert.Equal(t, "Nike", stores[1].Name)
	assert.Equal(t, "10:30am-8:30pm", stores[1].Hours)
}

func TestFetchEmptyDirectory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>No tenants.</p></body></html>"))
	}))
	defer server.Close()

	stores, err := newFetcher().Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newFetcher().Fetch(context.Background(), server.URL)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.Status)
}

func TestFetchUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newFetcher().Fetch(context.Background(), server.URL)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestFetchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newFetcher().Fetch(ctx, "http://127.0.0.1:0/")

	assert.ErrorIs(t, err, context.Canceled)
}
