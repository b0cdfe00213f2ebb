package public

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	publicapp "github.com/halemalu/mall-directory-services/api/internal/public/application"
	publicdomain "github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

type fakeDirectoryService struct {
	stores    []publicdomain.Store
	selection publicapp.FloorSelection
	support   publicapp.LanguageSupport
	lastMall  string
}

func (f *fakeDirectoryService) Find(_ context.Context, _, mallLink string) ([]publicdomain.Store, error) {
	f.lastMall = mallLink
	return f.stores, nil
}

func (f *fakeDirectoryService) Availability(_ context.Context, _, mallLink string, at publicdomain.ClockTime) ([]publicapp.StoreAvailability, error) {
	f.lastMall = mallLink
	results := make([]publicapp.StoreAvailability, 0, len(f.stores))
	for _, store := range f.stores {
		hours, err := publicdomain.ParseHours(store.Hours)
		if err != nil {
			results = append(results, publicapp.StoreAvailability{Store: store})
			continue
		}
		availability := publicdomain.ResolveAvailability(hours, at)
		results = append(results, publicapp.StoreAvailability{Store: store, Availability: &availability})
	}
	return results, nil
}

func (f *fakeDirectoryService) ByFloor(_ context.Context, _, mallLink, _ string) (publicapp.FloorSelection, error) {
	f.lastMall = mallLink
	return f.selection, nil
}

func (f *fakeDirectoryService) LanguageSupport(_ context.Context, _, mallLink string) (publicapp.LanguageSupport, error) {
	f.lastMall = mallLink
	return f.support, nil
}

func newRouter(service publicapp.DirectoryQueryService) chi.Router {
	handler := NewHandler(Config{
		Logger:      log.New(io.Discard, "", 0),
		Directory:   service,
		Location:    time.UTC,
		DefaultMall: "https://mall.example/",
	})
	router := chi.NewRouter()
	handler.Register(router)
	return router
}

func TestStoreLookupEndpoint(t *testing.T) {
	service := &fakeDirectoryService{stores: []publicdomain.Store{
		{Name: "Starbucks Coffee", Hours: "9am-10pm", Location: "Street Level 1"},
	}}
	router := newRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/stores?q=starbucks", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Found  bool `json:"found"`
		Total  int  `json:"total"`
		Stores []struct {
			Name           string `json:"name"`
			SpokenLocation string `json:"spokenLocation"`
		} `json:"stores"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	assert.True(t, payload.Found)
	assert.Equal(t, 1, payload.Total)
	require.Len(t, payload.Stores, 1)
	assert.Equal(t, "Starbucks Coffee", payload.Stores[0].Name)
	assert.Equal(t, "Street Level one", payload.Stores[0].SpokenLocation)
	assert.Equal(t, "https://mall.example/", service.lastMall)
}

func TestStoreLookupNotFoundSentinel(t *testing.T) {
	router := newRouter(&fakeDirectoryService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/stores?q=zzz", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload storeListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.False(t, payload.Found)
	assert.Empty(t, payload.Stores)
}

func TestStoreLookupRequiresQuery(t *testing.T) {
	router := newRouter(&fakeDirectoryService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/stores", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAvailabilityEndpointWithClockOverride(t *testing.T) {
	service := &fakeDirectoryService{stores: []publicdomain.Store{
		{Name: "Starbucks Coffee", Hours: "9am-9pm", Location: "Street Level 1"},
	}}
	router := newRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/stores/availability?q=starbucks&at=20:30", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		At      string `json:"at"`
		Entries []struct {
			Status         string `json:"status"`
			Label          string `json:"label"`
			MinutesToClose int    `json:"minutesToClose"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	assert.Equal(t, "20:30", payload.At)
	require.Len(t, payload.Entries, 1)
	assert.Equal(t, "closing_soon", payload.Entries[0].Status)
	assert.Equal(t, 30, payload.Entries[0].MinutesToClose)
	assert.Equal(t, "open, closing in 30 minutes", payload.Entries[0].Label)
}

func TestAvailabilityEndpointUnknownHours(t *testing.T) {
	service := &fakeDirectoryService{stores: []publicdomain.Store{
		{Name: "Pop-up Stand", Hours: "varies by season"},
	}}
	router := newRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/stores/availability?q=pop&at=12:00", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload availabilityListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	require.Len(t, payload.Entries, 1)
	assert.Equal(t, "unknown", payload.Entries[0].Status)
}

func TestAvailabilityEndpointRejectsBadClock(t *testing.T) {
	router := newRouter(&fakeDirectoryService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/stores/availability?q=nike&at=25:99", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestFloorEndpointFallback(t *testing.T) {
	service := &fakeDirectoryService{selection: publicapp.FloorSelection{
		Stores:   []publicdomain.Store{{Name: "Starbucks Coffee", Hours: "9am-10pm", Location: "Street Level 1"}},
		Fallback: true,
	}}
	router := newRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/stores/floor?q=starbucks&floor=fifth+floor", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload floorListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.True(t, payload.Fallback)
	assert.Equal(t, 1, payload.Total)
}

func TestLanguageEndpoint(t *testing.T) {
	service := &fakeDirectoryService{support: publicapp.LanguageSupport{
		Supported: true,
		URL:       "https://mall.example/ja/directory/",
	}}
	router := newRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/language?lang=ja", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload languageResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.True(t, payload.Supported)
	assert.Equal(t, "https://mall.example/ja/directory/", payload.URL)
}

func TestLanguageEndpointRejectsBadCode(t *testing.T) {
	router := newRouter(&fakeDirectoryService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/language?lang=japanese", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
