package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	publicdomain "github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

type fakeAdminService struct {
	refreshed  int
	refreshErr error
	lastMall   string
	stores     []publicdomain.Store
	purged     int64
}

func (f *fakeAdminService) Refresh(_ context.Context, mallLink string) (int, error) {
	f.lastMall = mallLink
	if f.refreshErr != nil {
		return 0, f.refreshErr
	}
	return f.refreshed, nil
}

func (f *fakeAdminService) List(_ context.Context) ([]publicdomain.Store, error) {
	return f.stores, nil
}

func (f *fakeAdminService) Purge(_ context.Context) (int64, error) {
	return f.purged, nil
}

func newAdminRouter(service *fakeAdminService) chi.Router {
	handler := NewHandler(Config{
		Logger:      log.New(io.Discard, "", 0),
		Directory:   service,
		DefaultMall: "https://mall.example/",
	})
	router := chi.NewRouter()
	handler.Register(router)
	return router
}

func TestRefreshUsesDefaultMall(t *testing.T) {
	service := &fakeAdminService{refreshed: 12}
	router := newAdminRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/directory/refresh", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://mall.example/", service.lastMall)

	var payload refreshResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, 12, payload.Stores)
}

func TestRefreshAcceptsMallOverride(t *testing.T) {
	service := &fakeAdminService{refreshed: 3}
	router := newAdminRouter(service)

	body := strings.NewReader(`{"mall":"https://other-mall.example/"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/directory/refresh", body))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://other-mall.example/", service.lastMall)
}

func TestRefreshRejectsMalformedBody(t *testing.T) {
	router := newAdminRouter(&fakeAdminService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/directory/refresh", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRefreshReportsFetchFailure(t *testing.T) {
	service := &fakeAdminService{refreshErr: errors.New("directory page unreachable")}
	router := newAdminRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/directory/refresh", nil))

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestStoreListIncludesFetchTimestamps(t *testing.T) {
	fetched := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	service := &fakeAdminService{stores: []publicdomain.Store{
		{Name: "Starbucks Coffee", Hours: "9am-10pm", Location: "Street Level 1", FetchedAt: fetched},
	}}
	router := newAdminRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/stores", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload storeListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, 1, payload.Total)
	require.Len(t, payload.Stores, 1)
	assert.Equal(t, "Starbucks Coffee", payload.Stores[0].Name)
	assert.True(t, payload.Stores[0].FetchedAt.Equal(fetched))
}

func TestStoreListHonorsLimit(t *testing.T) {
	service := &fakeAdminService{stores: []publicdomain.Store{
		{Name: "Starbucks Coffee", Hours: "9am-10pm"},
		{Name: "Nike", Hours: "10am-8pm"},
		{Name: "Lego", Hours: "10am-9pm"},
	}}
	router := newAdminRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/stores?limit=2", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload storeListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, 2, payload.Total)
	require.Len(t, payload.Stores, 2)
	assert.Equal(t, "Starbucks Coffee", payload.Stores[0].Name)

	// Malformed limits fall back to the full listing.
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/directory/stores?limit=-1", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, 3, payload.Total)
}

func TestPurgeReportsRemovedCount(t *testing.T) {
	router := newAdminRouter(&fakeAdminService{purged: 42})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/directory/stores", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]int64
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, int64(42), payload["removed"])
}
