package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosystembolaget_api/internal/systembolaget/business/models"
	"gosystembolaget_api/internal/systembolaget/business/models/dto/request"
	"gosystembolaget_api/internal/systembolaget/business/models/dto/response"
	"gosystembolaget_api/internal/systembolaget/business/services/get"
	"gosystembolaget_api/internal/systembolaget/business/services/reconcile"
	"gosystembolaget_api/internal/systembolaget/business/services/update"
)

type fakeProductLister struct {
	filter   *request.ProductFilter
	products []models.Product
	err      error
}

func (f *fakeProductLister) SelectFiltered(_ context.Context, filter *request.ProductFilter) ([]models.Product, error) {
	f.filter = filter
	return f.products, f.err
}

type fakeStoreLister struct {
	sites []models.Site
	err   error
}

func (f *fakeStoreLister) SelectStores(context.Context) ([]models.Site, error) {
	return f.sites, f.err
}

func TestGetTopHandler(t *testing.T) {
	lister := &fakeProductLister{products: []models.Product{
		{ProductID: "1", ProductNameBold: "Röd Etikett", Apk: 1.2},
	}}
	handler := NewProductHandler(lister, io.Discard)

	rec := httptest.NewRecorder()
	handler.GetTopHandler(rec, httptest.NewRequest(http.MethodGet, "/top?max_volume=1000&count=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Röd Etikett", got[0].ProductNameBold)

	require.NotNil(t, lister.filter)
	assert.Equal(t, 1000.0, lister.filter.MaxVolume)
	assert.Equal(t, 5, lister.filter.Count)
}

func TestGetTopHandlerRejectsBadQuery(t *testing.T) {
	handler := NewProductHandler(&fakeProductLister{}, io.Discard)

	cases := map[string]string{
		"missing count":      "/top?max_volume=1000",
		"malformed volume":   "/top?max_volume=abc&count=5",
		"non-positive count": "/top?max_volume=1000&count=0",
	}
	for name, target := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.GetTopHandler(rec, httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetTopHandlerStorageError(t *testing.T) {
	handler := NewProductHandler(&fakeProductLister{err: errors.New("connection reset")}, io.Discard)

	rec := httptest.NewRecorder()
	handler.GetTopHandler(rec, httptest.NewRequest(http.MethodGet, "/top?max_volume=1000&count=5", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestGetTopHandlerMethodNotAllowed(t *testing.T) {
	handler := NewProductHandler(&fakeProductLister{}, io.Discard)

	rec := httptest.NewRecorder()
	handler.GetTopHandler(rec, httptest.NewRequest(http.MethodPost, "/top?max_volume=1000&count=5", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGetSiteNamesHandlerDropsUnnamedSites(t *testing.T) {
	handler := NewSiteHandler(&fakeStoreLister{sites: []models.Site{
		{SiteID: "1234", Name: "Stockholm City"},
		{SiteID: "5678", Name: ""},
	}}, io.Discard)

	rec := httptest.NewRecorder()
	handler.GetSiteNamesHandler(rec, httptest.NewRequest(http.MethodGet, "/site_names", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []response.SiteName
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "1234", got[0].SiteID)
	assert.Equal(t, "Stockholm City", got[0].SiteName)
}

func TestGetSiteNamesHandlerStorageError(t *testing.T) {
	handler := NewSiteHandler(&fakeStoreLister{err: errors.New("no such table")}, io.Discard)

	rec := httptest.NewRecorder()
	handler.GetSiteNamesHandler(rec, httptest.NewRequest(http.MethodGet, "/site_names", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type fakeFetcher struct {
	snapshot *get.Snapshot
	err      error
}

func (f *fakeFetcher) FetchAll(context.Context) (*get.Snapshot, error) {
	return f.snapshot, f.err
}

type nopStore struct{}

func (nopStore) ReplaceAll(context.Context, []models.Product) error { return nil }

type nopSiteStore struct{}

func (nopSiteStore) ReplaceAll(context.Context, []models.Site) error { return nil }

type nopJunctionStore struct{}

func (nopJunctionStore) Rebuild(context.Context, []models.SiteAvailability) (int, int, error) {
	return 0, 0, nil
}

func newRefreshService(fetcher update.CatalogFetcher) *update.RefreshService {
	return update.NewRefreshService(
		fetcher,
		reconcile.NewReconciler(io.Discard),
		nopStore{},
		nopSiteStore{},
		nopJunctionStore{},
		io.Discard,
	)
}

func TestTriggerHandler(t *testing.T) {
	service := newRefreshService(&fakeFetcher{snapshot: &get.Snapshot{}})
	handler := NewRefreshHandler(service, io.Discard)

	rec := httptest.NewRecorder()
	handler.TriggerHandler(rec, httptest.NewRequest(http.MethodPost, "/refresh", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CycleID string `json:"cycle_id"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.CycleID)
	assert.Empty(t, resp.Error)
}

func TestTriggerHandlerReportsUpstreamFailure(t *testing.T) {
	service := newRefreshService(&fakeFetcher{err: errors.New("unexpected status code: 503 Service Unavailable")})
	handler := NewRefreshHandler(service, io.Discard)

	rec := httptest.NewRecorder()
	handler.TriggerHandler(rec, httptest.NewRequest(http.MethodPost, "/refresh", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "unexpected status code")
}

func TestTriggerHandlerMethodNotAllowed(t *testing.T) {
	handler := NewRefreshHandler(newRefreshService(&fakeFetcher{snapshot: &get.Snapshot{}}), io.Discard)

	rec := httptest.NewRecorder()
	handler.TriggerHandler(rec, httptest.NewRequest(http.MethodGet, "/refresh", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	service := newRefreshService(&fakeFetcher{snapshot: &get.Snapshot{}})
	service.RunCycle(context.Background())
	handler := NewRefreshHandler(service, io.Discard)

	rec := httptest.NewRecorder()
	handler.HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(1), resp["cycles_run"])
}
