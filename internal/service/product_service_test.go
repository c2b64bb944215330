package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telmart/console_api/pkg/catalog"
)

func newListBackend(t *testing.T, docs string) *catalog.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"success": true, "data": {"docs": %s, "totalDocs": 3}}`, docs)
	}))
	t.Cleanup(server.Close)
	return catalog.NewClient(server.URL, "key", "secret")
}

const listDocs = `[
	{"_id": "p1", "specificationName": "iPhone 13 Pro", "subSkuFamilyName": "iPhone 13 Pro Graphite"},
	{"_id": "p2", "specificationName": "Galaxy S22", "subSkuFamilyName": "Galaxy S22 Green"},
	{"_id": "p3", "specificationName": "iPhone 14", "subSkuFamilyName": "iPhone 14 Blue"}
]`

func TestProductList_SearchFiltersLocally(t *testing.T) {
	svc := NewProductService(newListBackend(t, listDocs), nil)

	page, err := svc.List(context.Background(), "tok", 1, 20, "iphone")
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalDocs)
	require.Len(t, page.Docs, 2)
	assert.Equal(t, "p1", page.Docs[0].ID)
	assert.Equal(t, "p3", page.Docs[1].ID)
}

func TestProductList_SearchMatchesVariantLabel(t *testing.T) {
	svc := NewProductService(newListBackend(t, listDocs), nil)

	page, err := svc.List(context.Background(), "tok", 1, 20, "green")
	require.NoError(t, err)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, "p2", page.Docs[0].ID)
}

func TestProductList_Pagination(t *testing.T) {
	svc := NewProductService(newListBackend(t, listDocs), nil)

	page, err := svc.List(context.Background(), "tok", 2, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalDocs)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, "p3", page.Docs[0].ID)
}

func TestProductList_PageBeyondEnd(t *testing.T) {
	svc := NewProductService(newListBackend(t, listDocs), nil)

	page, err := svc.List(context.Background(), "tok", 9, 20, "")
	require.NoError(t, err)
	assert.Empty(t, page.Docs)
	assert.Equal(t, 3, page.TotalDocs)
}

func TestProductList_NoMatchesIsEmptyNotError(t *testing.T) {
	svc := NewProductService(newListBackend(t, listDocs), nil)

	page, err := svc.List(context.Background(), "tok", 1, 20, "pixel")
	require.NoError(t, err)
	assert.Empty(t, page.Docs)
	assert.Equal(t, 0, page.TotalDocs)
	assert.Equal(t, 1, page.TotalPages)
}

func TestProductList_DrainsAllBackendPages(t *testing.T) {
	pages := map[string]string{
		"1": `{"success": true, "data": {"docs": [
			{"_id": "p1", "specificationName": "iPhone 13 Pro"},
			{"_id": "p2", "specificationName": "Galaxy S22"}
		], "totalDocs": 3, "page": 1, "totalPages": 2}}`,
		"2": `{"success": true, "data": {"docs": [
			{"_id": "p3", "specificationName": "iPhone 14"}
		], "totalDocs": 3, "page": 2, "totalPages": 2}}`,
	}
	requested := make([]string, 0, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		requested = append(requested, page)
		body, ok := pages[page]
		require.True(t, ok, "unexpected page %s", page)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	svc := NewProductService(catalog.NewClient(server.URL, "key", "secret"), nil)

	page, err := svc.List(context.Background(), "tok", 1, 20, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, requested)
	assert.Equal(t, 3, page.TotalDocs)
	require.Len(t, page.Docs, 3)
	assert.Equal(t, "p3", page.Docs[2].ID)
}

func TestProductList_SearchSeesLaterBackendPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, `{"success": true, "data": {"docs": [
				{"_id": "p1", "specificationName": "Galaxy S22"}
			], "totalDocs": 2, "page": 1, "totalPages": 2}}`)
			return
		}
		fmt.Fprint(w, `{"success": true, "data": {"docs": [
			{"_id": "p2", "specificationName": "iPhone 14"}
		], "totalDocs": 2, "page": 2, "totalPages": 2}}`)
	}))
	t.Cleanup(server.Close)
	svc := NewProductService(catalog.NewClient(server.URL, "key", "secret"), nil)

	page, err := svc.List(context.Background(), "tok", 1, 20, "iphone")
	require.NoError(t, err)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, "p2", page.Docs[0].ID)
}

func TestProductList_InvalidPagingDefaults(t *testing.T) {
	svc := NewProductService(newListBackend(t, listDocs), nil)

	page, err := svc.List(context.Background(), "tok", 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
}
