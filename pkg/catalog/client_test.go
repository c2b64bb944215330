package catalog

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewClient(server.URL, "console-key", testSecret)
}

func TestLogin_SignsBodyAndDecodesResult(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/auth/login", r.URL.Path)
		assert.Equal(t, "console-key", r.Header.Get("X-Console-Key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		mac := hmac.New(sha256.New, []byte(testSecret))
		mac.Write(body)
		assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), r.Header.Get("X-Signature"))

		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": {"token": "backend-token", "seller": {"_id": "s1", "email": "a@b.ae"}}
		}`))
	})

	result, err := client.Login(context.Background(), "a@b.ae", "secret")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", result.Token)
	assert.Equal(t, "s1", result.Seller.ID)
}

func TestDoRequest_BearerTokenForwarded(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer seller-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success": true, "data": {"_id": "p1"}}`))
	})

	product, err := client.GetProduct(context.Background(), "seller-token", "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
}

func TestDoRequest_ErrorEnvelope(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "code": "PRODUCT_NOT_FOUND", "message": "Product not found"}`))
	})

	_, err := client.GetProduct(context.Background(), "seller-token", "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "PRODUCT_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Product not found", apiErr.Message)
}

func TestDoRequest_SuccessFalseOn200(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "code": "UNAUTHORIZED", "message": "Token expired"}`))
	})

	err := client.Ping(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestListProducts_QueryParameters(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "iphone", r.URL.Query().Get("search"))
		w.Write([]byte(`{"success": true, "data": {"docs": [{"_id": "p1"}], "totalDocs": 1}}`))
	})

	list, err := client.ListProducts(context.Background(), "tok", 2, 50, "iphone")
	require.NoError(t, err)
	require.Len(t, list.Docs, 1)
	assert.Equal(t, 1, list.TotalDocs)
}
