package catalog

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a minimal HTTP client for the remote catalog service. All
// business data of record lives behind this API; the console only reads
// it and proposes changes.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	consoleKey    string
	consoleSecret string
	debug         bool
}

// NewClient constructs a catalog client with sane defaults. consoleKey
// identifies this console deployment to the backend; consoleSecret is
// the shared HMAC secret used to sign request bodies.
func NewClient(baseURL, consoleKey, consoleSecret string) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		baseURL:       baseURL,
		consoleKey:    consoleKey,
		consoleSecret: consoleSecret,
		debug:         os.Getenv("ENV") == "development",
	}
}

// sign generates an HMAC-SHA256 hex digest over the request body.
func (c *Client) sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(c.consoleSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Ping checks backend reachability. Used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	return c.doRequest(ctx, http.MethodGet, "/v1/status", "", nil, &resp)
}

// Login authenticates a seller against the backend. Token issuance and
// verification semantics are owned by the backend.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	req := loginRequest{Email: email, Password: password}
	var result LoginResult
	if err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RequestEmailVerification asks the backend to (re)send a verification
// email. Email delivery itself is the backend's concern.
func (c *Client) RequestEmailVerification(ctx context.Context, email string) error {
	req := emailVerificationRequest{Email: email}
	return c.doRequest(ctx, http.MethodPost, "/v1/auth/email/request", "", req, nil)
}

// ConfirmEmailVerification redeems an emailed verification token.
func (c *Client) ConfirmEmailVerification(ctx context.Context, token string) error {
	req := emailConfirmRequest{Token: token}
	return c.doRequest(ctx, http.MethodPost, "/v1/auth/email/confirm", "", req, nil)
}

// GetSellerProfile fetches the authenticated seller's business profile.
func (c *Client) GetSellerProfile(ctx context.Context, token string) (*SellerProfile, error) {
	var profile SellerProfile
	if err := c.doRequest(ctx, http.MethodGet, "/v1/sellers/me", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateSellerProfile proposes a business profile update.
func (c *Client) UpdateSellerProfile(ctx context.Context, token string, update *SellerProfileUpdate) (*SellerProfile, error) {
	var profile SellerProfile
	if err := c.doRequest(ctx, http.MethodPut, "/v1/sellers/me", token, update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListSkuFamilies returns SKU families matching the optional search term.
func (c *Client) ListSkuFamilies(ctx context.Context, token, search string) ([]SkuFamily, error) {
	path := "/v1/sku-families"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var families []SkuFamily
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &families); err != nil {
		return nil, err
	}
	return families, nil
}

// ListSubSkuFamilies returns sub-SKU families scoped to a SKU family.
// The returned label is the compound raw string the console parses for
// color/SIM type/country.
func (c *Client) ListSubSkuFamilies(ctx context.Context, token, search, skuFamilyID string) ([]SubSkuFamily, error) {
	path := "/v1/sku-families/" + url.PathEscape(skuFamilyID) + "/sub-sku-families"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var options []SubSkuFamily
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, token, id string) (*Product, error) {
	var product Product
	if err := c.doRequest(ctx, http.MethodGet, "/v1/products/"+url.PathEscape(id), token, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns the seller's products. The backend paginates;
// docs within a page are filtered client-side by the console.
func (c *Client) ListProducts(ctx context.Context, token string, page, limit int, search string) (*ProductList, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if search != "" {
		q.Set("search", search)
	}
	var list ProductList
	if err := c.doRequest(ctx, http.MethodGet, "/v1/products?"+q.Encode(), token, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateProduct submits a new product proposal.
func (c *Client) CreateProduct(ctx context.Context, token string, payload *ProductPayload) (*Product, error) {
	var product Product
	if err := c.doRequest(ctx, http.MethodPost, "/v1/products", token, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct submits a product update proposal.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, payload *ProductPayload) (*Product, error) {
	var product Product
	if err := c.doRequest(ctx, http.MethodPut, "/v1/products/"+url.PathEscape(id), token, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// VerifyProduct requests the verification state transition. The backend
// enforces permissioning (canVerify).
func (c *Client) VerifyProduct(ctx context.Context, token, id string) (*Product, error) {
	var product Product
	if err := c.doRequest(ctx, http.MethodPost, "/v1/products/"+url.PathEscape(id)+"/verify", token, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ApproveProduct requests the approval state transition.
func (c *Client) ApproveProduct(ctx context.Context, token, id string) (*Product, error) {
	var product Product
	if err := c.doRequest(ctx, http.MethodPost, "/v1/products/"+url.PathEscape(id)+"/approve", token, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProductHistory returns the stored versions of a product, newest first.
func (c *Client) ListProductHistory(ctx context.Context, token, id string) ([]ProductVersion, error) {
	var versions []ProductVersion
	if err := c.doRequest(ctx, http.MethodGet, "/v1/products/"+url.PathEscape(id)+"/history", token, nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// RestoreProductVersion asks the backend to restore a historical version.
func (c *Client) RestoreProductVersion(ctx context.Context, token, id string, version int) (*Product, error) {
	path := fmt.Sprintf("/v1/products/%s/history/%d/restore", url.PathEscape(id), version)
	var product Product
	if err := c.doRequest(ctx, http.MethodPost, path, token, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

// doRequest performs an HTTP request against the catalog API with JSON
// payloads, signs the body, and decodes the enveloped response into result.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body any, result any) error {
	var payload []byte
	var err error
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	// Debug logging for development
	if c.debug {
		ev := log.Debug().Str("method", method).Str("endpoint", c.baseURL+path)
		if len(payload) > 0 {
			ev = ev.RawJSON("request", payload)
		}
		ev.Msg("[CATALOG] Outgoing request")
	}

	var reader io.Reader
	if len(payload) > 0 {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Console-Key", c.consoleKey)
	req.Header.Set("X-Signature", c.sign(payload))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("endpoint", path).
			Int("status_code", resp.StatusCode).
			RawJSON("response", respBody).
			Msg("[CATALOG] Incoming response")
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{Status: resp.StatusCode, Code: env.Code, Message: env.Message}
	}
	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
