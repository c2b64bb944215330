package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/telmart/console_api/internal/cache"
	"github.com/telmart/console_api/pkg/catalog"
)

// listFetchLimit is how many products are pulled from the backend per
// page while draining the listing. Search and paging run locally over
// the drained set, so the console can filter on fields the backend
// listing endpoint does not index.
const listFetchLimit = 500

// listFetchMaxPages bounds the backend drain so a runaway TotalPages
// value cannot turn one console request into an unbounded crawl.
const listFetchMaxPages = 40

// ProductService serves the catalog read side: product listings, detail
// views, status transitions and version history. All writes go straight
// through to the backend; nothing is persisted locally.
type ProductService struct {
	catalogClient  *catalog.Client
	referenceCache *cache.ReferenceCache
}

// NewProductService creates a new ProductService.
func NewProductService(catalogClient *catalog.Client, referenceCache *cache.ReferenceCache) *ProductService {
	return &ProductService{
		catalogClient:  catalogClient,
		referenceCache: referenceCache,
	}
}

// ProductPage is one page of a locally filtered product listing.
type ProductPage struct {
	Docs       []catalog.Product `json:"docs"`
	TotalDocs  int               `json:"totalDocs"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// List fetches the seller's products and applies search and paging
// locally. Search matches the specification name and the variant label,
// case-insensitive.
func (s *ProductService) List(ctx context.Context, token string, page, limit int, search string) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	docs, err := s.fetchAllProducts(ctx, token)
	if err != nil {
		return nil, err
	}
	if q := strings.TrimSpace(search); q != "" {
		docs = filterProducts(docs, q)
	}

	total := len(docs)
	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ProductPage{
		Docs:       docs[start:end],
		TotalDocs:  total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// fetchAllProducts drains the backend listing page by page until
// TotalPages is exhausted, so sellers with more products than one
// backend page still see the full set in search and paging.
func (s *ProductService) fetchAllProducts(ctx context.Context, token string) ([]catalog.Product, error) {
	first, err := s.catalogClient.ListProducts(ctx, token, 1, listFetchLimit, "")
	if err != nil {
		return nil, err
	}
	docs := first.Docs

	lastPage := first.TotalPages
	if lastPage > listFetchMaxPages {
		log.Warn().
			Int("total_pages", first.TotalPages).
			Int("fetched_pages", listFetchMaxPages).
			Msg("Product listing truncated at the backend page cap")
		lastPage = listFetchMaxPages
	}
	for page := 2; page <= lastPage; page++ {
		next, err := s.catalogClient.ListProducts(ctx, token, page, listFetchLimit, "")
		if err != nil {
			return nil, err
		}
		if len(next.Docs) == 0 {
			break
		}
		docs = append(docs, next.Docs...)
	}
	return docs, nil
}

// filterProducts keeps products whose specification name or sub-variant
// label contains the query, case-insensitive.
func filterProducts(docs []catalog.Product, query string) []catalog.Product {
	q := strings.ToLower(query)
	filtered := make([]catalog.Product, 0, len(docs))
	for _, p := range docs {
		if strings.Contains(strings.ToLower(p.SpecificationName), q) ||
			strings.Contains(strings.ToLower(p.SubSkuFamilyName), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Get returns a single product.
func (s *ProductService) Get(ctx context.Context, token, id string) (*catalog.Product, error) {
	return s.catalogClient.GetProduct(ctx, token, id)
}

// Verify moves a product into the verified state. The backend owns the
// transition rules; we only relay the outcome.
func (s *ProductService) Verify(ctx context.Context, token, id string) (*catalog.Product, error) {
	return s.catalogClient.VerifyProduct(ctx, token, id)
}

// Approve moves a verified product into the approved state.
func (s *ProductService) Approve(ctx context.Context, token, id string) (*catalog.Product, error) {
	return s.catalogClient.ApproveProduct(ctx, token, id)
}

// History returns the stored versions of a product.
func (s *ProductService) History(ctx context.Context, token, id string) ([]catalog.ProductVersion, error) {
	return s.catalogClient.ListProductHistory(ctx, token, id)
}

// Restore reverts a product to an earlier version.
func (s *ProductService) Restore(ctx context.Context, token, id string, version int) (*catalog.Product, error) {
	return s.catalogClient.RestoreProductVersion(ctx, token, id, version)
}

// SkuFamilies lists SKU families, served from the warmed Redis cache when
// possible. An unfiltered request hitting a warm cache never touches the
// backend.
func (s *ProductService) SkuFamilies(ctx context.Context, token, search string) ([]catalog.SkuFamily, error) {
	if strings.TrimSpace(search) == "" {
		families, err := s.referenceCache.GetSkuFamilies(ctx)
		if err == nil {
			return families, nil
		}
		if !cache.IsNil(err) {
			log.Warn().Err(err).Msg("Reference cache read failed - falling back to backend")
		}
	}
	return s.catalogClient.ListSkuFamilies(ctx, token, search)
}

// SubSkuFamilies lists sub-SKU families for a SKU family.
func (s *ProductService) SubSkuFamilies(ctx context.Context, token, search, skuFamilyID string) ([]catalog.SubSkuFamily, error) {
	return s.catalogClient.ListSubSkuFamilies(ctx, token, search, skuFamilyID)
}
