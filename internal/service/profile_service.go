package service

import (
	"context"

	"github.com/telmart/console_api/pkg/catalog"
)

// ProfileService proxies the seller business profile. The backend owns
// the data; this layer only shapes requests.
type ProfileService struct {
	catalogClient *catalog.Client
}

// NewProfileService creates a new ProfileService.
func NewProfileService(catalogClient *catalog.Client) *ProfileService {
	return &ProfileService{catalogClient: catalogClient}
}

// Get returns the seller's business profile.
func (s *ProfileService) Get(ctx context.Context, token string) (*catalog.SellerProfile, error) {
	return s.catalogClient.GetSellerProfile(ctx, token)
}

// Update submits profile edits and returns the stored profile.
func (s *ProfileService) Update(ctx context.Context, token string, update *catalog.SellerProfileUpdate) (*catalog.SellerProfile, error) {
	return s.catalogClient.UpdateSellerProfile(ctx, token, update)
}
