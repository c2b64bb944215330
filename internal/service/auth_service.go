package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/telmart/console_api/internal/cache"
	"github.com/telmart/console_api/internal/models"
	"github.com/telmart/console_api/internal/repository"
	"github.com/telmart/console_api/internal/utils"
	"github.com/telmart/console_api/pkg/catalog"
)

// AuthService handles console login sessions. Credential checks and email
// verification are owned by the backend; this layer mints console tokens
// around the backend token and keeps it server-side.
type AuthService struct {
	catalogClient *catalog.Client
	sessions      *repository.SessionRepository
	sessionCache  *cache.SessionCache
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	catalogClient *catalog.Client,
	sessions *repository.SessionRepository,
	sessionCache *cache.SessionCache,
	accessTTL, refreshTTL time.Duration,
) *AuthService {
	return &AuthService{
		catalogClient: catalogClient,
		sessions:      sessions,
		sessionCache:  sessionCache,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// LoginResult is what a successful login hands to the client: a short
// lived access JWT, a one-shot refresh token, and the seller profile.
type LoginResult struct {
	AccessToken  string                `json:"accessToken"`
	RefreshToken string                `json:"refreshToken"`
	ExpiresIn    int64                 `json:"expiresIn"`
	Seller       catalog.SellerProfile `json:"seller"`
}

// Login authenticates against the backend and opens a console session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	backendResult, err := s.catalogClient.Login(ctx, email, password)
	if err != nil {
		if catalog.IsUnauthorized(err) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	refreshHash, err := bcrypt.GenerateFromPassword([]byte(refreshToken), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	session := &models.SellerSession{
		ID:          uuid.New().String(),
		SellerID:    backendResult.Seller.ID,
		Email:       backendResult.Seller.Email,
		RefreshHash: string(refreshHash),
		ExpiresAt:   time.Now().Add(s.refreshTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := s.sessionCache.Set(ctx, &cache.SessionData{
		SessionID:    session.ID,
		SellerID:     session.SellerID,
		Email:        session.Email,
		BackendToken: backendResult.Token,
	}); err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(session.ID, session.SellerID, session.Email, s.accessTTL)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("session_id", session.ID).
		Str("seller_id", session.SellerID).
		Msg("Seller logged in")

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
		Seller:       backendResult.Seller,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token and a
// rotated refresh token. The old refresh token is dead after this call.
func (s *AuthService) Refresh(ctx context.Context, sessionID, refreshToken string) (*LoginResult, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrSessionNotFound
		}
		return nil, err
	}
	if !session.Active(time.Now()) {
		return nil, utils.ErrSessionExpired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(session.RefreshHash), []byte(refreshToken)); err != nil {
		return nil, utils.ErrInvalidToken
	}

	// The backend token must still be cached; if Redis lost it, the
	// seller has to log in again since we cannot re-mint it ourselves.
	data, err := s.sessionCache.Get(ctx, session.ID)
	if err != nil {
		if cache.IsNil(err) {
			return nil, utils.ErrSessionExpired
		}
		return nil, err
	}

	newRefreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	newHash, err := bcrypt.GenerateFromPassword([]byte(newRefreshToken), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.UpdateRefreshHash(ctx, session.ID, string(newHash)); err != nil {
		return nil, err
	}

	// Re-set to slide the Redis TTL along with the rotation.
	if err := s.sessionCache.Set(ctx, data); err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(session.ID, session.SellerID, session.Email, s.accessTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Logout revokes a session and drops its cached backend token.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID, time.Now()); err != nil {
		return err
	}
	if err := s.sessionCache.Delete(ctx, sessionID); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to evict session from cache")
	}
	return nil
}

// ResolveSession maps validated JWT claims to the cached session data,
// including the backend token used for upstream calls.
func (s *AuthService) ResolveSession(ctx context.Context, claims *utils.SessionClaims) (*cache.SessionData, error) {
	data, err := s.sessionCache.Get(ctx, claims.SessionID)
	if err != nil {
		if cache.IsNil(err) {
			return nil, utils.ErrSessionExpired
		}
		return nil, err
	}
	return data, nil
}

// RequestEmailVerification proxies a verification mail request.
func (s *AuthService) RequestEmailVerification(ctx context.Context, email string) error {
	return s.catalogClient.RequestEmailVerification(ctx, email)
}

// ConfirmEmailVerification redeems an emailed verification token.
func (s *AuthService) ConfirmEmailVerification(ctx context.Context, token string) error {
	return s.catalogClient.ConfirmEmailVerification(ctx, token)
}
