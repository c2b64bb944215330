package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/telmart/console_api/internal/service"
	"github.com/telmart/console_api/internal/utils"
)

// JWTMiddleware authenticates console requests. On success the seller
// identity and the backend access token are placed in the gin context;
// handlers never see the raw JWT.
type JWTMiddleware struct {
	auth *service.AuthService
}

func NewJWTMiddleware(auth *service.AuthService) *JWTMiddleware {
	return &JWTMiddleware{auth: auth}
}

func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		session, err := m.auth.ResolveSession(c.Request.Context(), claims)
		if err != nil {
			utils.Error(c, 401, "SESSION_EXPIRED", "Session expired, please log in again")
			c.Abort()
			return
		}

		c.Set("session_id", session.SessionID)
		c.Set("seller_id", session.SellerID)
		c.Set("email", session.Email)
		c.Set("backend_token", session.BackendToken)
		c.Next()
	}
}

// bearerToken extracts the JWT from the Authorization header, falling
// back to the token query parameter. EventSource cannot set headers, so
// the SSE stream authenticates via query string.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return c.Query("token")
}
