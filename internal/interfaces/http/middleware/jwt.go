package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sharelist/backend/internal/domain/identity"
	"github.com/sharelist/backend/internal/infrastructure/auth"
	"github.com/sharelist/backend/internal/interfaces/http/dto"
)

// JWT context keys
const (
	IdentityKey   = "auth_identity"
	UserIDKey     = "auth_user_id"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AuthConfig holds configuration for the authentication middleware
type AuthConfig struct {
	// Tokens is required for token verification
	Tokens *auth.TokenService
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultAuthConfig returns the default authentication middleware configuration
func DefaultAuthConfig(tokens *auth.TokenService) AuthConfig {
	return AuthConfig{
		Tokens: tokens,
		SkipPaths: []string{
			"/create-user",
			"/health",
			"/ping",
		},
	}
}

// RequireAuth creates JWT authentication middleware with the default configuration
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return RequireAuthWithConfig(DefaultAuthConfig(tokens))
}

// RequireAuthWithConfig creates JWT authentication middleware with custom config
func RequireAuthWithConfig(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			handleAuthError(c, cfg, auth.ErrMissingToken, "Missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			handleAuthError(c, cfg, auth.ErrMissingToken, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			handleAuthError(c, cfg, auth.ErrMissingToken, "Missing token")
			return
		}

		claims, err := cfg.Tokens.Verify(tokenString)
		if err != nil {
			handleAuthError(c, cfg, err, "Token verification failed")
			return
		}

		ident, err := claims.Identity()
		if err != nil {
			handleAuthError(c, cfg, err, "Token carries no usable identity")
			return
		}

		c.Set(IdentityKey, ident)
		c.Set(UserIDKey, ident.UserID.String())

		if cfg.Logger != nil {
			cfg.Logger.Debug("Authentication successful",
				zap.String("user_id", ident.UserID.String()),
				zap.String("path", path),
			)
		}

		c.Next()
	}
}

// handleAuthError handles authentication failures
func handleAuthError(c *gin.Context, cfg AuthConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	errorCode := dto.ErrCodeTokenInvalid
	errorMessage := "Invalid token"

	switch err {
	case auth.ErrMissingToken:
		errorCode = dto.ErrCodeTokenMissing
		errorMessage = "Authentication required"
	case auth.ErrExpiredToken:
		errorCode = dto.ErrCodeTokenExpired
		errorMessage = "Token has expired"
	case auth.ErrTokenNotYetValid:
		errorMessage = "Token is not yet valid"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorCode, errorMessage))
}

// GetIdentity retrieves the authenticated identity from gin.Context
func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	if value, exists := c.Get(IdentityKey); exists {
		if ident, ok := value.(identity.Identity); ok {
			return ident, true
		}
	}
	return identity.Identity{}, false
}

// MustIdentity retrieves the authenticated identity or panics if not found
func MustIdentity(c *gin.Context) identity.Identity {
	ident, ok := GetIdentity(c)
	if !ok {
		panic("identity not found in context")
	}
	return ident
}
