package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sharelist/backend/internal/domain/identity"
	"github.com/sharelist/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrMissingToken     = errors.New("no token provided")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrMissingUserID    = errors.New("missing user id in claims")
)

// Claims represents the payload of a bearer token. The subject user ID is
// carried in the legacy "id" claim with the registered "sub" claim as
// fallback.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id,omitempty"`
}

// userID returns the subject user ID claim, whichever field carries it
func (c *Claims) userID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

// Identity converts verified claims into a request identity
func (c *Claims) Identity() (identity.Identity, error) {
	raw := c.userID()
	if raw == "" {
		return identity.Identity{}, ErrMissingUserID
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return identity.Identity{}, ErrInvalidClaims
	}

	claims := map[string]any{"id": raw}
	if c.Subject != "" {
		claims["sub"] = c.Subject
	}
	if c.Issuer != "" {
		claims["iss"] = c.Issuer
	}
	if c.ExpiresAt != nil {
		claims["exp"] = c.ExpiresAt.Unix()
	}
	if c.IssuedAt != nil {
		claims["iat"] = c.IssuedAt.Unix()
	}

	return identity.Identity{UserID: userID, Claims: claims}, nil
}

// TokenService verifies and issues HS256 bearer tokens. Verification is a
// pure function of token, secret, and current time. Token issuance is the
// contract with the external credential-issuance component; this service
// exposes it so that component (and tests) mint tokens this verifier
// accepts.
type TokenService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewTokenService creates a new token service
func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.Expiration,
		issuer:     cfg.Issuer,
	}
}

// Issue generates a signed token for the given user
func (s *TokenService) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify validates a token and returns its claims
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.userID() == "" {
		return nil, ErrMissingUserID
	}

	return claims, nil
}
