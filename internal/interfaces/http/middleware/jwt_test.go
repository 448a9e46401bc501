package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharelist/backend/internal/infrastructure/auth"
	"github.com/sharelist/backend/internal/infrastructure/config"
	"github.com/sharelist/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret-key-at-least-32-chars"

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService(config.JWTConfig{
		Secret:     testSecret,
		Expiration: time.Hour,
		Issuer:     "test-issuer",
	})
}

func newAuthRouter(tokens *auth.TokenService) *gin.Engine {
	router := gin.New()
	router.Use(RequireAuth(tokens))
	router.GET("/test", func(c *gin.Context) {
		ident := MustIdentity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": ident.UserID.String()})
	})
	router.POST("/create-user", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"status": "ok"})
	})
	return router
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := newTestTokenService()
	userID := uuid.New()
	token, _, err := tokens.Issue(userID)
	require.NoError(t, err)

	router := newAuthRouter(tokens)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router := newAuthRouter(newTestTokenService())
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, dto.ErrCodeTokenMissing, errorCode(t, rec.Body.Bytes()))
}

func TestRequireAuth_NotBearer(t *testing.T) {
	router := newAuthRouter(newTestTokenService())
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, dto.ErrCodeTokenMissing, errorCode(t, rec.Body.Bytes()))
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
		},
		UserID: uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	router := newAuthRouter(newTestTokenService())
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	// Expired must never be reported as missing
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, dto.ErrCodeTokenExpired, errorCode(t, rec.Body.Bytes()))
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	router := newAuthRouter(newTestTokenService())
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, dto.ErrCodeTokenInvalid, errorCode(t, rec.Body.Bytes()))
}

func TestRequireAuth_SkipPaths(t *testing.T) {
	router := newAuthRouter(newTestTokenService())
	req := httptest.NewRequest(http.MethodPost, "/create-user", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetIdentity_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetIdentity(c)
	assert.False(t, ok)
}
