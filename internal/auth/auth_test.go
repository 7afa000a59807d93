package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cadet-corps-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *Service {
	return NewService(&config.Config{JWTSecret: "test-secret"})
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := testService()

	token, err := svc.IssueToken("sub-123", "casey@example.com", "Casey Nguyen", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sub-123", claims.Subject)
	assert.Equal(t, "casey@example.com", claims.Email)
	assert.Equal(t, "Casey Nguyen", claims.DisplayName)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testService()

	token, err := svc.IssueToken("sub-123", "", "", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testService().IssueToken("sub-123", "", "", time.Hour)
	require.NoError(t, err)

	other := NewService(&config.Config{JWTSecret: "different-secret"})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := testService().ValidateToken("not.a.token")
	assert.Error(t, err)
}

func setupAuthRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := NewMiddleware(svc)
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString("subject")})
	})
	return router
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	svc := testService()
	router := setupAuthRouter(svc)

	token, err := svc.IssueToken("sub-789", "riley@example.com", "Riley Park", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "sub-789")
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	router := setupAuthRouter(testService())

	req := httptest.NewRequest("GET", "/protected", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthRejectsMalformedHeader(t *testing.T) {
	router := setupAuthRouter(testService())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
