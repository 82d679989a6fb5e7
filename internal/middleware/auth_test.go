package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expensetracker/internal/logger"
	"expensetracker/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func testUser() *models.User {
	return &models.User{Base: models.Base{ID: "0190a6f2-7a1c-7000-8000-000000000001"}, Username: "alice", Email: "alice@example.com"}
}

func setupAuthRouter(jm *JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(jm))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   c.GetString(ContextUserID),
			"username": c.GetString(ContextUsername),
		})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := parseBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "expected error object, got %v", body)
	code, _ := errObj["code"].(string)
	return code
}

func TestGenerateAndParse(t *testing.T) {
	jm := NewJWTManager("secret", time.Hour)

	token, err := jm.Generate(testUser())
	require.NoError(t, err)

	claims, err := jm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, testUser().ID, claims.UserID)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret", time.Hour).Generate(testUser())
	require.NoError(t, err)

	_, err = NewJWTManager("other", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	jm := NewJWTManager("secret", time.Minute)
	jm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := jm.Generate(testUser())
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Minute).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsForeignIssuer(t *testing.T) {
	claims := &JWTClaims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	jm := NewJWTManager("secret", time.Hour)
	valid, err := jm.Generate(testUser())
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid_token", "Bearer " + valid, http.StatusOK},
		{"lowercase_scheme", "bearer " + valid, http.StatusOK},
		{"missing_header", "", http.StatusUnauthorized},
		{"wrong_scheme", "Basic " + valid, http.StatusUnauthorized},
		{"no_token", "Bearer ", http.StatusUnauthorized},
		{"garbage_token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	r := setupAuthRouter(jm)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(r, tt.header)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				body := parseBody(t, rec)
				assert.Equal(t, "alice", body["username"])
				assert.Equal(t, testUser().ID, body["userId"])
				return
			}
			assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
		})
	}
}
