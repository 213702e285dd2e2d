package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"store-admin/libs"
	"store-admin/models"
	"store-admin/repositories"
	"store-admin/services"
	"store-admin/storage"
	"store-admin/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authState(role string) models.AuthState {
	token := utils.GenerateToken("someone@gmail.com", role)
	return models.AuthState{
		IsAuthenticated: true,
		Token:           &token,
		User:            &models.AuthUser{Email: "someone@gmail.com", Role: role},
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name  string
		state models.AuthState
		roles []string
		want  Decision
	}{
		{"anonymous always goes to login", models.AnonymousState(), nil, DecisionLogin},
		{"anonymous even for admin routes", models.AnonymousState(), []string{models.RoleAdmin}, DecisionLogin},
		{"user allowed by default set", authState(models.RoleUser), nil, DecisionAllow},
		{"admin allowed by default set", authState(models.RoleAdmin), nil, DecisionAllow},
		{"user blocked from admin routes", authState(models.RoleUser), []string{models.RoleAdmin}, DecisionUnauthorized},
		{"admin allowed on mixed set", authState(models.RoleAdmin), []string{models.RoleAdmin, models.RoleUser}, DecisionAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.state, tt.roles))
		})
	}
}

func guardedRouter(t *testing.T, roles ...string) (*gin.Engine, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	auth := services.NewAuthService(
		repositories.NewUserRepository(store),
		repositories.NewSessionRepository(store),
		nil,
		libs.NewNopLogger(),
		"admin@gmail.com", "admin123",
	)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("session_id", "sid")
		c.Next()
	})
	router.GET("/protected", RequireAuth(auth, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("user_role")})
	})
	return router, auth
}

func TestRequireAuth_AnonymousRedirectsToLogin(t *testing.T) {
	router, _ := guardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/login", resp.Redirect)
	assert.Equal(t, "/protected", resp.From)
}

func TestRequireAuth_WrongRoleRedirectsToUnauthorized(t *testing.T) {
	router, auth := guardedRouter(t, models.RoleAdmin)

	require.NoError(t, auth.Register("user@gmail.com", "abc"))
	_, err := auth.Login("sid", "user@gmail.com", "abc")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/unauthorized", resp.Redirect)
}

func TestRequireAuth_AllowsMatchingRole(t *testing.T) {
	router, auth := guardedRouter(t, models.RoleAdmin, models.RoleUser)

	_, err := auth.Login("sid", "admin@gmail.com", "admin123")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.RoleAdmin)
}

func TestRequireAuth_BearerTokenMustMatchSession(t *testing.T) {
	router, auth := guardedRouter(t)

	state, err := auth.Login("sid", "admin@gmail.com", "admin123")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"matching token", "Bearer " + *state.Token, http.StatusOK},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer !!!not-base64!!!", http.StatusUnauthorized},
		{"token for another identity", "Bearer " + utils.GenerateToken("other@gmail.com", models.RoleUser), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.header)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
