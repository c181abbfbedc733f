package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devconnector/backend/internal/api"
	"github.com/devconnector/backend/internal/middleware"
	"github.com/devconnector/backend/internal/models"
	"github.com/devconnector/backend/internal/service"
	"github.com/devconnector/backend/internal/testhelpers"
)

// TestAccountLifecycle runs the full register -> login -> profile -> delete
// flow against a real PostgreSQL instance.
func TestAccountLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDatabase(t)

	logger := zap.NewNop()
	authService := service.NewAuthService(db, "integration-secret", logger)
	profileService := service.NewProfileService(db, logger)

	router := gin.New()
	api.RegisterRoutes(router, authService, profileService, logger)

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set(middleware.TokenHeader, token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Register
	w := do("POST", "/api/auth/register", "", `{
		"name": "Integration User",
		"email": "integration@example.com",
		"password": "password123"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Login
	w = do("POST", "/api/auth/login", "", `{
		"email": "integration@example.com",
		"password": "password123"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	// Create profile
	w = do("POST", "/api/profile", login.Token, `{
		"status": "Backend Engineer",
		"skills": "go, postgres",
		"company": "Acme",
		"twitter": "https://twitter.com/integration"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Add an experience entry
	w = do("PUT", "/api/profile/experience", login.Token, `{
		"title": "Engineer",
		"company": "Acme",
		"from": "2021-03-01T00:00:00Z",
		"current": true
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var withExp struct {
		Profile models.Profile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &withExp))
	require.Len(t, withExp.Profile.Experience, 1)

	// Listed publicly with the owner attached
	w = do("GET", "/api/profile", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Profiles []models.Profile `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Profiles, 1)
	require.NotNil(t, list.Profiles[0].User)
	assert.Equal(t, "Integration User", list.Profiles[0].User.Name)

	// Delete the account
	w = do("DELETE", "/api/profile", login.Token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do("GET", "/api/profile/me", login.Token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
