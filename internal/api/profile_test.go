package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnector/backend/internal/models"
)

type profileEnvelope struct {
	Success bool           `json:"success"`
	Profile models.Profile `json:"profile"`
}

func decodeProfile(t *testing.T, w *httptest.ResponseRecorder) profileEnvelope {
	var env profileEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func createProfile(t *testing.T, router *gin.Engine, token string) models.Profile {
	w := doJSON(t, router, "POST", "/api/profile", token, `{
		"status": "Developer",
		"skills": "go, sql",
		"company": "Acme"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeProfile(t, w).Profile
}

func TestUpsertRequiresAuth(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/profile", "", `{"status": "Dev", "skills": "go"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpsertValidation(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router, "Test User", "upsert@example.com")

	w := doJSON(t, router, "POST", "/api/profile", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeErrors(t, w)
	msgs := make([]string, 0, len(env.Error))
	for _, item := range env.Error {
		msgs = append(msgs, item.Msg)
	}
	assert.Contains(t, msgs, "Status is required")
	assert.Contains(t, msgs, "Skills can not be empty")
}

func TestUpsertCreateAndMerge(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router, "Test User", "merge@example.com")

	created := createProfile(t, router, token)
	assert.Equal(t, "Developer", created.Status)
	assert.Equal(t, "Acme", created.Company)
	assert.Equal(t, []string{"go", "sql"}, created.Skills)

	w := doJSON(t, router, "POST", "/api/profile", token, `{
		"status": "Developer",
		"skills": "go, sql",
		"location": "Berlin"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	merged := decodeProfile(t, w).Profile
	assert.Equal(t, "Acme", merged.Company)
	assert.Equal(t, "Berlin", merged.Location)
	assert.Equal(t, created.ID, merged.ID)
}

func TestProfileMe(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router, "Test User", "profileme@example.com")

	// No profile yet
	w := doJSON(t, router, "GET", "/api/profile/me", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No Profile found", decodeErrors(t, w).Error[0].Msg)

	createProfile(t, router, token)

	w = doJSON(t, router, "GET", "/api/profile/me", token, "")
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeProfile(t, w)
	assert.Equal(t, "Developer", env.Profile.Status)
	require.NotNil(t, env.Profile.User)
	assert.Equal(t, "Test User", env.Profile.User.Name)
}

func TestListProfilesPublic(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router, "Public User", "list@example.com")
	createProfile(t, router, token)

	w := doJSON(t, router, "GET", "/api/profile", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success  bool             `json:"success"`
		Profiles []models.Profile `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Profiles, 1)
	require.NotNil(t, resp.Profiles[0].User)
	assert.Equal(t, "Public User", resp.Profiles[0].User.Name)
	assert.Contains(t, resp.Profiles[0].User.Avatar, "gravatar.com")

	// The owner is served as name and avatar only on the public routes.
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "list@example.com")
	assert.NotContains(t, w.Body.String(), "email")
}

func TestGetProfileByUser(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router, "Test User", "byuser@example.com")
	profile := createProfile(t, router, token)

	w := doJSON(t, router, "GET", "/api/profile/user/"+profile.UserID.String(), "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, profile.ID, decodeProfile(t, w).Profile.ID)
	assert.NotContains(t, w.Body.String(), "byuser@example.com")

	// Malformed id
	w = doJSON(t, router, "GET", "/api/profile/user/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Profile not found", decodeErrors(t, w).Error[0].Msg)

	// Valid id without a profile
	w = doJSON(t, router, "GET", "/api/profile/user/"+uuid.New().String(), "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Profile not found", decodeErrors(t, w).Error[0].Msg)
}

func TestExperienceFlow(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router, "Test User", "exp@example.com")
	createProfile(t, router, token)

	for _, title := range []string{"A", "B", "C"} {
		w := doJSON(t, router, "PUT", "/api/profile/experience", token, `{
			"title": "`+title+`",
			"company": "Acme",
			"from": "2020-01-01T00:00:00Z",
			"current": true
		}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doJSON(t, router, "GET", "/api/profile/me", token, "")
	profile := decodeProfile(t, w).Profile
	require.Len(t, profile.Experience, 3)
	assert.Equal(t, "C", profile.Experience[0].Title)
	assert.Equal(t, "B", profile.Experience[1].Title)
	assert.Equal(t, "A", profile.Experience[2].Title)

	// Remove the middle entry
	w = doJSON(t, router, "DELETE", "/api/profile/experience/"+profile.Experience[1].ID.String(), token, "")
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeProfile(t, w).Profile
	require.Len(t, updated.Experience, 2)
	assert.Equal(t, "C", updated.Experience[0].Title)
	assert.Equal(t, "A", updated.Experience[1].Title)

	// Removing an unknown entry fails explicitly
	w = doJSON(t, router, "DELETE", "/api/profile/experience/"+uuid.New().String(), token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Experience not found", decodeErrors(t, w).Error[0].Msg)
}

func TestExperienceValidation(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router, "Test User", "expval@example.com")
	createProfile(t, router, token)

	w := doJSON(t, router, "PUT", "/api/profile/experience", token, `{"location": "Remote"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeErrors(t, w)
	msgs := make([]string, 0, len(env.Error))
	for _, item := range env.Error {
		msgs = append(msgs, item.Msg)
	}
	assert.Contains(t, msgs, "Title cannot be empty")
	assert.Contains(t, msgs, "Company cannot be empty")
	assert.Contains(t, msgs, "From Date cannot be empty")
}

func TestEducationFlow(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router, "Test User", "edu@example.com")
	createProfile(t, router, token)

	w := doJSON(t, router, "PUT", "/api/profile/education", token, `{
		"school": "MIT",
		"degree": "BSc",
		"fieldofstudy": "CS",
		"from": "2015-09-01T00:00:00Z"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	profile := decodeProfile(t, w).Profile
	require.Len(t, profile.Education, 1)
	assert.Equal(t, "MIT", profile.Education[0].School)

	w = doJSON(t, router, "DELETE", "/api/profile/education/"+profile.Education[0].ID.String(), token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeProfile(t, w).Profile.Education)
}

func TestDeleteAccount(t *testing.T) {
	router, _ := setupRouter(t)
	token := registerUser(t, router, "Test User", "delete@example.com")
	createProfile(t, router, token)

	w := doJSON(t, router, "DELETE", "/api/profile", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User Deleted Successfully")

	// The profile is gone for the (still cryptographically valid) token
	w = doJSON(t, router, "GET", "/api/profile/me", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No Profile found", decodeErrors(t, w).Error[0].Msg)

	// And so is the user record
	w = doJSON(t, router, "GET", "/api/auth", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User not found", decodeErrors(t, w).Error[0].Msg)
}
