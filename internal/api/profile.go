package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devconnector/backend/internal/middleware"
	"github.com/devconnector/backend/internal/models"
	"github.com/devconnector/backend/internal/service"
	"github.com/devconnector/backend/internal/types"
)

var upsertMessages = map[string]string{
	"Status": "Status is required",
	"Skills": "Skills can not be empty",
}

var experienceMessages = map[string]string{
	"Title":   "Title cannot be empty",
	"Company": "Company cannot be empty",
	"From":    "From Date cannot be empty",
}

var educationMessages = map[string]string{
	"School": "School cannot be empty",
	"Degree": "Degree cannot be empty",
	"From":   "From date cannot be empty",
}

// ProfileHandler serves the profile directory and profile mutations.
type ProfileHandler struct {
	profile   *service.ProfileService
	validator middleware.TokenValidator
	logger    *zap.Logger
}

func NewProfileHandler(profile *service.ProfileService, validator middleware.TokenValidator, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profile:   profile,
		validator: validator,
		logger:    logger,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	authed := middleware.Auth(h.validator)

	profile := r.Group("/profile")
	{
		profile.GET("", h.List)
		profile.GET("/me", authed, h.Me)
		profile.GET("/user/:user_id", h.GetByUser)
		profile.POST("", authed, h.Upsert)
		profile.PUT("/experience", authed, h.AddExperience)
		profile.DELETE("/experience/:exp_id", authed, h.RemoveExperience)
		profile.PUT("/education", authed, h.AddEducation)
		profile.DELETE("/education/:edu_id", authed, h.RemoveEducation)
		profile.DELETE("", authed, h.DeleteAccount)
	}
}

// List returns every profile with owner name and avatar.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profile.List(c.Request.Context())
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profiles": profiles})
}

// Me returns the authenticated user's profile.
func (h *ProfileHandler) Me(c *gin.Context) {
	userID := h.currentUser(c)
	if userID == uuid.Nil {
		return
	}

	profile, err := h.profile.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "No Profile found"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// GetByUser returns the profile of the user in the path. Malformed and
// unknown ids both answer 400, so the route does not reveal which ids exist.
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "Profile not found"})
		return
	}

	profile, err := h.profile.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "Profile not found"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// Upsert creates or merges the authenticated user's profile.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID := h.currentUser(c)
	if userID == uuid.Nil {
		return
	}

	var req types.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingErrors(err, upsertMessages)...)
		return
	}

	profile, err := h.profile.Upsert(c.Request.Context(), userID, &req)
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// AddExperience prepends a work history entry to the user's profile.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID := h.currentUser(c)
	if userID == uuid.Nil {
		return
	}

	var req types.AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingErrors(err, experienceMessages)...)
		return
	}

	entry := models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}

	profile, err := h.profile.AddExperience(c.Request.Context(), userID, entry)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "No Profile found"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// RemoveExperience deletes the entry named in the path from the user's profile.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID := h.currentUser(c)
	if userID == uuid.Nil {
		return
	}

	entryID, err := uuid.Parse(c.Param("exp_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "Experience not found"})
		return
	}

	profile, err := h.profile.RemoveExperience(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "Experience not found"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// AddEducation prepends an education entry to the user's profile.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID := h.currentUser(c)
	if userID == uuid.Nil {
		return
	}

	var req types.AddEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingErrors(err, educationMessages)...)
		return
	}

	entry := models.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}

	profile, err := h.profile.AddEducation(c.Request.Context(), userID, entry)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "No Profile found"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// RemoveEducation deletes the entry named in the path from the user's profile.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID := h.currentUser(c)
	if userID == uuid.Nil {
		return
	}

	entryID, err := uuid.Parse(c.Param("edu_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "Education not found"})
		return
	}

	profile, err := h.profile.RemoveEducation(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "Education not found"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// DeleteAccount removes the authenticated user's profile and account.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID := h.currentUser(c)
	if userID == uuid.Nil {
		return
	}

	if err := h.profile.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "User not found"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "User Deleted Successfully"})
}

// currentUser pulls the authenticated user id set by the auth gate. It
// answers 401 itself and returns uuid.Nil when the id is absent.
func (h *ProfileHandler) currentUser(c *gin.Context) uuid.UUID {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		respondError(c, http.StatusUnauthorized, types.ErrorItem{Msg: "No Token"})
		return uuid.Nil
	}
	return userID.(uuid.UUID)
}
