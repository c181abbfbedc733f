package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/devconnector/backend/internal/models"
	"github.com/devconnector/backend/internal/types"
)

// ProfileService handles profile reads and mutations.
type ProfileService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProfileService(db *gorm.DB, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		db:     db,
		logger: logger,
	}
}

// GetByUserID returns the profile owned by the given user, with the owner
// preloaded.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up profile: %w", err)
	}
	return &profile, nil
}

// List returns all profiles with their owners preloaded.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.WithContext(ctx).Preload("User").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	return profiles, nil
}

// Upsert creates the user's profile if none exists, otherwise merges the
// request into the stored profile: non-empty fields overwrite, empty fields
// leave the stored value untouched.
func (s *ProfileService) Upsert(ctx context.Context, userID uuid.UUID, req *types.UpsertProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("looking up profile: %w", err)
	}
	creating := errors.Is(err, gorm.ErrRecordNotFound)
	if creating {
		profile = models.Profile{UserID: userID}
	}

	applyProfileFields(&profile, req)

	if creating {
		err = s.db.WithContext(ctx).Create(&profile).Error
	} else {
		err = s.db.WithContext(ctx).Save(&profile).Error
	}
	if err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}

	return s.GetByUserID(ctx, userID)
}

// AddExperience inserts the entry at the head of the experience list.
func (s *ProfileService) AddExperience(ctx context.Context, userID uuid.UUID, entry models.Experience) (*models.Profile, error) {
	profile, err := s.loadForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.New()
	profile.Experience = append([]models.Experience{entry}, profile.Experience...)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return profile, nil
}

// RemoveExperience deletes the entry with the given id from the experience
// list. It fails with ErrNotFound if the id is not present.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*models.Profile, error) {
	profile, err := s.loadForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range profile.Experience {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}
	profile.Experience = append(profile.Experience[:idx], profile.Experience[idx+1:]...)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return profile, nil
}

// AddEducation inserts the entry at the head of the education list.
func (s *ProfileService) AddEducation(ctx context.Context, userID uuid.UUID, entry models.Education) (*models.Profile, error) {
	profile, err := s.loadForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.New()
	profile.Education = append([]models.Education{entry}, profile.Education...)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return profile, nil
}

// RemoveEducation deletes the entry with the given id from the education
// list. It fails with ErrNotFound if the id is not present.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*models.Profile, error) {
	profile, err := s.loadForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range profile.Education {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}
	profile.Education = append(profile.Education[:idx], profile.Education[idx+1:]...)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return profile, nil
}

// DeleteAccount removes the user's profile and the user itself.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profileRes := tx.Where("user_id = ?", userID).Delete(&models.Profile{})
		if profileRes.Error != nil {
			return fmt.Errorf("deleting profile: %w", profileRes.Error)
		}
		userRes := tx.Where("id = ?", userID).Delete(&models.User{})
		if userRes.Error != nil {
			return fmt.Errorf("deleting user: %w", userRes.Error)
		}
		if profileRes.RowsAffected == 0 && userRes.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.String("user_id", userID.String()))
	return nil
}

// loadForUpdate fetches the bare profile row for a list mutation. The
// subsequent save writes the whole document back, so two concurrent list
// mutations on the same profile can race; per-document atomicity is all the
// store guarantees here.
func (s *ProfileService) loadForUpdate(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up profile: %w", err)
	}
	return &profile, nil
}

func applyProfileFields(profile *models.Profile, req *types.UpsertProfileRequest) {
	if req.Company != "" {
		profile.Company = req.Company
	}
	if req.Website != "" {
		profile.Website = req.Website
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Status != "" {
		profile.Status = req.Status
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.GithubUsername != "" {
		profile.GithubUsername = req.GithubUsername
	}
	if req.Skills != "" {
		profile.Skills = splitSkills(req.Skills)
	}
	if req.Youtube != "" {
		profile.Social.Youtube = req.Youtube
	}
	if req.Twitter != "" {
		profile.Social.Twitter = req.Twitter
	}
	if req.Facebook != "" {
		profile.Social.Facebook = req.Facebook
	}
	if req.Linkedin != "" {
		profile.Social.Linkedin = req.Linkedin
	}
	if req.Instagram != "" {
		profile.Social.Instagram = req.Instagram
	}
}

// splitSkills turns a comma-separated string into a trimmed, ordered list,
// dropping empty elements.
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
