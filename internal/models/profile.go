package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileOwner is the projection of the owning user attached to profile
// reads: id, name and avatar only. Profiles are served on public routes, so
// the owner's contact details stay off this view entirely.
type ProfileOwner struct {
	ID     uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

func (ProfileOwner) TableName() string {
	return "users"
}

// SocialLinks holds the optional social media URLs of a profile. Each link
// is independent of the others.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a single work history entry. Entries are ordered
// most-recent-first within Profile.Experience.
type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is a single education history entry with the same ordering and
// lifecycle as Experience.
type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy,omitempty"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Profile is the professional profile of a user, one per user. Skills,
// social links and the two history lists are stored on the profile row as
// JSON, so list mutations follow a read-modify-write of the whole document.
type Profile struct {
	ID             uuid.UUID     `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID     `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	User           *ProfileOwner `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Company        string        `gorm:"size:255" json:"company,omitempty"`
	Website        string        `gorm:"size:255" json:"website,omitempty"`
	Location       string        `gorm:"size:255" json:"location,omitempty"`
	Status         string        `gorm:"not null" json:"status"`
	Skills         []string      `gorm:"serializer:json;type:text" json:"skills"`
	Bio            string        `gorm:"type:text" json:"bio,omitempty"`
	GithubUsername string        `gorm:"size:255" json:"githubusername,omitempty"`
	Social         SocialLinks   `gorm:"serializer:json;type:text" json:"social"`
	Experience     []Experience  `gorm:"serializer:json;type:text" json:"experience"`
	Education      []Education   `gorm:"serializer:json;type:text" json:"education"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
