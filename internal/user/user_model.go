package user

import (
	"time"

	"github.com/athleteverse/api/internal/models"
	"gorm.io/gorm"
)

// User owns the password hash, profile fields, and the denormalized
// participation mirror (joined-id lists plus display counters).
type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`

	Sports      models.StringSlice  `gorm:"type:jsonb;default:'[]'" json:"sports"`
	SkillLevels models.SkillEntries `gorm:"type:jsonb;default:'[]'" json:"skill_levels"`

	// Mirror of membership stored on events/tournaments, kept for fast
	// profile lookups. Mutated only inside participation transactions and
	// by the reconcile worker.
	EventsJoined      models.IDList `gorm:"type:jsonb;default:'[]'" json:"events_joined"`
	TournamentsJoined models.IDList `gorm:"type:jsonb;default:'[]'" json:"tournaments_joined"`
	EventCount        int           `gorm:"default:0" json:"event_count"`
	TournamentCount   int           `gorm:"default:0" json:"tournament_count"`
}

// Response is the externally visible shape of a user record. There is no
// password field, so the hash can never leak through serialization.
type Response struct {
	ID                uint                `json:"id"`
	Name              string              `json:"name"`
	Email             string              `json:"email"`
	Location          string              `json:"location"`
	Bio               string              `json:"bio"`
	Avatar            string              `json:"avatar"`
	Sports            []string            `json:"sports"`
	SkillLevels       []models.SkillEntry `json:"skill_levels"`
	EventsJoined      []uint              `json:"events_joined"`
	TournamentsJoined []uint              `json:"tournaments_joined"`
	EventCount        int                 `json:"event_count"`
	TournamentCount   int                 `json:"tournament_count"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// FilterUserRecord strips the password hash and flattens a user record for
// external consumption.
func FilterUserRecord(u *User) Response {
	return Response{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Location:          u.Location,
		Bio:               u.Bio,
		Avatar:            u.Avatar,
		Sports:            u.Sports,
		SkillLevels:       u.SkillLevels,
		EventsJoined:      u.EventsJoined,
		TournamentsJoined: u.TournamentsJoined,
		EventCount:        u.EventCount,
		TournamentCount:   u.TournamentCount,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// UpdateProfileRequest is the partial profile edit payload. Email and
// password are immutable through this path.
type UpdateProfileRequest struct {
	Name        *string              `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Location    *string              `json:"location,omitempty" binding:"omitempty,max=200"`
	Bio         *string              `json:"bio,omitempty" binding:"omitempty,max=2000"`
	Avatar      *string              `json:"avatar,omitempty" binding:"omitempty,max=500"`
	Sports      *[]string            `json:"sports,omitempty"`
	SkillLevels *[]models.SkillEntry `json:"skill_levels,omitempty"`
}
