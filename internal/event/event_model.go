// event/model.go
package event

import (
	"time"

	"github.com/athleteverse/api/internal/models"
	"gorm.io/gorm"
)

// Event is a joinable local sports activity. Participants is the
// authoritative membership list; the user-side mirror is bookkeeping for
// profile pages.
type Event struct {
	gorm.Model
	Title           string        `gorm:"not null" json:"title"`
	Sport           string        `gorm:"index;not null" json:"sport"`
	Date            time.Time     `gorm:"index;not null" json:"date"`
	Time            string        `json:"time"`
	Location        string        `gorm:"not null" json:"location"`
	Address         string        `json:"address"`
	Description     string        `json:"description"`
	MaxParticipants int           `gorm:"default:0" json:"max_participants"` // 0 = unlimited
	Participants    models.IDList `gorm:"type:jsonb;default:'[]'" json:"participants"`
	SkillLevel      string        `gorm:"index" json:"skill_level"`
	Image           string        `json:"image"`

	// OrganizerID is nil for anonymous organizers; name and email are then
	// carried on the record itself.
	OrganizerID    *uint  `gorm:"index" json:"organizer_id"`
	IsAnonymous    bool   `gorm:"default:false" json:"is_anonymous"`
	OrganizerName  string `json:"organizer_name,omitempty"`
	OrganizerEmail string `json:"organizer_email,omitempty"`
}

type CreateEventRequest struct {
	Title           string    `json:"title" binding:"required,min=1,max=200"`
	Sport           string    `json:"sport" binding:"required,min=1,max=100"`
	Date            time.Time `json:"date" binding:"required"`
	Time            string    `json:"time,omitempty"`
	Location        string    `json:"location" binding:"required,max=200"`
	Address         string    `json:"address,omitempty"`
	Description     string    `json:"description,omitempty" binding:"omitempty,max=5000"`
	MaxParticipants int       `json:"max_participants,omitempty" binding:"omitempty,min=0"`
	SkillLevel      string    `json:"skill_level,omitempty"`
	Image           string    `json:"image,omitempty"`
	IsAnonymous     bool      `json:"is_anonymous,omitempty"`
	OrganizerName   string    `json:"organizer_name,omitempty"`
	OrganizerEmail  string    `json:"organizer_email,omitempty" binding:"omitempty,email"`
}

type UpdateEventRequest struct {
	Title           *string    `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Sport           *string    `json:"sport,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	Time            *string    `json:"time,omitempty"`
	Location        *string    `json:"location,omitempty"`
	Address         *string    `json:"address,omitempty"`
	Description     *string    `json:"description,omitempty" binding:"omitempty,max=5000"`
	MaxParticipants *int       `json:"max_participants,omitempty" binding:"omitempty,min=0"`
	SkillLevel      *string    `json:"skill_level,omitempty"`
	Image           *string    `json:"image,omitempty"`
}
