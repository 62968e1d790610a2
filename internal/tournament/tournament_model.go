// tournament/model.go
package tournament

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/athleteverse/api/internal/models"
	"gorm.io/gorm"
)

// Rule is the canonical stored shape of a tournament rule. Authoring input
// may arrive as free text, a keyed object, or a structured list; it is
// normalized to this shape on every write.
type Rule struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RuleList is the JSONB column holding a tournament's rules.
type RuleList []Rule

func (r RuleList) Value() (driver.Value, error) {
	if r == nil {
		return json.Marshal([]Rule{})
	}
	return json.Marshal(r)
}

// Scan unmarshals a JSONB column into the list.
func (r *RuleList) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("RuleList: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, r)
}

// ScheduleEntry is one timeline item of a tournament.
type ScheduleEntry struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

// ScheduleList is the JSONB column holding a tournament's schedule.
type ScheduleList []ScheduleEntry

func (s ScheduleList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]ScheduleEntry{})
	}
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the list.
func (s *ScheduleList) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("ScheduleList: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}

// Tournament is a joinable eSports competition.
type Tournament struct {
	gorm.Model
	Title            string        `gorm:"not null" json:"title"`
	Game             string        `gorm:"index;not null" json:"game"`
	GameID           uint          `gorm:"index" json:"game_id,omitempty"`
	Format           string        `gorm:"index" json:"format"`
	StartDateTime    time.Time     `gorm:"index;not null" json:"start_date_time"`
	EndDateTime      *time.Time    `json:"end_date_time,omitempty"`
	Location         string        `json:"location"`
	MaxParticipants  int           `gorm:"default:0" json:"max_participants"` // 0 = unlimited
	Participants     models.IDList `gorm:"type:jsonb;default:'[]'" json:"participants"`
	RegistrationOpen bool          `gorm:"default:true" json:"registration_open"`
	EntryFee         float64       `gorm:"default:0" json:"entry_fee"`
	PrizePool        string        `json:"prize_pool"`
	Rules            RuleList      `gorm:"type:jsonb;default:'[]'" json:"rules"`
	Schedule         ScheduleList  `gorm:"type:jsonb;default:'[]'" json:"schedule"`
	Image            string        `json:"image"`

	// OrganizerID is nil for anonymous organizers. Unlike events, the
	// organizer gets no special treatment in the participant list.
	OrganizerID *uint `gorm:"index" json:"organizer_id"`
	IsAnonymous bool  `gorm:"default:false" json:"is_anonymous"`
}

type CreateTournamentRequest struct {
	Title            string          `json:"title" binding:"required,min=1,max=200"`
	Game             string          `json:"game" binding:"required,min=1,max=100"`
	GameID           uint            `json:"game_id,omitempty"`
	Format           string          `json:"format,omitempty"`
	StartDateTime    time.Time       `json:"start_date_time" binding:"required"`
	EndDateTime      *time.Time      `json:"end_date_time,omitempty"`
	Location         string          `json:"location,omitempty"`
	MaxParticipants  int             `json:"max_participants,omitempty" binding:"omitempty,min=0"`
	RegistrationOpen *bool           `json:"registration_open,omitempty"`
	EntryFee         float64         `json:"entry_fee,omitempty" binding:"omitempty,min=0"`
	PrizePool        string          `json:"prize_pool,omitempty"`
	Rules            RulesInput      `json:"rules,omitempty"`
	Schedule         []ScheduleEntry `json:"schedule,omitempty"`
	Image            string          `json:"image,omitempty"`
	IsAnonymous      bool            `json:"is_anonymous,omitempty"`
}

type UpdateTournamentRequest struct {
	Title            *string          `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Game             *string          `json:"game,omitempty"`
	GameID           *uint            `json:"game_id,omitempty"`
	Format           *string          `json:"format,omitempty"`
	StartDateTime    *time.Time       `json:"start_date_time,omitempty"`
	EndDateTime      *time.Time       `json:"end_date_time,omitempty"`
	Location         *string          `json:"location,omitempty"`
	MaxParticipants  *int             `json:"max_participants,omitempty" binding:"omitempty,min=0"`
	RegistrationOpen *bool            `json:"registration_open,omitempty"`
	EntryFee         *float64         `json:"entry_fee,omitempty" binding:"omitempty,min=0"`
	PrizePool        *string          `json:"prize_pool,omitempty"`
	Rules            RulesInput       `json:"rules,omitempty"`
	Schedule         *[]ScheduleEntry `json:"schedule,omitempty"`
	Image            *string          `json:"image,omitempty"`
}
