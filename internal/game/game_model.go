// game/model.go
package game

import (
	"github.com/athleteverse/api/internal/models"
	"gorm.io/gorm"
)

// Game is read-mostly catalog data for the eSports side. It carries no
// participation semantics; tournaments reference it by name and id.
type Game struct {
	gorm.Model
	Title         string             `gorm:"uniqueIndex;not null" json:"title"`
	Category      string             `gorm:"index" json:"category"`
	Description   string             `json:"description"`
	Image         string             `json:"image"`
	ActivePlayers int                `gorm:"default:0" json:"active_players"`
	Platforms     models.StringSlice `gorm:"type:jsonb;default:'[]'" json:"platforms"`
	Publisher     string             `json:"publisher"`
	ReleaseYear   int                `json:"release_year"`
}

type CreateGameRequest struct {
	Title         string   `json:"title" binding:"required,min=1,max=200"`
	Category      string   `json:"category" binding:"required,min=1,max=100"`
	Description   string   `json:"description,omitempty" binding:"omitempty,max=5000"`
	Image         string   `json:"image,omitempty"`
	ActivePlayers int      `json:"active_players,omitempty" binding:"omitempty,min=0"`
	Platforms     []string `json:"platforms,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	ReleaseYear   int      `json:"release_year,omitempty"`
}
