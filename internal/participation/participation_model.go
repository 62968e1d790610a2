package participation

import (
	"errors"

	"github.com/athleteverse/api/internal/event"
	"github.com/athleteverse/api/internal/tournament"
)

// Component-level failures of the participation ledger. The controller maps
// each to a fixed HTTP status; unclassified errors fall through to a
// generic 500.
var (
	ErrNotFound             = errors.New("activity not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrFull                 = errors.New("activity is full")
	ErrOrganizerCannotLeave = errors.New("organizer cannot leave the event")
)

// History is a user's resolved participation: the mirror id-sets expanded
// into full records. Counters are reported as stored, not recomputed; ids
// that no longer resolve are dropped from the lists only.
type History struct {
	EventCount      int                     `json:"event_count"`
	TournamentCount int                     `json:"tournament_count"`
	Events          []event.Event           `json:"events"`
	Tournaments     []tournament.Tournament `json:"tournaments"`
}
