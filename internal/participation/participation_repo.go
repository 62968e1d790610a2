package participation

import (
	"context"
	"errors"

	"github.com/athleteverse/api/internal/event"
	"github.com/athleteverse/api/internal/tournament"
	"github.com/athleteverse/api/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tx exposes the record operations available inside one atomic membership
// change. ForUpdate getters take a row lock so a capacity check and the
// insert it guards cannot interleave with a concurrent join.
//
// Missing records are (nil, nil), matching the repository convention used
// across the codebase.
type Tx interface {
	GetEventForUpdate(id uint) (*event.Event, error)
	SaveEvent(ev *event.Event) error
	GetTournamentForUpdate(id uint) (*tournament.Tournament, error)
	SaveTournament(t *tournament.Tournament) error
	GetUserForUpdate(id uint) (*user.User, error)
	SaveUser(u *user.User) error
}

// Store is the ledger's storage boundary: transactional mutation plus the
// plain reads the history query needs.
type Store interface {
	WithTx(ctx context.Context, fn func(tx Tx) error) error
	GetUser(ctx context.Context, id uint) (*user.User, error)
	GetEventsByIDs(ctx context.Context, ids []uint) ([]event.Event, error)
	GetTournamentsByIDs(ctx context.Context, ids []uint) ([]tournament.Tournament, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates the gorm-backed participation store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

func (s *gormStore) GetUser(ctx context.Context, id uint) (*user.User, error) {
	var u user.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *gormStore) GetEventsByIDs(ctx context.Context, ids []uint) ([]event.Event, error) {
	if len(ids) == 0 {
		return []event.Event{}, nil
	}
	var events []event.Event
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *gormStore) GetTournamentsByIDs(ctx context.Context, ids []uint) ([]tournament.Tournament, error) {
	if len(ids) == 0 {
		return []tournament.Tournament{}, nil
	}
	var tournaments []tournament.Tournament
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("start_date_time ASC").Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) GetEventForUpdate(id uint) (*event.Event, error) {
	var ev event.Event
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&ev, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ev, nil
}

func (t *gormTx) SaveEvent(ev *event.Event) error {
	return t.db.Save(ev).Error
}

func (t *gormTx) GetTournamentForUpdate(id uint) (*tournament.Tournament, error) {
	var tr tournament.Tournament
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tr, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tr, nil
}

func (t *gormTx) SaveTournament(tr *tournament.Tournament) error {
	return t.db.Save(tr).Error
}

func (t *gormTx) GetUserForUpdate(id uint) (*user.User, error) {
	var u user.User
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (t *gormTx) SaveUser(u *user.User) error {
	return t.db.Save(u).Error
}
