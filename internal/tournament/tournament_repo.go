package tournament

import (
	"errors"

	"gorm.io/gorm"
)

// ListFilter narrows tournament listings. Zero values mean "no filter".
type ListFilter struct {
	Game             string
	Format           string
	RegistrationOpen *bool
}

// TournamentRepository defines the interface for tournament data operations.
type TournamentRepository interface {
	CreateTournament(t *Tournament) error
	GetTournamentByID(id uint) (*Tournament, error)
	GetAllTournaments(limit, offset int, filter ListFilter) ([]Tournament, int64, error)
	GetTournamentsByGame(game string, limit, offset int) ([]Tournament, int64, error)
	UpdateTournament(t *Tournament) error
	DeleteTournament(id uint) error
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new instance of TournamentRepository.
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) CreateTournament(t *Tournament) error {
	return r.db.Create(t).Error
}

func (r *tournamentRepository) GetTournamentByID(id uint) (*Tournament, error) {
	var t Tournament
	err := r.db.First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tournamentRepository) GetAllTournaments(limit, offset int, filter ListFilter) ([]Tournament, int64, error) {
	var tournaments []Tournament
	var total int64

	query := r.db.Model(&Tournament{})
	if filter.Game != "" {
		query = query.Where("game = ?", filter.Game)
	}
	if filter.Format != "" {
		query = query.Where("format = ?", filter.Format)
	}
	if filter.RegistrationOpen != nil {
		query = query.Where("registration_open = ?", *filter.RegistrationOpen)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("start_date_time ASC").Offset(offset).Limit(limit).Find(&tournaments).Error; err != nil {
		return nil, 0, err
	}
	return tournaments, total, nil
}

func (r *tournamentRepository) GetTournamentsByGame(game string, limit, offset int) ([]Tournament, int64, error) {
	return r.GetAllTournaments(limit, offset, ListFilter{Game: game})
}

func (r *tournamentRepository) UpdateTournament(t *Tournament) error {
	return r.db.Save(t).Error
}

// DeleteTournament is a hard delete; membership mirrors on user records are
// repaired by the reconcile worker.
func (r *tournamentRepository) DeleteTournament(id uint) error {
	result := r.db.Unscoped().Delete(&Tournament{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
