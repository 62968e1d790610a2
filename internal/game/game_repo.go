package game

import (
	"errors"

	"gorm.io/gorm"
)

// GameRepository defines the interface for game catalog operations.
type GameRepository interface {
	CreateGame(g *Game) error
	GetGameByID(id uint) (*Game, error)
	GetAllGames(limit, offset int) ([]Game, int64, error)
	GetGamesByCategory(category string, limit, offset int) ([]Game, int64, error)
	CountGames() (int64, error)
}

type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new instance of GameRepository.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) CreateGame(g *Game) error {
	return r.db.Create(g).Error
}

func (r *gameRepository) GetGameByID(id uint) (*Game, error) {
	var g Game
	err := r.db.First(&g, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *gameRepository) GetAllGames(limit, offset int) ([]Game, int64, error) {
	var games []Game
	var total int64

	query := r.db.Model(&Game{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("title ASC").Offset(offset).Limit(limit).Find(&games).Error; err != nil {
		return nil, 0, err
	}
	return games, total, nil
}

// GetGamesByCategory sorts by popularity, most active first.
func (r *gameRepository) GetGamesByCategory(category string, limit, offset int) ([]Game, int64, error) {
	var games []Game
	var total int64

	query := r.db.Model(&Game{}).Where("category = ?", category)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("active_players DESC").Offset(offset).Limit(limit).Find(&games).Error; err != nil {
		return nil, 0, err
	}
	return games, total, nil
}

func (r *gameRepository) CountGames() (int64, error) {
	var total int64
	err := r.db.Model(&Game{}).Count(&total).Error
	return total, err
}
