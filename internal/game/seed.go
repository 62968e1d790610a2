package game

import (
	"log"

	"github.com/athleteverse/api/internal/models"
	"gorm.io/gorm"
)

var starterGames = []Game{
	{
		Title:         "Counter-Strike 2",
		Description:   "The iconic tactical shooter returns with upgraded graphics and gameplay.",
		Category:      "fps",
		ActivePlayers: 1250000,
		Platforms:     models.StringSlice{"PC", "Mac"},
		Publisher:     "Valve",
		ReleaseYear:   2023,
	},
	{
		Title:         "Valorant",
		Description:   "A character-based tactical shooter where precise gunplay meets unique agent abilities.",
		Category:      "fps",
		ActivePlayers: 980000,
		Platforms:     models.StringSlice{"PC"},
		Publisher:     "Riot Games",
		ReleaseYear:   2020,
	},
	{
		Title:         "League of Legends",
		Description:   "The world's most played MOBA with a deep champion roster and team play.",
		Category:      "moba",
		ActivePlayers: 1800000,
		Platforms:     models.StringSlice{"PC", "Mac"},
		Publisher:     "Riot Games",
		ReleaseYear:   2009,
	},
	{
		Title:         "Dota 2",
		Description:   "A deeply complex MOBA known for its competitive scene and The International.",
		Category:      "moba",
		ActivePlayers: 750000,
		Platforms:     models.StringSlice{"PC", "Mac"},
		Publisher:     "Valve",
		ReleaseYear:   2013,
	},
	{
		Title:         "Fortnite",
		Description:   "Battle royale with building mechanics and frequent crossover events.",
		Category:      "battle-royale",
		ActivePlayers: 2300000,
		Platforms:     models.StringSlice{"PC", "PlayStation", "Xbox", "Switch", "Mobile"},
		Publisher:     "Epic Games",
		ReleaseYear:   2017,
	},
	{
		Title:         "Apex Legends",
		Description:   "Squad-based battle royale with hero abilities and fluid movement.",
		Category:      "battle-royale",
		ActivePlayers: 900000,
		Platforms:     models.StringSlice{"PC", "PlayStation", "Xbox", "Switch"},
		Publisher:     "Electronic Arts",
		ReleaseYear:   2019,
	},
	{
		Title:         "FIFA 24",
		Description:   "The latest entry in the long-running football simulation series.",
		Category:      "sports",
		ActivePlayers: 1100000,
		Platforms:     models.StringSlice{"PC", "PlayStation", "Xbox", "Switch"},
		Publisher:     "EA Sports",
		ReleaseYear:   2023,
	},
	{
		Title:         "Rocket League",
		Description:   "High-powered hybrid of arcade soccer and vehicular mayhem.",
		Category:      "sports",
		ActivePlayers: 850000,
		Platforms:     models.StringSlice{"PC", "PlayStation", "Xbox", "Switch"},
		Publisher:     "Psyonix",
		ReleaseYear:   2015,
	},
}

// Seed populates the game catalog with a starter set when it is empty.
func Seed(db *gorm.DB) error {
	repo := NewGameRepository(db)
	count, err := repo.CountGames()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range starterGames {
		if err := repo.CreateGame(&starterGames[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d games into empty catalog", len(starterGames))
	return nil
}
