package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// TestDataGenerator produces randomized but reproducible game fixtures for
// integration tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator, seeded from the clock unless a
// seed is given.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed in use, for reproducing a failed run.
func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// GeneratePlayers returns count players with distinct IDs.
func (g *TestDataGenerator) GeneratePlayers(count int) []gamedomain.PlayerSetup {
	players := make([]gamedomain.PlayerSetup, 0, count)
	for i := 0; i < count; i++ {
		players = append(players, gamedomain.PlayerSetup{
			ID:    gamedomain.PlayerID(fmt.Sprintf("p%d", i+1)),
			Name:  g.faker.Name(),
			Color: g.faker.HexColor(),
		})
	}
	return players
}

// GenerateGame builds a game on the given course with randomized scores on
// the first holesScored holes.
func (g *TestDataGenerator) GenerateGame(gameID string, course gamedomain.Course, playerCount, holesScored int) gamedomain.Game {
	players := g.GeneratePlayers(playerCount)
	date := g.faker.DateRange(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	).Format("2006-01-02")

	game := gamedomain.NewGame(gameID, date, course, players)
	for hole := 1; hole <= holesScored && hole <= len(course.Holes); hole++ {
		for _, p := range players {
			strokes := g.faker.Number(2, 8)
			putts := g.faker.Number(0, 3)
			if putts > strokes {
				putts = strokes
			}
			game = gamedomain.RecordScore(game, p.ID, hole, strokes, putts)
		}
	}
	return game
}
