package gameservice

import (
	"context"
	"log/slog"
	"testing"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	gamedb "github.com/the-tour-club/skins/app/modules/game/infrastructure/repositories"
	gamemetrics "github.com/the-tour-club/skins/internal/observability/metrics/game"
	"github.com/stretchr/testify/assert"
)

const testCourseID = "test-links"

// testCourse builds an 18-hole layout with known side-game answers: front
// par-3s on 3, 5, 7 and par-5s on 2, 6; back par-3s on 11, 14, 17 and par-5s
// on 13, 18. Handicap ranks are a permutation of 1..18 with the hardest
// holes on 4 and 10 and the designated par-4s on 1 and 12.
func testCourse() gamedomain.Course {
	pars := map[int]int{
		2: 5, 6: 5, 13: 5, 18: 5,
		3: 3, 5: 3, 7: 3, 11: 3, 14: 3, 17: 3,
	}
	handicaps := map[int]int{
		1: 5, 2: 15, 3: 17, 4: 1, 5: 3, 6: 13, 7: 9, 8: 7, 9: 11,
		10: 2, 11: 18, 12: 4, 13: 16, 14: 8, 15: 6, 16: 10, 17: 12, 18: 14,
	}

	holes := make([]gamedomain.CourseHole, 0, 18)
	totalPar := 0
	for n := 1; n <= 18; n++ {
		par, ok := pars[n]
		if !ok {
			par = 4
		}
		totalPar += par
		holes = append(holes, gamedomain.CourseHole{
			HoleNumber: n,
			Par:        par,
			Handicap:   handicaps[n],
		})
	}
	return gamedomain.Course{
		ID:       testCourseID,
		Name:     "Test Links",
		Holes:    holes,
		TotalPar: totalPar,
	}
}

func newTestService(repo *FakeGameRepo) *GameService {
	resolver := &FakeCourseResolver{
		Courses: map[string]gamedomain.Course{testCourseID: testCourse()},
	}
	return NewGameService(repo, resolver, slog.Default(), gamemetrics.NoOpMetrics{}, nil, nil)
}

func seedGame(t *testing.T, repo *FakeGameRepo, playerIDs ...gamedomain.PlayerID) gamedomain.Game {
	t.Helper()
	setups := make([]gamedomain.PlayerSetup, 0, len(playerIDs))
	for _, id := range playerIDs {
		setups = append(setups, gamedomain.PlayerSetup{ID: id, Name: string(id)})
	}
	game := gamedomain.NewGame("g1", "2025-06-14", testCourse(), setups)
	repo.games[game.ID] = gamedb.GameRecord{
		ID:       game.ID,
		Date:     game.Date,
		CourseID: testCourseID,
		Snapshot: game,
	}
	return game
}

func winner(id gamedomain.PlayerID) *gamedomain.PlayerID {
	return &id
}

func TestCreateGame(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateGameInput
		wantErr  bool
		wantGame func(t *testing.T, g *gamedomain.Game)
	}{
		{
			name: "happy path",
			input: CreateGameInput{
				GameID:    "g1",
				EventName: "Saturday Skins",
				Date:      "2025-06-14",
				CourseID:  testCourseID,
				Players: []gamedomain.PlayerSetup{
					{ID: "p1", Name: "Ann"},
					{ID: "p2", Name: "Bob"},
				},
			},
			wantGame: func(t *testing.T, g *gamedomain.Game) {
				assert.Equal(t, "g1", g.ID)
				assert.Equal(t, "Saturday Skins", g.EventName)
				assert.Len(t, g.Players, 2)
				assert.Len(t, g.Players[0].Holes, 18)
				assert.Equal(t, 18, g.TotalHoles)
				assert.Empty(t, g.ClosestToPin)
			},
		},
		{
			name: "generated ID when blank",
			input: CreateGameInput{
				Date:     "2025-06-14",
				CourseID: testCourseID,
				Players:  []gamedomain.PlayerSetup{{ID: "p1", Name: "Ann"}},
			},
			wantGame: func(t *testing.T, g *gamedomain.Game) {
				assert.NotEmpty(t, g.ID)
			},
		},
		{
			name: "unknown course",
			input: CreateGameInput{
				GameID:   "g1",
				Date:     "2025-06-14",
				CourseID: "nowhere",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeGameRepo()
			svc := newTestService(repo)

			game, err := svc.CreateGame(context.Background(), tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			tt.wantGame(t, game)
			assert.Contains(t, repo.Trace(), "Upsert")
		})
	}
}

func TestGetGame(t *testing.T) {
	repo := NewFakeGameRepo()
	svc := newTestService(repo)
	seedGame(t, repo, "p1")

	game, err := svc.GetGame(context.Background(), "g1")
	assert.NoError(t, err)
	assert.Equal(t, "g1", game.ID)

	_, err = svc.GetGame(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestDeleteGame(t *testing.T) {
	repo := NewFakeGameRepo()
	svc := newTestService(repo)
	seedGame(t, repo, "p1")

	assert.NoError(t, svc.DeleteGame(context.Background(), "g1"))
	assert.ErrorIs(t, svc.DeleteGame(context.Background(), "g1"), ErrGameNotFound)
}

func TestRecordScoreService(t *testing.T) {
	tests := []struct {
		name       string
		playerID   gamedomain.PlayerID
		holeNumber int
		wantErr    error
		wantSkins  int
	}{
		{name: "birdie earns stack and win", playerID: "p1", holeNumber: 1, wantSkins: 2},
		{name: "unknown player", playerID: "ghost", holeNumber: 1, wantErr: ErrUnknownPlayer},
		{name: "unknown hole", playerID: "p1", holeNumber: 42, wantErr: ErrUnknownHole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeGameRepo()
			svc := newTestService(repo)
			seedGame(t, repo, "p1", "p2")

			game, err := svc.RecordScore(context.Background(), "g1", tt.playerID, tt.holeNumber, 3, 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			p1, _ := game.Player("p1")
			assert.Equal(t, tt.wantSkins, p1.Skins)
			assert.Equal(t, 3, p1.TotalScore)

			// The persisted snapshot matches what the caller saw.
			stored := repo.games["g1"].Snapshot
			storedP1, _ := stored.Player("p1")
			assert.Equal(t, p1.Skins, storedP1.Skins)
		})
	}
}

func TestSetClosestToPinService(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(svc *GameService)
		holeNumber int
		winner     *gamedomain.PlayerID
		wantErr    error
	}{
		{name: "winner on first par-3", holeNumber: 3, winner: winner("p1")},
		{name: "explicit no winner", holeNumber: 3, winner: nil},
		{name: "not a par-3", holeNumber: 1, winner: winner("p1"), wantErr: ErrIneligibleHole},
		{name: "unknown winner", holeNumber: 3, winner: winner("ghost"), wantErr: ErrUnknownPlayer},
		{
			name: "side already closed",
			setup: func(svc *GameService) {
				_, err := svc.SetClosestToPin(context.Background(), "g1", 3, winner("p1"))
				assert.NoError(t, err)
			},
			holeNumber: 5,
			winner:     winner("p2"),
			wantErr:    ErrSideClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeGameRepo()
			svc := newTestService(repo)
			seedGame(t, repo, "p1", "p2")
			if tt.setup != nil {
				tt.setup(svc)
			}

			game, err := svc.SetClosestToPin(context.Background(), "g1", tt.holeNumber, tt.winner)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			decided, ok := game.ClosestToPin[tt.holeNumber]
			assert.True(t, ok)
			assert.Equal(t, tt.winner, decided)
		})
	}
}

func TestSetGreenieService(t *testing.T) {
	repo := NewFakeGameRepo()
	svc := newTestService(repo)
	seedGame(t, repo, "p1", "p2")

	// No CTP winner yet: every greenie is rejected.
	_, err := svc.SetGreenie(context.Background(), "g1", 5, "p1", true)
	assert.ErrorIs(t, err, ErrIneligibleHole)

	_, err = svc.SetClosestToPin(context.Background(), "g1", 3, winner("p2"))
	assert.NoError(t, err)

	game, err := svc.SetGreenie(context.Background(), "g1", 5, "p1", true)
	assert.NoError(t, err)
	assert.True(t, game.Greenies[5]["p1"])
	p1, _ := game.Player("p1")
	assert.Equal(t, 1, p1.Skins)
}

func TestSandyGatingService(t *testing.T) {
	repo := NewFakeGameRepo()
	svc := newTestService(repo)
	seedGame(t, repo, "p1")

	_, err := svc.SetSandy(context.Background(), "g1", 5, "p1", true)
	assert.ErrorIs(t, err, ErrMarkGated)

	_, err = svc.SetSandyHole(context.Background(), "g1", 5, true)
	assert.NoError(t, err)

	_, err = svc.SetDoubleSandy(context.Background(), "g1", 5, "p1", true)
	assert.ErrorIs(t, err, ErrMarkGated)

	game, err := svc.SetSandy(context.Background(), "g1", 5, "p1", true)
	assert.NoError(t, err)
	p1, _ := game.Player("p1")
	assert.Equal(t, 1, p1.Skins)

	game, err = svc.SetDoubleSandy(context.Background(), "g1", 5, "p1", true)
	assert.NoError(t, err)
	p1, _ = game.Player("p1")
	assert.Equal(t, 2, p1.Skins)
}

func TestChangeCourseService(t *testing.T) {
	repo := NewFakeGameRepo()
	svc := newTestService(repo)
	seedGame(t, repo, "p1", "p2")

	_, err := svc.RecordScore(context.Background(), "g1", "p1", 1, 3, 1)
	assert.NoError(t, err)
	_, err = svc.SetClosestToPin(context.Background(), "g1", 3, winner("p1"))
	assert.NoError(t, err)

	_, err = svc.ChangeCourse(context.Background(), "g1", "nowhere")
	assert.Error(t, err)

	game, err := svc.ChangeCourse(context.Background(), "g1", testCourseID)
	assert.NoError(t, err)
	assert.Empty(t, game.ClosestToPin)
	for _, p := range game.Players {
		assert.Zero(t, p.TotalScore)
		assert.Zero(t, p.Skins)
	}
}

func TestExportXLSX(t *testing.T) {
	repo := NewFakeGameRepo()
	svc := newTestService(repo)
	seedGame(t, repo, "p1", "p2")

	_, err := svc.RecordScore(context.Background(), "g1", "p1", 1, 4, 2)
	assert.NoError(t, err)

	data, err := svc.ExportXLSX(context.Background(), "g1")
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = svc.ExportXLSX(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestStandingsChart(t *testing.T) {
	repo := NewFakeGameRepo()
	svc := newTestService(repo)
	seedGame(t, repo, "p1", "p2")

	data, err := svc.StandingsChart(context.Background(), "g1")
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}
