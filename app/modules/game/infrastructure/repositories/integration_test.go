package gamedb_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	coursedomain "github.com/the-tour-club/skins/app/modules/course/domain"
	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	gamedb "github.com/the-tour-club/skins/app/modules/game/infrastructure/repositories"
	gamemigrations "github.com/the-tour-club/skins/app/modules/game/infrastructure/repositories/migrations"
	"github.com/the-tour-club/skins/integration_tests/containers"
	"github.com/the-tour-club/skins/integration_tests/testutils"
	"github.com/the-tour-club/skins/internal/db/bundb"
)

func setupDB(t *testing.T) *bun.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	testcontainers.CleanupContainer(t, container)

	db, err := bundb.NewBunDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrator := migrate.NewMigrator(db, gamemigrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	return db
}

func sampleGame(t *testing.T) gamedomain.Game {
	t.Helper()
	course, ok := coursedomain.BuiltinCourse("pebble-beach")
	require.True(t, ok)

	game := gamedomain.NewGame("g1", "2025-06-14", course, []gamedomain.PlayerSetup{
		{ID: "p1", Name: "Alice", Color: "#ff0000"},
		{ID: "p2", Name: "Bob"},
	})
	game = gamedomain.RecordScore(game, "p1", 1, 3, 1)
	game = gamedomain.RecordScore(game, "p2", 1, 5, 2)
	game = gamedomain.SetSandyHole(game, 2, true)
	game = gamedomain.SetSandy(game, 2, "p1", true)
	return game
}

func TestGameSnapshotRoundTripsThroughPostgres(t *testing.T) {
	db := setupDB(t)
	repo := gamedb.NewRepository(db)
	ctx := context.Background()

	game := sampleGame(t)
	record := &gamedb.GameRecord{
		ID:        game.ID,
		EventName: "Saturday Skins",
		Date:      game.Date,
		CourseID:  game.Course.ID,
		Snapshot:  game,
	}
	require.NoError(t, repo.Upsert(ctx, nil, record))

	loaded, err := repo.GetByID(ctx, nil, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Saturday Skins", loaded.EventName)
	if diff := cmp.Diff(game, loaded.Snapshot); diff != "" {
		t.Errorf("snapshot changed through JSONB round trip (-want +got):\n%s", diff)
	}

	// Upsert replaces in place.
	updated := gamedomain.RecordScore(game, "p2", 2, 4, 2)
	record.Snapshot = updated
	require.NoError(t, repo.Upsert(ctx, nil, record))

	loaded, err = repo.GetByID(ctx, nil, "g1")
	require.NoError(t, err)
	if diff := cmp.Diff(updated, loaded.Snapshot); diff != "" {
		t.Errorf("updated snapshot mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, repo.Delete(ctx, nil, "g1"))
	_, err = repo.GetByID(ctx, nil, "g1")
	assert.ErrorIs(t, err, gamedb.ErrNotFound)
}

func TestScorecardOrderingAndTimestamps(t *testing.T) {
	db := setupDB(t)
	repo := gamedb.NewRepository(db)
	ctx := context.Background()

	game := sampleGame(t)
	older := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)

	// Imported scorecards keep their own timestamps.
	require.NoError(t, repo.UpsertScorecard(ctx, nil, &gamedb.Scorecard{
		ID:        "sc-old",
		Name:      "Last Week",
		Snapshot:  game,
		CreatedAt: older,
		UpdatedAt: older,
	}))

	// Fresh saves get stamped now.
	require.NoError(t, repo.UpsertScorecard(ctx, nil, &gamedb.Scorecard{
		ID:       "sc-new",
		Name:     "Today",
		Snapshot: game,
	}))

	scorecards, err := repo.ListScorecards(ctx, nil)
	require.NoError(t, err)
	require.Len(t, scorecards, 2)
	assert.Equal(t, "sc-new", scorecards[0].ID, "newest first")
	assert.Equal(t, "sc-old", scorecards[1].ID)
	assert.WithinDuration(t, older, scorecards[1].UpdatedAt, time.Second)

	require.NoError(t, repo.DeleteScorecard(ctx, nil, "sc-old"))
	_, err = repo.GetScorecard(ctx, nil, "sc-old")
	assert.ErrorIs(t, err, gamedb.ErrScorecardNotFound)
}

func TestGeneratedGamesRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := gamedb.NewRepository(db)
	ctx := context.Background()

	course, ok := coursedomain.BuiltinCourse("st-andrews-old")
	require.True(t, ok)

	gen := testutils.NewTestDataGenerator(42)
	t.Logf("data generator seed: %d", gen.Seed())

	const games = 5
	for i := 0; i < games; i++ {
		id := fmt.Sprintf("gen-%d", i)
		game := gen.GenerateGame(id, course, 4, 9)
		require.NoError(t, repo.Upsert(ctx, nil, &gamedb.GameRecord{
			ID:       id,
			Date:     game.Date,
			CourseID: game.Course.ID,
			Snapshot: game,
		}))

		loaded, err := repo.GetByID(ctx, nil, id)
		require.NoError(t, err)
		if diff := cmp.Diff(game, loaded.Snapshot); diff != "" {
			t.Errorf("generated snapshot mismatch for %s (-want +got):\n%s", id, diff)
		}
		assert.Len(t, loaded.Snapshot.Players, 4)
	}
}
