package gamemigrations

import (
	"context"
	"fmt"

	gamedb "github.com/the-tour-club/skins/app/modules/game/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating games and scorecards tables...")

		if _, err := db.NewCreateTable().Model((*gamedb.GameRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create games table: %w", err)
		}
		if _, err := db.NewCreateTable().Model((*gamedb.Scorecard)(nil)).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create scorecards table: %w", err)
		}
		if _, err := db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_scorecards_updated_at ON scorecards(updated_at DESC);
		`); err != nil {
			return fmt.Errorf("failed to create scorecards index: %w", err)
		}

		fmt.Println("Game tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping games and scorecards tables...")

		if _, err := db.NewDropTable().Model((*gamedb.Scorecard)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*gamedb.GameRecord)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Game tables dropped successfully!")
		return nil
	})
}
