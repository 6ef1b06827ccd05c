package coursemigrations

import (
	"context"
	"fmt"

	coursedb "github.com/the-tour-club/skins/app/modules/course/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating custom_courses table...")

		if _, err := db.NewCreateTable().Model((*coursedb.CustomCourse)(nil)).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create custom_courses table: %w", err)
		}
		if _, err := db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_custom_courses_name ON custom_courses(lower(name));
		`); err != nil {
			return fmt.Errorf("failed to create custom_courses index: %w", err)
		}

		fmt.Println("Course tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping custom_courses table...")

		if _, err := db.NewDropTable().Model((*coursedb.CustomCourse)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Course tables dropped successfully!")
		return nil
	})
}
