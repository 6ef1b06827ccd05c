package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new course repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetByID retrieves a custom course by its ID.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id string) (*CustomCourse, error) {
	db = r.resolveDB(db)
	course := new(CustomCourse)
	err := db.NewSelect().
		Model(course).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get course by ID: %w", err)
	}
	return course, nil
}

// List returns all custom courses, most recently updated first.
func (r *Impl) List(ctx context.Context, db bun.IDB) ([]CustomCourse, error) {
	db = r.resolveDB(db)
	var courses []CustomCourse
	err := db.NewSelect().
		Model(&courses).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// Search returns custom courses whose name or location contains term,
// case-insensitive.
func (r *Impl) Search(ctx context.Context, db bun.IDB, term string) ([]CustomCourse, error) {
	db = r.resolveDB(db)
	var courses []CustomCourse
	pattern := "%" + term + "%"
	err := db.NewSelect().
		Model(&courses).
		Where("name ILIKE ? OR location ILIKE ?", pattern, pattern).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	return courses, nil
}

// Upsert creates or replaces a custom course.
func (r *Impl) Upsert(ctx context.Context, db bun.IDB, course *CustomCourse) error {
	db = r.resolveDB(db)
	course.UpdatedAt = time.Now()
	_, err := db.NewInsert().
		Model(course).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("location = EXCLUDED.location").
		Set("layout = EXCLUDED.layout").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert course: %w", err)
	}
	return nil
}

// Delete removes a custom course.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, id string) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*CustomCourse)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
