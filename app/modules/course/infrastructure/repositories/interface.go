package coursedb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository handles persistence for user-authored courses.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, id string) (*CustomCourse, error)
	List(ctx context.Context, db bun.IDB) ([]CustomCourse, error)
	Search(ctx context.Context, db bun.IDB, term string) ([]CustomCourse, error)
	Upsert(ctx context.Context, db bun.IDB, course *CustomCourse) error
	Delete(ctx context.Context, db bun.IDB, id string) error
}
