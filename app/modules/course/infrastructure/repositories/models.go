package coursedb

import (
	"time"

	"github.com/uptrace/bun"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// CustomCourse is a user-authored layout. The full layout is stored as a
// JSONB document; name and location are denormalized for search.
type CustomCourse struct {
	bun.BaseModel `bun:"table:custom_courses"`

	ID        string            `bun:"id,pk"`
	Name      string            `bun:"name,notnull"`
	Location  string            `bun:"location"`
	Layout    gamedomain.Course `bun:"layout,type:jsonb,notnull"`
	CreatedAt time.Time         `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time         `bun:"updated_at,notnull,default:current_timestamp"`
}
