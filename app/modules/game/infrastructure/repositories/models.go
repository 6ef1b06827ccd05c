package gamedb

import (
	"time"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	"github.com/uptrace/bun"
)

// GameRecord is the persisted form of a live game. The snapshot column holds
// the full domain value; derived fields inside it are re-established on load.
type GameRecord struct {
	bun.BaseModel `bun:"table:games"`

	ID        string          `bun:"id,pk"`
	EventName string          `bun:"event_name,notnull"`
	Date      string          `bun:"date,notnull"`
	CourseID  string          `bun:"course_id,notnull"`
	Snapshot  gamedomain.Game `bun:"snapshot,type:jsonb,notnull"`
	CreatedAt time.Time       `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time       `bun:"updated_at,notnull,default:current_timestamp"`
}

// Scorecard is an archived game kept after the round is over. Newest-wins
// merges during import compare UpdatedAt.
type Scorecard struct {
	bun.BaseModel `bun:"table:scorecards"`

	ID        string          `bun:"id,pk"`
	Name      string          `bun:"name,notnull"`
	Snapshot  gamedomain.Game `bun:"snapshot,type:jsonb,notnull"`
	CreatedAt time.Time       `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time       `bun:"updated_at,notnull,default:current_timestamp"`
}
