package league

import (
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type Game struct {
	ID        uuid.UUID `db:"id" json:"id"`
	GameDate  time.Time `db:"game_date" json:"game_date"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Result struct {
	ID           uuid.UUID `db:"id" json:"id"`
	GameID       uuid.UUID `db:"game_id" json:"game_id"`
	PlayerID     uuid.UUID `db:"player_id" json:"player_id"`
	Position     *int      `db:"position" json:"position,omitempty"`
	Points       int       `db:"points" json:"points"`
	IsBubble     bool      `db:"is_bubble" json:"is_bubble"`
	IsFinalTable bool      `db:"is_final_table" json:"is_final_table"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (r Result) HasPosition(pos int) bool {
	return r.Position != nil && *r.Position == pos
}

func (r Result) IsPodium() bool {
	return r.Position != nil && *r.Position >= 1 && *r.Position <= 3
}

// PlayerResult is a result joined with the date of the game it belongs to.
type PlayerResult struct {
	Result
	GameDate time.Time `db:"game_date" json:"game_date"`
}

// DateOnly drops the clock part so that calendar dates compare cleanly.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
