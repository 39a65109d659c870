package league

import (
	"time"

	"github.com/google/uuid"
)

type Player struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Builds a lookup by id, used to drop results that point at unknown players
func rosterByID(players []Player) map[uuid.UUID]Player {
	roster := make(map[uuid.UUID]Player, len(players))
	for _, p := range players {
		roster[p.ID] = p
	}
	return roster
}
