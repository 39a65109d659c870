package service

import (
	"context"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/AdamBeresnev/poker-league/internal/live"
)

// RosterCache holds a snapshot of the player roster between requests.
// Set must refuse a snapshot whose generation was overtaken by Invalidate.
// *cache.RosterCache satisfies it.
type RosterCache interface {
	Get(ctx context.Context) ([]league.Player, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, players []league.Player, generation int64) (bool, error)
	Invalidate(ctx context.Context) error
}

// Notifier is told about every committed write. *live.Hub satisfies it.
type Notifier interface {
	Publish(e live.Event)
}

type nopNotifier struct{}

func (nopNotifier) Publish(live.Event) {}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
