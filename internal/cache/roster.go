package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/redis/go-redis/v9"
)

const (
	rosterKey = "league:roster"
	// Bumped by every Invalidate so refills that loaded the roster before a
	// write can tell they are out of date.
	generationKey = "league:roster:gen"
)

// RosterCache holds the last roster snapshot. The caller decides when it is
// stale and invalidates it after writes.
type RosterCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRosterCache(rdb *redis.Client, ttl time.Duration) *RosterCache {
	return &RosterCache{rdb: rdb, ttl: ttl}
}

// Connect parses a redis:// URL and checks the server is reachable
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func (c *RosterCache) Get(ctx context.Context) ([]league.Player, bool, error) {
	raw, err := c.rdb.Get(ctx, rosterKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var players []league.Player
	if err := json.Unmarshal(raw, &players); err != nil {
		return nil, false, fmt.Errorf("decode cached roster: %w", err)
	}
	return players, true, nil
}

// Generation reports the invalidation counter. Read it before loading the
// roster from the database and hand it to Set.
func (c *RosterCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set stores the snapshot unless the roster was invalidated after generation
// was read. It reports whether the snapshot was stored.
func (c *RosterCache) Set(ctx context.Context, players []league.Player, generation int64) (bool, error) {
	if players == nil {
		players = []league.Player{}
	}
	raw, err := json.Marshal(players)
	if err != nil {
		return false, err
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return redis.TxFailedErr
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, rosterKey, raw, c.ttl)
			return nil
		})
		return err
	}, generationKey)

	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *RosterCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, rosterKey)
		pipe.Incr(ctx, generationKey)
		return nil
	})
	return err
}
