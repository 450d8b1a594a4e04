// Package cache memoizes an expensive pure computation — shanten over a
// 34-kind histogram has a small, heavily repeated key space — behind a
// two-tier cache: ristretto in-process,
// falling back to redis for cross-process sharing when the engine runs
// as more than one worker. Grounded on the teacher's GeneralCache
// (common/cache/ristretto.go) for the local tier and RedisManager
// (common/database/redis.go) for the distributed tier.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/redis/go-redis/v9"

	"riichi/log"
	"riichi/mahjong/tile"
)

// Local is an in-process TTL cache over arbitrary small values.
type Local struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewLocal builds a local cache with maxCost bytes of budget (ristretto's
// cost unit, not a strict byte count) and the given default TTL.
func NewLocal(maxCost int64, ttl time.Duration) (*Local, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("cache: building local ristretto cache: %w", err)
	}
	return &Local{cache: c, ttl: ttl}, nil
}

func (l *Local) Set(key string, value interface{}) bool {
	return l.cache.SetWithTTL(key, value, 1, l.ttl)
}

func (l *Local) Get(key string) (interface{}, bool) {
	return l.cache.Get(key)
}

func (l *Local) Close() { l.cache.Close() }

// Distributed fronts a redis client for the second tier. A nil Client
// (no redis configured) makes every call a clean miss/no-op, so callers
// never need to branch on whether the distributed tier is wired up.
type Distributed struct {
	cli *redis.Client
	ttl time.Duration
}

// NewDistributed builds a distributed cache. addr == "" disables it.
func NewDistributed(addr, password string, poolSize int, ttl time.Duration) *Distributed {
	if addr == "" {
		return &Distributed{ttl: ttl}
	}
	cli := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		PoolSize: poolSize,
	})
	return &Distributed{cli: cli, ttl: ttl}
}

func (d *Distributed) Get(ctx context.Context, key string, dest interface{}) bool {
	if d.cli == nil {
		return false
	}
	raw, err := d.cli.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (d *Distributed) Set(ctx context.Context, key string, value interface{}) {
	if d.cli == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := d.cli.Set(ctx, key, raw, d.ttl).Err(); err != nil {
		log.Warn("cache: redis set failed for %s: %v", key, err)
	}
}

func (d *Distributed) Close() error {
	if d.cli == nil {
		return nil
	}
	return d.cli.Close()
}

// ShantenCache memoizes shanten.Min results keyed by histogram + melded
// group count. The round controller consults it through its optional
// Shanten field, once per seat during exhaustive-draw settlement.
type ShantenCache struct {
	local *Local
	dist  *Distributed
}

// NewShantenCache wires a local tier in front of an optional distributed
// tier.
func NewShantenCache(local *Local, dist *Distributed) *ShantenCache {
	return &ShantenCache{local: local, dist: dist}
}

// Get looks up a previously computed shanten value for key.
func (c *ShantenCache) Get(ctx context.Context, key string) (int, bool) {
	if v, ok := c.local.Get(key); ok {
		if n, ok := v.(int); ok {
			return n, true
		}
	}
	var n int
	if c.dist.Get(ctx, key, &n) {
		c.local.Set(key, n)
		return n, true
	}
	return 0, false
}

// Put stores a computed shanten value under key in both tiers.
func (c *ShantenCache) Put(ctx context.Context, key string, value int) {
	c.local.Set(key, value)
	c.dist.Set(ctx, key, value)
}

// HistogramKey builds a stable cache key from a 34-kind histogram plus
// the melded-group count, the full input to shanten.Min.
func HistogramKey(h tile.Histogram34, meldedGroups int) string {
	var b strings.Builder
	b.Grow(tile.NumKinds*2 + 4)
	for _, c := range h {
		b.WriteByte('0' + c)
	}
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(meldedGroups))
	return b.String()
}
