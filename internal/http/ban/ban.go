package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tracker records failed admin-key attempts per client address in Redis
// and temporarily blocks addresses that keep guessing. It is optional:
// a nil *Tracker disables tracking entirely.
type Tracker struct {
	rdb         *redis.Client
	maxStrikes  int64
	strikeTTL   time.Duration
	banDuration time.Duration
}

func NewTracker(rdb *redis.Client) *Tracker {
	return &Tracker{
		rdb:         rdb,
		maxStrikes:  5,
		strikeTTL:   15 * time.Minute,
		banDuration: time.Hour,
	}
}

const banLogKey = "authban:log"

func strikeKey(ip string) string { return "authban:strikes:" + ip }
func banKey(ip string) string    { return "authban:banned:" + ip }

// Strike counts one failed key attempt. Crossing the limit bans the
// address for the ban duration.
func (t *Tracker) Strike(ctx context.Context, ip, route string) {
	key := strikeKey(ip)
	strikes, err := t.rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("ban: failed to record strike for %s: %v", ip, err)
		return
	}
	if strikes == 1 {
		t.rdb.Expire(ctx, key, t.strikeTTL)
	}
	if strikes > t.maxStrikes {
		if err := t.rdb.Set(ctx, banKey(ip), route, t.banDuration).Err(); err != nil {
			log.Printf("ban: failed to ban %s: %v", ip, err)
			return
		}
		t.logBanEvent(ctx, ip, route, strikes)
		log.Printf("ban: blocked %s for %s after %d bad keys on %s", ip, t.banDuration, strikes, route)
	}
}

// IsBanned reports whether the address is currently blocked. Redis
// errors fail open so an unavailable Redis never locks everyone out.
func (t *Tracker) IsBanned(ctx context.Context, ip string) bool {
	n, err := t.rdb.Exists(ctx, banKey(ip)).Result()
	if err != nil {
		return false
	}
	return n > 0
}

type banLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int64     `json:"strikes"`
	Time    time.Time `json:"time"`
}

func (t *Tracker) logBanEvent(ctx context.Context, ip, route string, strikes int64) {
	entry := banLogEntry{Target: ip, Route: route, Strikes: strikes, Time: time.Now()}
	data, _ := json.Marshal(entry)
	_ = t.rdb.RPush(ctx, banLogKey, data).Err()
}

// LogSummary drains the ban log and writes a one-line summary to the
// server log. Run periodically from main.
func (t *Tracker) LogSummary(ctx context.Context) {
	entries, err := t.rdb.LRange(ctx, banLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = t.rdb.Del(ctx, banLogKey).Err()

	targets := make(map[string]int)
	for _, raw := range entries {
		var entry banLogEntry
		if err := json.Unmarshal([]byte(raw), &entry); err == nil {
			targets[entry.Target]++
		}
	}
	log.Printf("ban: %d bans since last summary across %d addresses %s", len(entries), len(targets), formatTargets(targets))
}

func formatTargets(targets map[string]int) string {
	out := ""
	for ip, n := range targets {
		out += fmt.Sprintf(" %s=%d", ip, n)
	}
	return "(" + out + " )"
}

// StartSummaryLoop logs a ban summary on the given interval.
func (t *Tracker) StartSummaryLoop(ctx context.Context, interval time.Duration) {
	for {
		time.Sleep(interval)
		t.LogSummary(ctx)
	}
}
