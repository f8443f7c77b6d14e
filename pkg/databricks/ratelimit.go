package databricks

import (
	"strings"
	"sync"
	"time"
)

// rateLimitCache remembers, per endpoint class, the earliest instant the
// server asked us to come back at. It is a best-effort hint store: a stale
// read merely produces a slightly wrong wait, never a correctness problem.
type rateLimitCache struct {
	holds sync.Map // endpoint class -> time.Time
}

// note records a retry-after hint for the class. Later hints win.
func (c *rateLimitCache) note(class string, retryAfter time.Duration) {
	if retryAfter <= 0 {
		return
	}
	c.holds.Store(class, time.Now().Add(retryAfter))
}

// hold returns how long callers should wait before touching the class.
// Expired entries are dropped on read.
func (c *rateLimitCache) hold(class string) time.Duration {
	v, ok := c.holds.Load(class)
	if !ok {
		return 0
	}
	until, ok := v.(time.Time)
	if !ok {
		return 0
	}
	remaining := time.Until(until)
	if remaining <= 0 {
		c.holds.Delete(class)
		return 0
	}
	return remaining
}

// endpointClass folds an API path into a coarse rate-limit bucket derived
// from the segments after the /api/<version>/ prefix. Most surfaces bucket
// on the first segment ("/api/2.0/clusters/list" -> "clusters"); the sql,
// unity-catalog and preview umbrellas are split one level deeper
// ("/api/2.0/sql/warehouses/abc" -> "sql/warehouses").
func endpointClass(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return "default"
	}
	segments := strings.Split(trimmed, "/")
	// Drop the "api" and version segments when present.
	if len(segments) >= 2 && segments[0] == "api" {
		segments = segments[2:]
	}
	switch {
	case len(segments) == 0:
		return "default"
	case segments[0] == "sql" || segments[0] == "unity-catalog" || segments[0] == "preview":
		if len(segments) >= 2 {
			return segments[0] + "/" + segments[1]
		}
		return segments[0]
	default:
		return segments[0]
	}
}
