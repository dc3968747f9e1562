// Package querycache implements the shared query-result cache: structured
// keys, TTL staleness, subtree invalidation, and request de-duplication.
// Mutations never write into the cache; they invalidate, and the next read
// is authoritative.
package querycache

import "strings"

// Key identifies one cached query as a resource-type / id / sub-resource
// tuple, e.g. {games, 42, statistics}. Empty segments are simply omitted
// from the rendered form, so {games,"",""} addresses the games list.
type Key struct {
	Resource string
	ID       string
	Sub      string
}

// String renders the key as "resource/id/sub" with empty segments dropped.
func (k Key) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{k.Resource, k.ID, k.Sub} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

// matchesPrefix reports whether a rendered key falls under prefix: either
// the key itself or anything below it. "games/4" does not match "games/42".
func matchesPrefix(key, prefix string) bool {
	return key == prefix || strings.HasPrefix(key, prefix+"/")
}
