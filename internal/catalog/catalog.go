// Package catalog provides the in-memory entity stores behind the discovery
// API: products, retail stores, recipes, and static page descriptors. Each
// catalog is a constant ordered list seeded at build time; adapters expose
// read-only lookups and case-insensitive substring search over it.
package catalog

import (
	"strings"
)

// containsFold reports whether s contains substr, case-insensitively. An empty
// substr matches every string, which is load-bearing for search: the raw
// per-entity Search helpers do not guard against empty queries, the unified
// search rejects queries under two characters before fanning out.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// anyContainsFold reports whether any element of list contains substr,
// case-insensitively.
func anyContainsFold(list []string, substr string) bool {
	for _, s := range list {
		if containsFold(s, substr) {
			return true
		}
	}
	return false
}

// normalizeQuery lowercases and trims a raw query once so the per-field checks
// stay cheap.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
