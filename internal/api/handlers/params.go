package handlers

import (
	"net/url"
	"strconv"
	"strings"
)

// Query-parameter parsing helpers shared by the listing handlers. Multi-value
// facets accept both repeated parameters and comma-separated lists.

func queryValues(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func queryInt(values url.Values, key string, fallback int) int {
	if raw := values.Get(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return fallback
}

func queryFloat(values url.Values, key string) (float64, bool) {
	raw := values.Get(key)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func queryBool(values url.Values, key string) bool {
	b, err := strconv.ParseBool(values.Get(key))
	return err == nil && b
}
