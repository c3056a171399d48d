// Package pipeline implements the shared listing transformation used by the
// search results, store locator and recipe listing surfaces: facet filtering,
// stable sorting, and pagination, always applied in that order.
package pipeline

import (
	"sort"
)

// EmptyState distinguishes the three ways a listing can be empty. UI consumers
// render "no matches for your filters" differently from "nothing to list".
type EmptyState string

const (
	// StateOK means the page has content or the listing legitimately has items.
	StateOK EmptyState = "ok"

	// StateNoSource means the base list was empty before filtering: no records
	// exist, or no query was entered.
	StateNoSource EmptyState = "no-source"

	// StateNoMatches means records exist but the active filters excluded all
	// of them.
	StateNoMatches EmptyState = "no-matches"
)

// Predicate decides whether one record passes one filter dimension.
type Predicate[T any] func(T) bool

// AnyValue builds a predicate that passes when key(item) equals any of the
// selected values. This is the OR-within-a-dimension rule; combining
// predicates in Filter gives AND across dimensions. An empty selection passes
// everything, matching an untouched facet.
func AnyValue[T any, V comparable](selected []V, key func(T) V) Predicate[T] {
	if len(selected) == 0 {
		return func(T) bool { return true }
	}
	set := make(map[V]struct{}, len(selected))
	for _, v := range selected {
		set[v] = struct{}{}
	}
	return func(item T) bool {
		_, ok := set[key(item)]
		return ok
	}
}

// Filter returns the records passing every predicate. With no predicates the
// input slice is returned unchanged, so an empty filter set is an identity.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	if len(preds) == 0 {
		return items
	}
	var out []T
	for _, item := range items {
		keep := true
		for _, pred := range preds {
			if pred != nil && !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// SortBy stable-sorts a copy of items, leaving the input untouched. Ties keep
// their pre-sort relative order. A nil less returns a plain copy.
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// Page is one slice of a listing plus its pagination metadata.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	Size       int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices items into 1-indexed fixed-size pages. A page beyond the
// last valid page yields an empty slice, never an error.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start >= total {
		return Page[T]{Items: []T{}, Number: page, Size: size, TotalItems: total, TotalPages: totalPages}
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{Items: items[start:end], Number: page, Size: size, TotalItems: total, TotalPages: totalPages}
}

// Result is one fully derived listing page plus its empty-state marker.
type Result[T any] struct {
	Page[T]
	State EmptyState `json:"state"`
}

// Run executes the fixed stage order (filter, then sort, then paginate) over
// a base list. The order must not change: filters see unsorted records,
// pagination sees the sorted filtered list.
func Run[T any](base []T, preds []Predicate[T], less func(a, b T) bool, page, size int) Result[T] {
	state := StateOK
	if len(base) == 0 {
		state = StateNoSource
	}

	filtered := Filter(base, preds...)
	if state == StateOK && len(filtered) == 0 {
		state = StateNoMatches
	}

	sorted := SortBy(filtered, less)
	return Result[T]{Page: Paginate(sorted, page, size), State: state}
}
