package pipeline

// ListState tracks one listing surface's UI state: active facet predicates, a
// sort key, and the current page. Changing any filter or the sort resets the
// page to 1; changing the page alone only re-slices on the next Apply.
type ListState[T any] struct {
	preds    map[string]Predicate[T]
	less     func(a, b T) bool
	page     int
	pageSize int
}

// NewListState creates a listing state on page 1 with the given page size.
func NewListState[T any](pageSize int) *ListState[T] {
	return &ListState[T]{
		preds:    make(map[string]Predicate[T]),
		page:     1,
		pageSize: pageSize,
	}
}

// SetFilter replaces the predicate for one facet dimension and resets the page.
// A nil predicate clears the dimension.
func (s *ListState[T]) SetFilter(dimension string, pred Predicate[T]) {
	if pred == nil {
		delete(s.preds, dimension)
	} else {
		s.preds[dimension] = pred
	}
	s.page = 1
}

// SetSort replaces the sort key and resets the page.
func (s *ListState[T]) SetSort(less func(a, b T) bool) {
	s.less = less
	s.page = 1
}

// SetPage moves to a page without re-running filtering or sorting semantics;
// pages below 1 clamp to 1.
func (s *ListState[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

// Page returns the current 1-indexed page number.
func (s *ListState[T]) Page() int {
	return s.page
}

// Apply derives the current listing page from a base list.
func (s *ListState[T]) Apply(base []T) Result[T] {
	preds := make([]Predicate[T], 0, len(s.preds))
	for _, p := range s.preds {
		preds = append(preds, p)
	}
	return Run(base, preds, s.less, s.page, s.pageSize)
}
