package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id   string
	kind string
	rank int
}

var fixture = []item{
	{"a", "grocery", 3},
	{"b", "convenience", 1},
	{"c", "grocery", 2},
	{"d", "department", 2},
	{"e", "grocery", 1},
}

func TestFilter_EmptyPredicateSetIsIdentity(t *testing.T) {
	out := Filter(fixture)
	assert.Equal(t, fixture, out)
}

func TestFilter_ANDAcrossDimensions_ORWithin(t *testing.T) {
	kind := AnyValue([]string{"grocery", "convenience"}, func(i item) string { return i.kind })
	rank := AnyValue([]int{1}, func(i item) int { return i.rank })

	out := Filter(fixture, kind, rank)

	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].id)
	assert.Equal(t, "e", out[1].id)
}

func TestAnyValue_EmptySelectionPassesAll(t *testing.T) {
	pred := AnyValue(nil, func(i item) string { return i.kind })
	assert.Len(t, Filter(fixture, pred), len(fixture))
}

func TestSortBy_StableOnTies(t *testing.T) {
	byRank := func(a, b item) bool { return a.rank < b.rank }

	out := SortBy(fixture, byRank)

	ids := make([]string, 0, len(out))
	for _, i := range out {
		ids = append(ids, i.id)
	}
	// rank 1: b before e, rank 2: c before d, preserving input order
	assert.Equal(t, []string{"b", "e", "c", "d", "a"}, ids)

	// repeated runs keep the same tie order
	again := SortBy(fixture, byRank)
	assert.Equal(t, out, again)

	// the input itself is untouched
	assert.Equal(t, "a", fixture[0].id)
}

func TestPaginate_PageMath(t *testing.T) {
	p := Paginate(fixture, 1, 2)
	assert.Len(t, p.Items, 2)
	assert.Equal(t, 5, p.TotalItems)
	assert.Equal(t, 3, p.TotalPages)

	last := Paginate(fixture, 3, 2)
	assert.Len(t, last.Items, 1)
}

func TestPaginate_PageBeyondLastIsEmptyNotError(t *testing.T) {
	p := Paginate(fixture, 9, 2)
	assert.Empty(t, p.Items)
	assert.Equal(t, 3, p.TotalPages)
}

func TestRun_EmptyStates(t *testing.T) {
	none := AnyValue([]string{"bakery"}, func(i item) string { return i.kind })

	r := Run(fixture, []Predicate[item]{none}, nil, 1, 10)
	assert.Equal(t, StateNoMatches, r.State)
	assert.Empty(t, r.Items)

	r = Run([]item{}, nil, nil, 1, 10)
	assert.Equal(t, StateNoSource, r.State)

	r = Run(fixture, nil, nil, 1, 10)
	assert.Equal(t, StateOK, r.State)
	assert.Len(t, r.Items, 5)
}

func TestListState_FilterAndSortResetPage(t *testing.T) {
	s := NewListState[item](2)
	s.SetPage(3)
	require.Equal(t, 3, s.Page())

	s.SetFilter("kind", AnyValue([]string{"grocery"}, func(i item) string { return i.kind }))
	assert.Equal(t, 1, s.Page())

	s.SetPage(2)
	s.SetSort(func(a, b item) bool { return a.id < b.id })
	assert.Equal(t, 1, s.Page())
}

func TestListState_PageChangeOnlyReslices(t *testing.T) {
	s := NewListState[item](2)
	s.SetSort(func(a, b item) bool { return a.rank < b.rank })

	first := s.Apply(fixture)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "b", first.Items[0].id)

	s.SetPage(2)
	second := s.Apply(fixture)
	require.Len(t, second.Items, 2)
	assert.Equal(t, "c", second.Items[0].id)
	assert.Equal(t, first.TotalItems, second.TotalItems)
}

func TestListState_ClearFilterDimension(t *testing.T) {
	s := NewListState[item](10)
	s.SetFilter("kind", AnyValue([]string{"department"}, func(i item) string { return i.kind }))
	require.Len(t, s.Apply(fixture).Items, 1)

	s.SetFilter("kind", nil)
	assert.Len(t, s.Apply(fixture).Items, len(fixture))
}
