package query_test

import (
	"testing"

	"go-ems/internal/query"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID   int
	Name string
	Rank int
}

func names(rs []record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	records := []record{
		{ID: 1, Name: "Ada Lovelace"},
		{ID: 2, Name: "Grace Hopper"},
		{ID: 3, Name: "Alan Turing"},
		{ID: 4, Name: "ada byron"},
	}
	nameField := func(r record) string { return r.Name }

	t.Run("empty term keeps everything", func(t *testing.T) {
		got := query.Filter(records, "", nameField)
		assert.Equal(t, records, got)
	})

	t.Run("case-insensitive substring, order preserved", func(t *testing.T) {
		got := query.Filter(records, "ADA", nameField)
		assert.Equal(t, []string{"Ada Lovelace", "ada byron"}, names(got))
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		got := query.Filter(records, "zzz", nameField)
		assert.Empty(t, got)
	})

	t.Run("matches across multiple fields", func(t *testing.T) {
		idField := func(r record) string {
			if r.ID == 3 {
				return "special"
			}
			return ""
		}
		got := query.Filter(records, "special", nameField, idField)
		assert.Equal(t, []string{"Alan Turing"}, names(got))
	})
}

func TestSortStable(t *testing.T) {
	byRank := func(a, b record) bool { return a.Rank < b.Rank }

	t.Run("ascending", func(t *testing.T) {
		records := []record{
			{Name: "c", Rank: 3},
			{Name: "a", Rank: 1},
			{Name: "b", Rank: 2},
		}
		got := query.SortStable(records, byRank, false)
		assert.Equal(t, []string{"a", "b", "c"}, names(got))
	})

	t.Run("descending", func(t *testing.T) {
		records := []record{
			{Name: "a", Rank: 1},
			{Name: "c", Rank: 3},
			{Name: "b", Rank: 2},
		}
		got := query.SortStable(records, byRank, true)
		assert.Equal(t, []string{"c", "b", "a"}, names(got))
	})

	t.Run("equal keys keep original order in both directions", func(t *testing.T) {
		records := []record{
			{Name: "first", Rank: 5},
			{Name: "second", Rank: 5},
			{Name: "third", Rank: 5},
		}
		asc := query.SortStable(records, byRank, false)
		assert.Equal(t, []string{"first", "second", "third"}, names(asc))

		desc := query.SortStable(records, byRank, true)
		assert.Equal(t, []string{"first", "second", "third"}, names(desc))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		records := []record{
			{Name: "b", Rank: 2},
			{Name: "a", Rank: 1},
		}
		_ = query.SortStable(records, byRank, false)
		assert.Equal(t, []string{"b", "a"}, names(records))
	})
}

func TestPage(t *testing.T) {
	records := []record{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
	}

	t.Run("first page", func(t *testing.T) {
		got := query.Page(records, 1, 2)
		assert.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("last partial page", func(t *testing.T) {
		got := query.Page(records, 3, 2)
		assert.Len(t, got, 1)
		assert.Equal(t, 5, got[0].ID)
	})

	t.Run("past the end is empty, not an error", func(t *testing.T) {
		got := query.Page(records, 4, 2)
		assert.Empty(t, got)
	})

	t.Run("non-positive page and size are clamped", func(t *testing.T) {
		got := query.Page(records, 0, 0)
		assert.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("concatenating all pages reconstructs the input", func(t *testing.T) {
		var all []record
		for p := 1; p <= 3; p++ {
			all = append(all, query.Page(records, p, 2)...)
		}
		assert.Equal(t, records, all)
	})
}
