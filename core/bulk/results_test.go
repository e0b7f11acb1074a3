package bulk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowMapping(t *testing.T) {
	t.Run("Multiple Rows Per Resource", func(t *testing.T) {
		m := NewRowMapping()
		m.Add("customers/1/assets/-4000", RowRef{Sheet: "Assets", Row: 3})
		m.Add("customers/1/assets/-4000", RowRef{Sheet: "NewAssetGroups", Row: 0})

		assert.True(t, m.Has("customers/1/assets/-4000"))
		assert.Len(t, m.Rows("customers/1/assets/-4000"), 2)
	})

	t.Run("Duplicate Refs Collapse", func(t *testing.T) {
		m := NewRowMapping()
		ref := RowRef{Sheet: "Assets", Row: 3}
		m.Add("customers/1/assets/-4000", ref)
		m.Add("customers/1/assets/-4000", ref)

		assert.Len(t, m.Rows("customers/1/assets/-4000"), 1)
	})

	t.Run("Empty Resource Ignored", func(t *testing.T) {
		m := NewRowMapping()
		m.Add("", RowRef{Sheet: "Assets", Row: 3})
		assert.False(t, m.Has(""))
	})
}

func TestResultSet(t *testing.T) {
	t.Run("Neutral Until Touched", func(t *testing.T) {
		s := NewResultSet()
		ref := RowRef{Sheet: "Assets", Row: 0}
		s.Init(ref)

		r, ok := s.Get(ref)
		assert.True(t, ok)
		assert.Empty(t, r.Status)

		_, ok = s.Get(RowRef{Sheet: "Assets", Row: 99})
		assert.False(t, ok)
	})

	t.Run("Error Messages Accumulate", func(t *testing.T) {
		s := NewResultSet()
		ref := RowRef{Sheet: "Assets", Row: 1}

		s.MarkError(ref, "TEXT_TOO_LONG: text too long")
		s.MarkError(ref, "DUPLICATE_ASSET: duplicate")

		r, _ := s.Get(ref)
		assert.Equal(t, StatusError, r.Status)
		assert.Equal(t, "TEXT_TOO_LONG: text too long; DUPLICATE_ASSET: duplicate", r.Message)
	})

	t.Run("Uploaded Never Overrides Error", func(t *testing.T) {
		s := NewResultSet()
		ref := RowRef{Sheet: "Assets", Row: 2}

		s.MarkError(ref, "boom")
		s.MarkUploaded(ref, "customers/1/assets/42")

		r, _ := s.Get(ref)
		assert.Equal(t, StatusError, r.Status)
		assert.Equal(t, "boom", r.Message)
	})

	t.Run("Error After Uploaded Wins", func(t *testing.T) {
		s := NewResultSet()
		ref := RowRef{Sheet: "Assets", Row: 3}

		s.MarkUploaded(ref, "customers/1/assets/42")
		s.MarkError(ref, "link rejected")

		r, _ := s.Get(ref)
		assert.Equal(t, StatusError, r.Status)
	})

	t.Run("Uploaded Keeps Last Resource", func(t *testing.T) {
		s := NewResultSet()
		ref := RowRef{Sheet: "Assets", Row: 4}

		s.MarkUploaded(ref, "customers/1/assets/42")
		s.MarkUploaded(ref, "customers/1/assetGroupAssets/10~42~HEADLINE")
		s.MarkUploaded(ref, "")

		r, _ := s.Get(ref)
		assert.Equal(t, StatusUploaded, r.Status)
		assert.Equal(t, "customers/1/assetGroupAssets/10~42~HEADLINE", r.ResourceName)
	})

	t.Run("Refs Sorted", func(t *testing.T) {
		s := NewResultSet()
		s.Init(RowRef{Sheet: "B", Row: 1})
		s.Init(RowRef{Sheet: "A", Row: 2})
		s.Init(RowRef{Sheet: "A", Row: 0})

		refs := s.Refs()
		assert.Equal(t, []RowRef{{"A", 0}, {"A", 2}, {"B", 1}}, refs)
	})
}
