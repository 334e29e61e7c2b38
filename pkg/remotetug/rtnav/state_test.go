package rtnav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreadcrumbOf(t *testing.T) {
	t.Run("root", func(t *testing.T) {
		assert.Equal(t, []Breadcrumb{{Label: "Home", Path: "", Active: true}}, BreadcrumbOf(""))
	})

	t.Run("nested", func(t *testing.T) {
		assert.Equal(t, []Breadcrumb{
			{Label: "Home", Path: ""},
			{Label: "docs", Path: "docs"},
			{Label: "2024", Path: "docs/2024", Active: true},
		}, BreadcrumbOf("docs/2024"))
	})

	t.Run("empty_segments_ignored", func(t *testing.T) {
		crumbs := BreadcrumbOf("/docs//2024/")
		assert.Len(t, crumbs, 3)
		assert.Equal(t, "docs/2024", crumbs[2].Path)
	})

	t.Run("pure", func(t *testing.T) {
		assert.Equal(t, BreadcrumbOf("a/b/c"), BreadcrumbOf("a/b/c"))
	})
}

func TestState_NavigateTo(t *testing.T) {
	s := New("", ViewModeList)
	assert.Equal(t, "", s.CurrentPath())

	s.NavigateTo("docs/2024")
	assert.Equal(t, "docs/2024", s.CurrentPath())
	assert.Equal(t, "2024", s.Breadcrumbs()[2].Label)

	s.NavigateTo("")
	assert.Equal(t, "", s.CurrentPath())
	assert.Len(t, s.Breadcrumbs(), 1)
}

func TestState_ViewMode(t *testing.T) {
	s := New("docs", ViewModeList)
	s.SetViewMode(ViewModeGrid)
	assert.Equal(t, ViewModeGrid, s.ViewMode())
	assert.Equal(t, "docs", s.CurrentPath())

	assert.Equal(t, ViewModeList, s.ToggleViewMode())
	assert.Equal(t, ViewModeGrid, s.ToggleViewMode())
}

func TestParseViewMode(t *testing.T) {
	for _, tt := range []struct {
		in      string
		want    ViewMode
		wantErr bool
	}{
		{"", ViewModeList, false},
		{"list", ViewModeList, false},
		{" Grid ", ViewModeGrid, false},
		{"tiles", ViewModeList, true},
	} {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseViewMode(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.Equal(t, "grid", ViewModeGrid.String())
	assert.Equal(t, "list", ViewModeList.String())
}
