// Package rtnav keeps the directory the user is looking at and how it is shown.
package rtnav

import (
	"fmt"
	"strings"

	"github.com/datatug/remotetug/pkg/files"
)

const HomeLabel = "Home"

type ViewMode int

const (
	ViewModeList ViewMode = iota
	ViewModeGrid
)

func (m ViewMode) String() string {
	switch m {
	case ViewModeGrid:
		return "grid"
	default:
		return "list"
	}
}

func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "list":
		return ViewModeList, nil
	case "grid":
		return ViewModeGrid, nil
	default:
		return ViewModeList, fmt.Errorf("unknown view mode %q", s)
	}
}

// Breadcrumb is one clickable step from Home to the current directory.
type Breadcrumb struct {
	Label  string
	Path   string
	Active bool
}

// State is owned by the UI goroutine.
type State struct {
	currentPath string
	viewMode    ViewMode
}

func New(path string, mode ViewMode) *State {
	return &State{currentPath: files.CleanPath(path), viewMode: mode}
}

func (s *State) CurrentPath() string {
	return s.currentPath
}

func (s *State) ViewMode() ViewMode {
	return s.viewMode
}

// NavigateTo only records the path. Loading it is up to the caller.
func (s *State) NavigateTo(path string) {
	s.currentPath = files.CleanPath(path)
}

func (s *State) SetViewMode(mode ViewMode) {
	s.viewMode = mode
}

func (s *State) ToggleViewMode() ViewMode {
	if s.viewMode == ViewModeList {
		s.viewMode = ViewModeGrid
	} else {
		s.viewMode = ViewModeList
	}
	return s.viewMode
}

func (s *State) Breadcrumbs() []Breadcrumb {
	return BreadcrumbOf(s.currentPath)
}

// BreadcrumbOf returns Home followed by one crumb per path segment,
// each carrying the cumulative path. The last crumb is active.
func BreadcrumbOf(path string) []Breadcrumb {
	segments := files.Segments(path)
	crumbs := make([]Breadcrumb, 0, len(segments)+1)
	crumbs = append(crumbs, Breadcrumb{Label: HomeLabel, Path: ""})
	for i, segment := range segments {
		crumbs = append(crumbs, Breadcrumb{
			Label: segment,
			Path:  strings.Join(segments[:i+1], "/"),
		})
	}
	crumbs[len(crumbs)-1].Active = true
	return crumbs
}
