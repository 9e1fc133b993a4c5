package filter

import (
	"slices"

	"github.com/jakoblorz/go-depfilter/internal/models"
)

// FilterState is the filter owned by one rendering surface.
// It is not safe for concurrent use.
type FilterState struct {
	projects []models.Project
	tags     []models.Tag
	selected []models.Tag
}

// New creates an empty, unfiltered FilterState
func New() *FilterState {
	return &FilterState{}
}

// NewWithSelection creates a FilterState with an initial selection.
// Duplicate tags are collapsed.
func NewWithSelection(selected []models.Tag) *FilterState {
	s := New()
	for _, tag := range selected {
		if !slices.Contains(s.selected, tag) {
			s.selected = append(s.selected, tag)
		}
	}
	return s
}

// Load replaces the project list and rebuilds the tag universe.
// The selection is left untouched, even for tags that no longer exist.
func (s *FilterState) Load(projects []models.Project) {
	s.projects = slices.Clone(projects)
	s.tags = IndexDependencies(s.projects)
}

// Projects returns the loaded projects in load order
func (s *FilterState) Projects() []models.Project {
	return slices.Clone(s.projects)
}

// Tags returns the tag universe in first-seen order
func (s *FilterState) Tags() []models.Tag {
	return slices.Clone(s.tags)
}

// Selected returns the active filter tags in toggle order
func (s *FilterState) Selected() []models.Tag {
	return slices.Clone(s.selected)
}

// Filtered reports whether any tag is selected
func (s *FilterState) Filtered() bool {
	return len(s.selected) > 0
}

// Toggle flips tag in the selection and returns the new selection
func (s *FilterState) Toggle(tag models.Tag) []models.Tag {
	s.selected = Toggle(tag, s.selected)
	return s.Selected()
}

// IsVisible applies the current selection to p
func (s *FilterState) IsVisible(p models.Project) bool {
	return IsVisible(p, s.selected)
}

// Classify returns the style of tag under the current selection
func (s *FilterState) Classify(tag models.Tag) models.Style {
	return Classify(tag, s.selected)
}

// Visible returns the projects passing the current selection, in load order
func (s *FilterState) Visible() []models.Project {
	visible := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if s.IsVisible(p) {
			visible = append(visible, p)
		}
	}
	return visible
}

// Stale returns selected tags that are not part of the tag universe.
func (s *FilterState) Stale() []models.Tag {
	var stale []models.Tag
	for _, tag := range s.selected {
		if !slices.Contains(s.tags, tag) {
			stale = append(stale, tag)
		}
	}
	return stale
}
