// Package filter holds the dependency-tag filter: the tag universe, the
// selected tags and the visibility predicate applied to each project.
package filter

import (
	"slices"

	"github.com/jakoblorz/go-depfilter/internal/models"
)

// IndexDependencies returns every dependency tag used by projects, without
// duplicates, in order of first appearance.
func IndexDependencies(projects []models.Project) []models.Tag {
	var tags []models.Tag
	seen := make(map[models.Tag]struct{})

	for _, p := range projects {
		for _, key := range p.Dependencies.Keys() {
			tag := models.Tag(key)
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	return tags
}

// IsVisible reports whether p passes the selection. With nothing selected
// every project is visible; otherwise p must depend on all selected tags.
func IsVisible(p models.Project, selected []models.Tag) bool {
	if len(selected) == 0 {
		return true
	}
	if p.Dependencies == nil {
		return false
	}

	for _, tag := range selected {
		if !p.Dependencies.Has(string(tag)) {
			return false
		}
	}
	return true
}

// Toggle removes tag from selected when present and appends it otherwise.
// The input slice is never modified.
func Toggle(tag models.Tag, selected []models.Tag) []models.Tag {
	if i := slices.Index(selected, tag); i >= 0 {
		out := make([]models.Tag, 0, len(selected)-1)
		out = append(out, selected[:i]...)
		return append(out, selected[i+1:]...)
	}

	out := make([]models.Tag, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, tag)
}

// Classify returns the rendering style of tag under the selection
func Classify(tag models.Tag, selected []models.Tag) models.Style {
	if slices.Contains(selected, tag) {
		return models.StyleSelected
	}
	return models.StyleDefault
}
