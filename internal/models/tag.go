package models

import "strings"

// Tag is a dependency tag: a key of some project's dependencies mapping
type Tag string

// String returns the string representation of Tag
func (t Tag) String() string {
	return string(t)
}

// ParseTags turns repeated and comma-separated flag values into an ordered
// tag list without duplicates. Blank entries are dropped.
func ParseTags(values []string) []Tag {
	var tags []Tag
	seen := make(map[Tag]struct{})
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			tag := Tag(strings.TrimSpace(part))
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

// TagStrings converts tags to plain strings
func TagStrings(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

// Style is the rendering emphasis of a tag
type Style string

const (
	// StyleDefault marks a tag that is not part of the selection
	StyleDefault Style = "default"

	// StyleSelected marks a tag that is an active filter
	StyleSelected Style = "primary"
)

// String returns the string representation of Style
func (s Style) String() string {
	return string(s)
}

// Class returns the prefixed class name, e.g. "btn-primary".
// An empty prefix yields the bare token.
func (s Style) Class(prefix string) string {
	if prefix == "" {
		return string(s)
	}
	return prefix + "-" + string(s)
}
