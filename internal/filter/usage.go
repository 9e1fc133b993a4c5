package filter

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/jakoblorz/go-depfilter/internal/models"
)

// TagUsage summarises how a tag is used across the catalog
type TagUsage struct {
	Tag      models.Tag `json:"tag"`
	Projects int        `json:"projects"`
	Versions []string   `json:"versions"`
}

// Usage returns one entry per tag in tag-universe order. Versions are the
// distinct specs seen for the tag, lowest semantic version first.
func Usage(projects []models.Project) []TagUsage {
	tags := IndexDependencies(projects)
	usage := make([]TagUsage, 0, len(tags))

	for _, tag := range tags {
		u := TagUsage{Tag: tag, Versions: []string{}}
		seen := make(map[string]struct{})
		for _, p := range projects {
			spec, ok := p.Dependencies.Get(string(tag))
			if !ok {
				continue
			}
			u.Projects++
			if _, dup := seen[spec]; dup {
				continue
			}
			seen[spec] = struct{}{}
			u.Versions = append(u.Versions, spec)
		}
		SortVersionSpecs(u.Versions)
		usage = append(usage, u)
	}

	return usage
}

// SortVersionSpecs orders specs by the version they name. Specs that do not
// parse as semantic versions sort after those that do, lexically.
func SortVersionSpecs(specs []string) {
	sort.SliceStable(specs, func(i, j int) bool {
		vi, vj := canonicalVersion(specs[i]), canonicalVersion(specs[j])
		switch {
		case vi != "" && vj != "":
			if c := semver.Compare(vi, vj); c != 0 {
				return c < 0
			}
			return specs[i] < specs[j]
		case vi != "":
			return true
		case vj != "":
			return false
		default:
			return specs[i] < specs[j]
		}
	})
}

// canonicalVersion strips range operators and returns the canonical
// semver form, or "" when spec is not a plain version.
func canonicalVersion(spec string) string {
	v := strings.TrimSpace(spec)
	v = strings.TrimLeft(v, "^~>=<")
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}
