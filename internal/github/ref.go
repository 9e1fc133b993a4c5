package github

import (
	"fmt"
	"strings"
)

// RefPrefix marks catalog references served from a GitHub repository
const RefPrefix = "github:"

// IsFileRef reports whether s uses the github: scheme
func IsFileRef(s string) bool {
	return strings.HasPrefix(s, RefPrefix)
}

// ParseFileRef parses "github:owner/repo/path/to/file[@ref]"
func ParseFileRef(s string) (FileRef, error) {
	if !IsFileRef(s) {
		return FileRef{}, fmt.Errorf("invalid GitHub reference %q: missing %s prefix", s, RefPrefix)
	}

	rest := strings.TrimPrefix(s, RefPrefix)
	var ref string
	if idx := strings.LastIndex(rest, "@"); idx >= 0 {
		ref = rest[idx+1:]
		rest = rest[:idx]
		if ref == "" {
			return FileRef{}, fmt.Errorf("invalid GitHub reference %q: empty ref after @", s)
		}
	}

	parts := strings.SplitN(rest, "/", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || strings.Trim(parts[2], "/") == "" {
		return FileRef{}, fmt.Errorf("invalid GitHub reference %q (expected github:owner/repo/path[@ref])", s)
	}

	return FileRef{
		Owner: parts[0],
		Repo:  parts[1],
		Path:  strings.Trim(parts[2], "/"),
		Ref:   ref,
	}, nil
}
