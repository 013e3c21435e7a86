// Package version identifies installer builds and parses release tags.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version represents a semantic version
type Version struct {
	Major int
	Minor int
	Patch int
}

// Current is the installer build version
var Current = Version{Major: 1, Minor: 0, Patch: 0}

// String returns the version in semantic format
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseTag extracts version components from a git tag (e.g., "v1.2.3")
func ParseTag(tag string) (Version, error) {
	tagVersion := strings.TrimPrefix(tag, "v")
	parts := strings.Split(tagVersion, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid tag format: %s (expected vX.Y.Z)", tag)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version in tag %s: %w", tag, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version in tag %s: %w", tag, err)
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid patch version in tag %s: %w", tag, err)
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}
