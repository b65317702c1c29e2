package semtag

import (
	"strconv"
	"strings"
)

// Version is a semantic version MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD].
// Prerelease is stored without the leading '-', Build without the '+'.
type Version struct {
	Prerelease string
	Build      string
	Major      int
	Minor      int
	Patch      int
}

// Compare returns -1, 0 or 1 when v is lower, equal or higher than o.
// SemVer precedence first; build metadata only breaks ties, lexicographically.
func (v Version) Compare(o Version) int {
	if c := toSemver(v).Compare(toSemver(o)); c != 0 {
		return c
	}

	return strings.Compare(v.Build, o.Build)
}

// Less reports whether v sorts before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// IsRelease reports whether v has neither prerelease nor build metadata.
func (v Version) IsRelease() bool {
	return v.Prerelease == "" && v.Build == ""
}

// BumpPatch returns the next patch release: patch+1, prerelease and build dropped.
func (v Version) BumpPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// String returns "MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]".
func (v Version) String() string {
	s := v.MajorMinor() + "." + strconv.Itoa(v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Build != "" {
		s += "+" + v.Build
	}

	return s
}

// MajorMinor returns "MAJOR.MINOR".
func (v Version) MajorMinor() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// VersionSet holds unique versions; insertion order is not kept.
type VersionSet struct {
	m map[Version]struct{}
}

// NewVersionSet returns a set holding vs.
func NewVersionSet(vs ...Version) VersionSet {
	s := VersionSet{m: make(map[Version]struct{}, len(vs))}
	for _, v := range vs {
		s.Add(v)
	}

	return s
}

// Add inserts v; duplicates collapse.
func (s *VersionSet) Add(v Version) {
	if s.m == nil {
		s.m = make(map[Version]struct{})
	}
	s.m[v] = struct{}{}
}

// Len returns the number of distinct versions.
func (s VersionSet) Len() int {
	return len(s.m)
}

// Contains reports whether v is in the set.
func (s VersionSet) Contains(v Version) bool {
	_, ok := s.m[v]
	return ok
}

// Max returns the highest version. ok is false for an empty set.
func (s VersionSet) Max() (best Version, ok bool) {
	for v := range s.m {
		if !ok || v.Compare(best) > 0 {
			best, ok = v, true
		}
	}

	return best, ok
}
