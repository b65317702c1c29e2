package semtag

import (
	"log/slog"
	"strconv"
)

// DefaultPrefix is the tag prefix used by DefaultOptions.
const DefaultPrefix = "v"

// SnapshotMarker replaces the patch component in snapshot tag names.
const SnapshotMarker = "SNAPSHOT"

// Options configures tag parsing, version selection and rendering.
type Options struct {
	// Logger receives parse warnings and selection details.
	// Nil discards everything.
	Logger *slog.Logger

	// Prefix and Suffix surround the version in a tag name,
	// e.g. "release-" and "-final" for "release-1.2.3-final".
	Prefix string
	Suffix string

	// Filter restricts the versions considered when picking the next patch.
	Filter Filter

	// Snapshot renders MAJOR.MINOR-SNAPSHOT instead of MAJOR.MINOR.PATCH.
	Snapshot bool

	// Create is passed through to Result.Create; the caller persists the tag
	// when it is true (false is a dry run).
	Create bool
}

// DefaultOptions returns "v"-prefixed tags, no filters, no snapshot, dry run.
func DefaultOptions() Options {
	return Options{Prefix: DefaultPrefix}
}

// normalized returns a copy with implicit defaults applied.
func (o Options) normalized() Options {
	out := o
	if out.Logger == nil {
		out.Logger = slog.New(slog.DiscardHandler)
	}

	return out
}

// Unset marks a NewFilter argument as not set.
const Unset = -1

// Filter selects a major (and optionally minor) release line.
// The zero value keeps every version; Minor is only consulted when ByMajor is set.
type Filter struct {
	Major   int
	Minor   int
	ByMajor bool
	ByMinor bool
}

// NoFilter returns a Filter that keeps every version.
func NoFilter() Filter {
	return Filter{}
}

// NewFilter builds a Filter from flag-style values, negative means not set.
func NewFilter(major, minor int) Filter {
	return Filter{
		Major:   max(major, 0),
		Minor:   max(minor, 0),
		ByMajor: major >= 0,
		ByMinor: minor >= 0,
	}
}

// Enabled reports whether the filter restricts anything.
func (f Filter) Enabled() bool {
	return f.ByMajor
}

// HasMinor reports whether the minor component takes part in filtering.
func (f Filter) HasMinor() bool {
	return f.ByMajor && f.ByMinor
}

// Match reports whether v belongs to the filtered release line.
func (f Filter) Match(v Version) bool {
	if !f.Enabled() {
		return true
	}

	if v.Major != f.Major {
		return false
	}

	return !f.HasMinor() || v.Minor == f.Minor
}

// Start returns the first version of the filtered line: MAJOR.(MINOR or 0).0.
func (f Filter) Start() Version {
	v := Version{Major: f.Major}
	if f.HasMinor() {
		v.Minor = f.Minor
	}

	return v
}

// String returns a stable textual representation like "2.x" or "2.3.x".
func (f Filter) String() string {
	switch {
	case !f.Enabled():
		return "any"
	case f.HasMinor():
		return strconv.Itoa(f.Major) + "." + strconv.Itoa(f.Minor) + ".x"
	default:
		return strconv.Itoa(f.Major) + ".x"
	}
}
