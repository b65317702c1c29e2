package semtag

import (
	"context"
	"log/slog"
)

// Reason tells which selection rule produced the next version.
type Reason uint8

const (
	// ReasonInitial: no parsable tag at all, the next version is 1.0.0.
	ReasonInitial Reason = iota
	// ReasonNewLine: tags exist but none in the filtered line, start it at patch 0.
	ReasonNewLine
	// ReasonBump: patch bump of the highest filtered version.
	ReasonBump
)

// String returns a stable textual representation for Reason.
func (r Reason) String() string {
	switch r {
	case ReasonNewLine:
		return "new-line"
	case ReasonBump:
		return "bump"
	default:
		return "initial"
	}
}

// Initial is the version used for a repository without version tags.
var Initial = Version{Major: 1}

// Result is the outcome of Next.
type Result struct {
	// Tag is the rendered tag name, always set (also on collision).
	Tag string
	// Version is the selected next version. In snapshot mode only
	// major and minor appear in Tag.
	Version Version
	// Previous is the highest filtered version when Reason is ReasonBump.
	Previous Version
	Reason   Reason
	// Create mirrors Options.Create: whether the caller should persist Tag.
	Create bool
}

// HasPrevious reports whether the result was bumped from an existing version.
func (r Result) HasPrevious() bool {
	return r.Reason == ReasonBump
}

// Next computes the next tag name from the existing tag names.
// Pipeline:
//  1. parse tags matching prefix/suffix, keep the raw set
//  2. filter by major/minor
//  3. select: 1.0.0 / start of the filtered line / patch bump of the max
//  4. render (release or snapshot form)
//  5. fail with *TagExistsError when the name is already taken
func Next(tags []string, opt Options) (Result, error) {
	opt = opt.normalized()

	versions, all := Collect(tags, opt)

	if opt.Logger.Enabled(context.Background(), slog.LevelDebug) {
		opt.Logger.Debug("versions parsed",
			"count", versions.Len(),
			"versions", versions.Strings(opt.Prefix, opt.Suffix),
			"filter", opt.Filter.String())
	}

	next, reason, prev := NextVersion(versions, opt.Filter)
	if reason == ReasonBump {
		opt.Logger.Info("max version found", "version", prev.String())
	}

	res := Result{
		Tag:      Render(next, opt),
		Version:  next,
		Previous: prev,
		Reason:   reason,
		Create:   opt.Create,
	}

	if _, ok := all[res.Tag]; ok {
		return res, &TagExistsError{Tag: res.Tag}
	}

	return res, nil
}

// NextVersion selects the next version from the parsed set and the filter.
// prev is only meaningful when reason is ReasonBump.
func NextVersion(versions VersionSet, f Filter) (next Version, reason Reason, prev Version) {
	if versions.Len() == 0 {
		return Initial, ReasonInitial, Version{}
	}

	top, ok := versions.Filter(f).Max()
	if !ok {
		// only reachable with an enabled filter
		return f.Start(), ReasonNewLine, Version{}
	}

	return top.BumpPatch(), ReasonBump, top
}

// Render builds the tag name for v:
// prefix+MAJOR.MINOR.PATCH+suffix, or prefix+MAJOR.MINOR-SNAPSHOT+suffix.
func Render(v Version, opt Options) string {
	if opt.Snapshot {
		return opt.Prefix + v.MajorMinor() + "-" + SnapshotMarker + opt.Suffix
	}

	return opt.Prefix + v.String() + opt.Suffix
}
