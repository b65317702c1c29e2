package semtag

import sv "github.com/woozymasta/semver"

const fullFlags = sv.FlagHasMajor | sv.FlagHasMinor | sv.FlagHasPatch

// ParseVersion parses "MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]".
// The boolean is false when s is not a version; there is no error value
// because an unparsable tag is an expected outcome, not a failure.
// A leading "v" and the X / X.Y shorthands are rejected: the "v" belongs
// to the tag prefix.
func ParseVersion(s string) (Version, bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return Version{}, false
	}

	v, ok := sv.Parse(s)
	if !ok || !v.Valid || v.Flags&fullFlags != fullFlags {
		return Version{}, false
	}

	// redundant strict check, the parser tolerates more than SemVer allows
	if !semverRe.MatchString(s) {
		return Version{}, false
	}

	return Version{
		Major:      v.Major,
		Minor:      v.Minor,
		Patch:      v.Patch,
		Prerelease: v.Prerelease,
		Build:      v.Build,
	}, true
}

// toSemver is a light Semver constructor without parsing.
// Build metadata is left out, it has no precedence.
func toSemver(v Version) sv.Semver {
	flags := fullFlags
	if v.Prerelease != "" {
		flags |= sv.FlagHasPre
	}

	return sv.Semver{
		Major:      v.Major,
		Minor:      v.Minor,
		Patch:      v.Patch,
		Prerelease: v.Prerelease,
		Flags:      flags,
		Valid:      true,
	}
}
