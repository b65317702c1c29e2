package semtag

// Collect parses tags matching opt.Prefix/opt.Suffix into a VersionSet and
// returns every tag name seen, parsable or not, for the collision check.
func Collect(tags []string, opt Options) (VersionSet, map[string]struct{}) {
	opt = opt.normalized()

	versions := NewVersionSet()
	all := make(map[string]struct{}, len(tags))

	for _, t := range tags {
		all[t] = struct{}{}

		rest, ok := stripAffixes(t, opt.Prefix, opt.Suffix)
		if !ok {
			opt.Logger.Debug("tag skipped, prefix/suffix mismatch", "tag", t)
			continue
		}

		v, ok := ParseVersion(rest)
		if !ok {
			opt.Logger.Warn("tag could not be parsed as a semantic version", "tag", t)
			continue
		}

		versions.Add(v)
		opt.Logger.Info("tag found", "tag", t, "version", v.String())
	}

	return versions, all
}

// ParseTag strips prefix and suffix from tag and parses the remainder.
func ParseTag(tag, prefix, suffix string) (Version, bool) {
	rest, ok := stripAffixes(tag, prefix, suffix)
	if !ok {
		return Version{}, false
	}

	return ParseVersion(rest)
}

// Filter keeps only versions matching f. A disabled filter returns s itself.
func (s VersionSet) Filter(f Filter) VersionSet {
	if !f.Enabled() {
		return s
	}

	out := NewVersionSet()
	for v := range s.m {
		if f.Match(v) {
			out.Add(v)
		}
	}

	return out
}
