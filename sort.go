package semtag

import "sort"

// Sorted returns the versions in ascending order.
func (s VersionSet) Sorted() []Version {
	out := make([]Version, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Strings renders each sorted version with prefix and suffix.
func (s VersionSet) Strings(prefix, suffix string) []string {
	vs := s.Sorted()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = prefix + v.String() + suffix
	}

	return out
}
