package semtag

import "testing"

func ver(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

func pre(major, minor, patch int, prerelease, build string) Version {
	return Version{Major: major, Minor: minor, Patch: patch, Prerelease: prerelease, Build: build}
}

func TestParseVersion(t *testing.T) {
	t.Parallel()

	ok := map[string]Version{
		"0.0.0":     ver(0, 0, 0),
		"1.2.3":     ver(1, 2, 3),
		"10.20.300": ver(10, 20, 300),

		"1.2.3-alpha":        pre(1, 2, 3, "alpha", ""),
		"1.0.1-rc.1":         pre(1, 0, 1, "rc.1", ""),
		"1.2.3+build.1":      pre(1, 2, 3, "", "build.1"),
		"1.2.3-rc.1+build.1": pre(1, 2, 3, "rc.1", "build.1"),
	}
	for in, want := range ok {
		got, parsed := ParseVersion(in)
		if !parsed || got != want {
			t.Fatalf("ParseVersion(%q) = (%v, %v); want (%v, true)", in, got, parsed, want)
		}
	}

	bad := []string{
		"", "1", "1.2", "v1.2.3", "1.2.3-", "1.2.3+", "1.2.3-01",
		"01.2.3", "1.2.3.4", "a.b.c", "-1.2.3", "1..3", "1.2.3-rc..1",
	}
	for _, in := range bad {
		if got, parsed := ParseVersion(in); parsed {
			t.Fatalf("ParseVersion(%q) = (%v, true); want not a version", in, got)
		}
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag, prefix, suffix string
		want                Version
		ok                  bool
	}{
		{"v1.2.3", "v", "", ver(1, 2, 3), true},
		{"release-1.2.3-final", "release-", "-final", ver(1, 2, 3), true},
		{"1.2.3", "", "", ver(1, 2, 3), true},
		{"v1.0.1-rc.1", "v", "", pre(1, 0, 1, "rc.1", ""), true},
		{"v1.0.0+build.5", "v", "", pre(1, 0, 0, "", "build.5"), true},

		// valid version, wrong pattern
		{"1.2.3", "v", "", Version{}, false},
		{"v1.2.3", "v", "-final", Version{}, false},
		// right pattern, not a version
		{"vnext", "v", "", Version{}, false},
		{"vv1.2.3", "v", "", Version{}, false},
	}

	for _, tc := range cases {
		got, ok := ParseTag(tc.tag, tc.prefix, tc.suffix)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseTag(%q, %q, %q) = (%v, %v); want (%v, %v)",
				tc.tag, tc.prefix, tc.suffix, got, ok, tc.want, tc.ok)
		}
	}
}

func TestVersionCompare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b Version
		want int
	}{
		{ver(1, 0, 0), ver(1, 0, 0), 0},
		{ver(1, 0, 0), ver(2, 0, 0), -1},
		{ver(2, 0, 0), ver(1, 9, 9), 1},
		{ver(1, 2, 0), ver(1, 10, 0), -1},
		{ver(1, 2, 10), ver(1, 2, 9), 1},
		{ver(0, 0, 1), ver(0, 0, 0), 1},

		{pre(1, 0, 1, "rc.1", ""), ver(1, 0, 1), -1},
		{pre(1, 0, 1, "rc.1", ""), ver(1, 0, 0), 1},
		{pre(1, 0, 0, "alpha", ""), pre(1, 0, 0, "alpha.1", ""), -1},
		{pre(1, 0, 0, "rc.2", ""), pre(1, 0, 0, "rc.10", ""), -1},
		{pre(1, 0, 0, "beta", ""), pre(1, 0, 0, "alpha", ""), 1},
		{pre(1, 0, 0, "", "build.5"), ver(1, 0, 0), 1},
		{pre(1, 0, 0, "", "a"), pre(1, 0, 0, "", "b"), -1},
		{pre(1, 0, 0, "", "build.5"), ver(1, 0, 1), -1},
	}

	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Fatalf("%v.Compare(%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
		if got := tc.a.Less(tc.b); got != (tc.want < 0) {
			t.Fatalf("%v.Less(%v) = %v; want %v", tc.a, tc.b, got, tc.want < 0)
		}
	}
}

func TestVersionBumpPatch(t *testing.T) {
	t.Parallel()

	v := ver(1, 2, 3)
	got := v.BumpPatch()

	if got != ver(1, 2, 4) {
		t.Fatalf("BumpPatch() = %v; want 1.2.4", got)
	}
	if v != ver(1, 2, 3) {
		t.Fatalf("BumpPatch mutated receiver: %v", v)
	}

	got = pre(1, 0, 1, "rc.1", "build.7").BumpPatch()
	if got != ver(1, 0, 2) || !got.IsRelease() {
		t.Fatalf("BumpPatch() = %v; want 1.0.2", got)
	}
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	v := ver(10, 0, 7)
	if got := v.String(); got != "10.0.7" {
		t.Fatalf("String() = %q; want %q", got, "10.0.7")
	}
	if got := v.MajorMinor(); got != "10.0" {
		t.Fatalf("MajorMinor() = %q; want %q", got, "10.0")
	}

	for in, want := range map[Version]string{
		pre(1, 2, 3, "rc.1", ""):        "1.2.3-rc.1",
		pre(1, 2, 3, "", "build.5"):     "1.2.3+build.5",
		pre(1, 2, 3, "rc.1", "build.5"): "1.2.3-rc.1+build.5",
	} {
		if got := in.String(); got != want {
			t.Fatalf("String() = %q; want %q", got, want)
		}
	}
}

func TestVersionSet(t *testing.T) {
	t.Parallel()

	var s VersionSet
	if _, ok := s.Max(); ok {
		t.Fatalf("zero VersionSet Max() ok = true")
	}

	s.Add(ver(1, 0, 0))
	s.Add(ver(1, 0, 0))
	s.Add(ver(2, 1, 0))
	s.Add(ver(1, 10, 3))

	if s.Len() != 3 {
		t.Fatalf("Len() = %d; want 3 (duplicates collapse)", s.Len())
	}
	if !s.Contains(ver(1, 10, 3)) || s.Contains(ver(3, 0, 0)) {
		t.Fatalf("Contains mismatch")
	}

	top, ok := s.Max()
	if !ok || top != ver(2, 1, 0) {
		t.Fatalf("Max() = (%v, %v); want (2.1.0, true)", top, ok)
	}
}
