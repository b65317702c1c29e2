package semtag

// NextTag runs Next with DefaultOptions and returns only the tag name.
func NextTag(tags []string) (string, error) {
	res, err := Next(tags, DefaultOptions())
	return res.Tag, err
}

// NextInLine runs Next restricted to the given major (and minor, when >= 0) line.
func NextInLine(tags []string, major, minor int) (string, error) {
	opt := DefaultOptions()
	opt.Filter = NewFilter(major, minor)

	res, err := Next(tags, opt)
	return res.Tag, err
}

// Latest returns the highest version tag matching prefix and suffix.
// ok is false when no tag parses.
func Latest(tags []string, prefix, suffix string) (tag string, ok bool) {
	opt := DefaultOptions()
	opt.Prefix, opt.Suffix = prefix, suffix

	versions, _ := Collect(tags, opt)
	v, ok := versions.Max()
	if !ok {
		return "", false
	}

	return prefix + v.String() + suffix, true
}
