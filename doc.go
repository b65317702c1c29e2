/*
Package semtag computes the next semantic version tag for a repository from
the names of its existing tags.

The package is repository-agnostic: it operates purely on a slice of tag
names. Typical flow:

 1. List tag names elsewhere (e.g., internal/gitrepo or `git tag -l`).
 2. Call Next with the tag naming convention and optional filters.
 3. Create the returned tag when Result.Create is true.

Selection rules:
  - Only tags of the form PREFIX + VERSION + SUFFIX are considered, VERSION
    being SemVer MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]; anything else is
    skipped (unparsable ones with a warning).
  - The highest version follows SemVer precedence, so 1.0.1-rc.1 outranks
    1.0.0; bumping drops prerelease and build, 1.0.1-rc.1 becomes 1.0.2.
  - No version tags at all: the next version is 1.0.0.
  - A Filter (major, optionally minor) with no matching tag starts that line
    at MAJOR.MINOR.0 (minor defaults to 0).
  - Otherwise the patch of the highest matching version is bumped.
  - In snapshot mode the tag is PREFIX + MAJOR.MINOR-SNAPSHOT + SUFFIX.
  - A computed name equal to an existing tag is an error (ErrTagExists).

Usage example:

	res, err := semtag.Next([]string{"v1.0.0", "v1.1.0", "v2.0.0"}, semtag.DefaultOptions())
	if err != nil {
		return err
	}

	fmt.Println(res.Tag) // v2.0.1

The collision check runs against the tags passed in. A tag created by someone
else between listing and creation is not detected here; callers should
re-check right before they create the tag.
*/
package semtag
