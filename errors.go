package semtag

import (
	"errors"
	"fmt"
)

// ErrTagExists is matched by every collision error (errors.Is).
var ErrTagExists = errors.New("tag already exists")

// TagExistsError reports a computed tag name that is already taken.
type TagExistsError struct {
	Tag string
}

func (e *TagExistsError) Error() string {
	return fmt.Sprintf("could not create tag %q: already exists", e.Tag)
}

func (e *TagExistsError) Unwrap() error {
	return ErrTagExists
}
