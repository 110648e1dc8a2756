package source

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrMissingInput matches any MissingInputError. It also matches fs.ErrNotExist.
var ErrMissingInput = errors.New("missing input file")

// MissingInputError reports an input file that does not exist.
type MissingInputError struct {
	Name string
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: %s not found", e.Name, e.Path)
}

// Is lets errors.Is match both ErrMissingInput and fs.ErrNotExist.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput || target == fs.ErrNotExist
}

// MalformedInputError reports a required JSON field that is absent or has
// the wrong shape. Field is the dotted JSON path.
type MalformedInputError struct {
	Name   string
	Path   string
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s (%s): %s", e.Name, e.Path, e.Reason)
	}
	return fmt.Sprintf("%s (%s): %s: %s", e.Name, e.Path, e.Field, e.Reason)
}
