package catalog

import (
	"errors"
	"fmt"
)

// ErrDataLoad is the single failure kind of a catalog load: the fetch or
// the decode of the project document failed.
var ErrDataLoad = errors.New("failed to load project data")

// LoadError describes which step of a load failed for which source.
type LoadError struct {
	Source string
	Op     string // "fetch" or "decode"
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrDataLoad, e.Op, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDataLoad) match any LoadError.
func (e *LoadError) Is(target error) bool {
	return target == ErrDataLoad
}
