package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewSites indicates the point set is too small for the
	// requested geometry.
	ErrTooFewSites = errors.New("partition: too few sites")

	// ErrDegenerate indicates the sites are coincident or collinear.
	ErrDegenerate = errors.New("partition: degenerate sites")
)

// BuildError carries the context of a failed build.
type BuildError struct {
	Mode    Mode
	Sites   int
	Wrapped error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s over %d sites: %v", e.Mode, e.Sites, e.Wrapped)
}

func (e *BuildError) Unwrap() error {
	return e.Wrapped
}
