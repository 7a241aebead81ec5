package geograph

import (
	"errors"
	"fmt"

	"github.com/hupe1980/geograph/feature"
	"github.com/hupe1980/geograph/geom"
)

var (
	// ErrNotFound is returned when the representative feature for a known
	// group key cannot be found. This signals an internal consistency
	// violation between group construction and the query layer and is
	// always fatal.
	ErrNotFound = errors.New("not found")

	// ErrInvalidField is returned when the grouping field name is empty.
	ErrInvalidField = errors.New("grouping field must not be empty")

	// ErrNilSource is returned when no feature source is configured.
	ErrNilSource = errors.New("feature source must not be nil")
)

// ErrShape indicates non-polygon or malformed geometry where a polygon
// boundary was required.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrShape struct {
	cause error
}

func (e *ErrShape) Error() string {
	return fmt.Sprintf("polygon geometry required: %v", e.cause)
}

func (e *ErrShape) Unwrap() error { return e.cause }

// ErrPredicate indicates a predicate that could not be parsed or evaluated.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrPredicate struct {
	Field string
	cause error
}

func (e *ErrPredicate) Error() string {
	return fmt.Sprintf("predicate on field %q failed: %v", e.Field, e.cause)
}

func (e *ErrPredicate) Unwrap() error { return e.cause }

// translateError maps subpackage errors into the public error contract.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Not found unification.
	if errors.Is(err, feature.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	// Geometry shape normalization.
	if errors.Is(err, geom.ErrNoRing) {
		return &ErrShape{cause: err}
	}
	var se *geom.ShapeError
	if errors.As(err, &se) {
		return &ErrShape{cause: err}
	}

	// Predicate parse/eval normalization.
	var pe *feature.PredicateError
	if errors.As(err, &pe) {
		return &ErrPredicate{Field: pe.Field, cause: err}
	}

	return err
}
