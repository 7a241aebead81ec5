package feature

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no feature satisfies a predicate that is
	// expected to match (e.g. a representative lookup for a known group key).
	ErrNotFound = errors.New("no matching feature found")

	// ErrEmptyField is returned when a predicate is compiled against an
	// empty field name.
	ErrEmptyField = errors.New("predicate field name is empty")
)

// PredicateError reports a predicate that could not be compiled or evaluated.
//
// The underlying cause (if any) can be accessed via errors.Unwrap.
type PredicateError struct {
	Field string
	Stage string // "parse" or "eval"
	cause error
}

func (e *PredicateError) Error() string {
	return fmt.Sprintf("predicate %s error on field %q: %v", e.Stage, e.Field, e.cause)
}

func (e *PredicateError) Unwrap() error { return e.cause }

// Predicate is a compiled attribute-equality condition (field = value).
//
// Matching is by canonical string form of the value on both sides. This
// sidesteps the numeric-coercion ambiguity of expression engines: a key that
// looks numeric matches any raw value that parses to the same number, and
// everything else matches textually.
type Predicate struct {
	field string
	key   string
}

// Equals compiles a field = value predicate. The value is normalized to its
// canonical key form once, at compile time.
func Equals(field, value string) (*Predicate, error) {
	if field == "" {
		return nil, &PredicateError{Field: field, Stage: "parse", cause: ErrEmptyField}
	}
	return &Predicate{field: field, key: CanonicalKey(value)}, nil
}

// Field returns the attribute field the predicate compares.
func (p *Predicate) Field() string { return p.field }

// Match evaluates the predicate against a feature.
//
// A feature lacking the predicate's field is an evaluation error: the schema
// is uniform across a source, so a missing field signals a malformed record
// rather than a non-match.
func (p *Predicate) Match(f *Feature) (bool, error) {
	raw, ok := f.Props[p.field]
	if !ok {
		return false, &PredicateError{
			Field: p.field,
			Stage: "eval",
			cause: fmt.Errorf("feature %d has no field %q", f.ID, p.field),
		}
	}
	return CanonicalKey(raw) == p.key, nil
}
