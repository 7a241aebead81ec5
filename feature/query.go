package feature

import (
	"fmt"
	"iter"
)

// QueryAll lazily yields the features of src satisfying pred, in
// source-native order.
//
// Evaluation errors are yielded in-band; iteration stops after the first
// error. The sequence is finite and restartable per call.
func QueryAll(src Source, pred *Predicate) iter.Seq2[*Feature, error] {
	return func(yield func(*Feature, error) bool) {
		for f := range src.Features() {
			ok, err := pred.Match(f)
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(f, nil) {
				return
			}
		}
	}
}

// QueryFirst returns the first feature of src satisfying pred.
//
// It fails with an error satisfying `errors.Is(err, ErrNotFound)` when no
// feature matches.
func QueryFirst(src Source, pred *Predicate) (*Feature, error) {
	for f, err := range QueryAll(src, pred) {
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s = %q", ErrNotFound, pred.field, pred.key)
}
