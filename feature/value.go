package feature

import (
	"strconv"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNumber represents a numeric value.
	KindNumber
	// KindText represents a textual value.
	KindText
)

// Value is a small tagged attribute value.
//
// The kind is decided once, at join time, by attempting a numeric parse of
// the raw source value. It never widens afterwards: a vertex attribute that
// parsed as a number stays a number.
//
// NOTE: This is also used for persistence; keep it stable.
type Value struct {
	Kind Kind    `json:"k"`
	F64  float64 `json:"f,omitempty"`
	S    string  `json:"s,omitempty"`
}

// Number returns a numeric Value.
func Number(v float64) Value { return Value{Kind: KindNumber, F64: v} }

// Text returns a textual Value.
func Text(v string) Value { return Value{Kind: KindText, S: v} }

// ParseValue converts a raw attribute string into a tagged Value:
// numeric parse on success, text otherwise.
func ParseValue(raw string) Value {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(f)
	}
	return Text(raw)
}

// AsFloat64 returns the numeric value if Kind is KindNumber.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the textual value if Kind is KindText.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindText {
		return "", false
	}
	return v.S, true
}

// Canonical returns the stable string form of the value. Numeric values use
// the shortest representation that round-trips; this is also the form group
// keys are compared in.
func (v Value) Canonical() string {
	if v.Kind == KindNumber {
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	}
	return v.S
}
