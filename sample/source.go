package sample

import (
	"errors"
	"sort"
)

var (
	ErrEmptySource    = errors.New("empty source")
	ErrLengthMismatch = errors.New("column lengths do not match")
	ErrUnknownKey     = errors.New("key not present in source")
)

// Source is a finite ordered collection of observations. It is an immutable
// snapshot: constructors copy their inputs and nothing mutates a Source after
// creation, so any number of concurrent draws may read it.
type Source struct {
	values []float64
	xs     []float64
	keys   []string
	groups map[string][]int
}

func NewSource(values []float64) *Source {
	return &Source{
		values: append([]float64(nil), values...),
		xs:     nil,
		keys:   nil,
		groups: nil,
	}
}

// NewPairedSource builds a source of (x, value) pairs, for statistics that
// fit one column against the other.
func NewPairedSource(xs, values []float64) (*Source, error) {
	if len(xs) != len(values) {
		return nil, ErrLengthMismatch
	}
	src := NewSource(values)
	src.xs = append([]float64(nil), xs...)
	return src, nil
}

// NewKeyedSource builds a source whose observations carry category labels.
func NewKeyedSource(keys []string, values []float64) (*Source, error) {
	if len(keys) != len(values) {
		return nil, ErrLengthMismatch
	}
	src := NewSource(values)
	src.keys = append([]string(nil), keys...)
	src.groups = make(map[string][]int)
	for i, key := range src.keys {
		src.groups[key] = append(src.groups[key], i)
	}
	return src, nil
}

func (src *Source) Len() int {
	return len(src.values)
}

func (src *Source) HasXs() bool {
	return src.xs != nil
}

func (src *Source) HasKeys() bool {
	return src.keys != nil
}

// GroupKeys returns the distinct category labels in sorted order.
func (src *Source) GroupKeys() []string {
	if src.groups == nil {
		return nil
	}
	keys := make([]string, 0, len(src.groups))
	for key := range src.groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (src *Source) groupIndices(key string) []int {
	if src.groups == nil {
		return nil
	}
	return src.groups[key]
}

// take builds a fresh Sample from the observations at the given indices,
// preserving index order.
func (src *Source) take(indices []int) *Sample {
	s := &Sample{
		Values: make([]float64, len(indices)),
		Xs:     nil,
		Keys:   nil,
	}
	if src.xs != nil {
		s.Xs = make([]float64, len(indices))
	}
	if src.keys != nil {
		s.Keys = make([]string, len(indices))
	}
	for i, idx := range indices {
		s.Values[i] = src.values[idx]
		if src.xs != nil {
			s.Xs[i] = src.xs[idx]
		}
		if src.keys != nil {
			s.Keys[i] = src.keys[idx]
		}
	}
	return s
}

func (src *Source) takeAll() *Sample {
	indices := make([]int, src.Len())
	for i := range indices {
		indices[i] = i
	}
	return src.take(indices)
}
