package frame

import (
	"fmt"
	"time"
)

// Element is the set of value types a series can hold.
type Element interface {
	string | int64 | float64 | time.Time | []float64
}

// Series is a single named, typed column. Storage is shared between frames
// that did not touch the column, so treat the backing slices as read-only.
type Series struct {
	name  string
	dtype FieldType
	data  any
	valid Validity
}

// NewSeries builds a series from a typed slice. valid marks which rows hold
// a concrete value; nil means every row is valid.
func NewSeries[T Element](name string, values []T, valid []bool) *Series {
	var dtype FieldType

	switch any(values).(type) {
	case []string:
		dtype = Utf8FieldType
	case []int64:
		dtype = Int64FieldType
	case []float64:
		dtype = Float64FieldType
	case []time.Time:
		dtype = DatetimeFieldType
	case [][]float64:
		dtype = FloatListFieldType
	default:
		panic(fmt.Sprintf("unsupported series element type %T", values))
	}

	var v Validity
	if valid == nil {
		v = NewValidity(len(values), true)
	} else {
		if len(valid) != len(values) {
			panic(fmt.Sprintf("series %q: %d values but %d validity flags", name, len(values), len(valid)))
		}
		v = ValidityFromBools(valid)
	}

	return &Series{
		name:  name,
		dtype: dtype,
		data:  values,
		valid: v,
	}
}

// SeriesWithValidity builds a series reusing an existing validity bitmap.
func SeriesWithValidity[T Element](name string, values []T, valid Validity) *Series {
	s := NewSeries(name, values, nil)
	if valid.Len() != len(values) {
		panic(fmt.Sprintf("series %q: %d values but validity of length %d", name, len(values), valid.Len()))
	}
	s.valid = valid
	return s
}

// NullSeries builds an all-null series of the given type and length.
func NullSeries(name string, dtype FieldType, n int) *Series {
	s := &Series{
		name:  name,
		dtype: dtype,
		valid: NewValidity(n, false),
	}

	switch dtype {
	case Utf8FieldType:
		s.data = make([]string, n)
	case Int64FieldType:
		s.data = make([]int64, n)
	case Float64FieldType:
		s.data = make([]float64, n)
	case DatetimeFieldType:
		s.data = make([]time.Time, n)
	case FloatListFieldType:
		s.data = make([][]float64, n)
	default:
		panic("unknown field type " + dtype.String())
	}

	return s
}

// Values returns the backing slice of the series. The element type must
// match the declared dtype; a mismatch is a programming error.
func Values[T Element](s *Series) []T {
	data, ok := s.data.([]T)
	if !ok {
		panic(fmt.Sprintf("series %q holds %s, not %T", s.name, s.dtype.String(), data))
	}
	return data
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) Type() FieldType {
	return s.dtype
}

func (s *Series) Len() int {
	return s.valid.Len()
}

func (s *Series) IsNull(row int) bool {
	return !s.valid.Get(row)
}

func (s *Series) NullCount() int {
	return s.valid.CountNull()
}

func (s *Series) Validity() Validity {
	return s.valid
}

// take gathers the given rows into a fresh series, preserving order.
func (s *Series) take(rows []int) *Series {
	out := &Series{
		name:  s.name,
		dtype: s.dtype,
		valid: NewValidity(len(rows), false),
	}

	for i, row := range rows {
		if s.valid.Get(row) {
			out.valid.Set(i)
		}
	}

	switch data := s.data.(type) {
	case []string:
		out.data = gather(data, rows)
	case []int64:
		out.data = gather(data, rows)
	case []float64:
		out.data = gather(data, rows)
	case []time.Time:
		out.data = gather(data, rows)
	case [][]float64:
		out.data = gather(data, rows)
	default:
		panic("unknown field type " + s.dtype.String())
	}

	return out
}

func gather[T any](data []T, rows []int) []T {
	out := make([]T, len(rows))
	for i, row := range rows {
		out[i] = data[row]
	}
	return out
}

func (s *Series) equal(other *Series) bool {
	if s.name != other.name || s.dtype != other.dtype || s.Len() != other.Len() {
		return false
	}

	for i := 0; i < s.Len(); i++ {
		if s.valid.Get(i) != other.valid.Get(i) {
			return false
		}
		if !s.valid.Get(i) {
			continue
		}
		if !valueEqual(s, other, i) {
			return false
		}
	}

	return true
}

func valueEqual(a, b *Series, row int) bool {
	switch data := a.data.(type) {
	case []string:
		return data[row] == Values[string](b)[row]
	case []int64:
		return data[row] == Values[int64](b)[row]
	case []float64:
		return data[row] == Values[float64](b)[row]
	case []time.Time:
		return data[row].Equal(Values[time.Time](b)[row])
	case [][]float64:
		other := Values[[]float64](b)[row]
		if len(data[row]) != len(other) {
			return false
		}
		for i, v := range data[row] {
			if v != other[i] {
				return false
			}
		}
		return true
	default:
		panic("unknown field type " + a.dtype.String())
	}
}
