package pipe

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/dot5enko/simple-frame-pipes/frame"
)

// layouts tried in order by TryToDatetime
var datetimeLayouts = []string{
	"January 02, 2006, 03:04 PM", // e.g. "February 22, 2023, 11:56 AM"
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z", // iso format, fractional seconds tolerated
}

// Utf8Promotion tries to promote every string column to a datetime, int64 or
// float64 column, in that order, stopping at the first conversion that holds
// for the whole column. Columns where nothing holds stay strings.
func (p *Piper) Utf8Promotion(f *frame.Frame) *frame.Frame {
	out := f

	for _, name := range f.Columns() {
		col, _ := out.Column(name)
		if col.Type() != frame.Utf8FieldType {
			continue
		}

		var ok bool

		out, ok = p.TryToDatetime(out, name)
		if ok {
			continue
		}

		out, ok = p.TryToNumeric(out, name, frame.Int64FieldType)
		if ok {
			continue
		}

		out, _ = p.TryToNumeric(out, name, frame.Float64FieldType)
	}

	return out
}

// TryToDatetime attempts to convert a string column to datetimes. A layout
// counts only if every non-null value parses under it; otherwise the next
// layout is tried. On failure the returned frame is the input, unchanged.
func (p *Piper) TryToDatetime(f *frame.Frame, col string) (*frame.Frame, bool) {
	column, ok := f.Column(col)
	if !ok || column.Type() != frame.Utf8FieldType {
		return f, false
	}

	for _, layout := range datetimeLayouts {
		converted, err := parseDatetimeColumn(column, layout)
		if err != nil {
			continue
		}
		return replace(f, converted), true
	}

	return f, false
}

// TryToNumeric attempts an all-or-nothing cast of a string column to Int64
// or Float64, stripping thousands-separator commas first. On failure the
// returned frame is the input, unchanged.
func (p *Piper) TryToNumeric(f *frame.Frame, col string, dtype frame.FieldType) (*frame.Frame, bool) {
	column, ok := f.Column(col)
	if !ok || column.Type() != frame.Utf8FieldType {
		return f, false
	}

	values := frame.Values[string](column)

	switch dtype {
	case frame.Int64FieldType:
		parsed := make([]int64, len(values))
		for i, raw := range values {
			if column.IsNull(i) {
				continue
			}
			// base 10 on purpose: zero-padded values are decimal here
			v, castErr := strconv.ParseInt(strings.ReplaceAll(raw, ",", ""), 10, 64)
			if castErr != nil {
				return f, false
			}
			parsed[i] = v
		}
		return replace(f, frame.SeriesWithValidity(col, parsed, column.Validity().Clone())), true

	case frame.Float64FieldType:
		parsed := make([]float64, len(values))
		for i, raw := range values {
			if column.IsNull(i) {
				continue
			}
			v, castErr := cast.ToFloat64E(strings.ReplaceAll(raw, ",", ""))
			if castErr != nil {
				return f, false
			}
			parsed[i] = v
		}
		return replace(f, frame.SeriesWithValidity(col, parsed, column.Validity().Clone())), true

	default:
		return f, false
	}
}
