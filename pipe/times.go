package pipe

import (
	"errors"
	"fmt"
	"time"

	"github.com/dot5enko/simple-frame-pipes/frame"
)

var ErrNotUtf8Column = errors.New("column is not a string column")

// layout assumed when the caller declared a column safe to convert
const implicitTimeLayout = "2006-01-02 15:04:05"

// DefaultTimeColumns are the columns ConvertTimesToDatetime targets when the
// caller passes none.
var DefaultTimeColumns = []string{"timestamp", "start_time", "created_at", "updated_at"}

// ConvertTimesToDatetime parses the given string columns (DefaultTimeColumns
// when cols is nil) as datetimes. Columns missing from the frame are
// silently skipped; a single malformed value fails the whole call.
func (p *Piper) ConvertTimesToDatetime(f *frame.Frame, cols []string) (*frame.Frame, error) {
	if cols == nil {
		cols = DefaultTimeColumns
	}

	present := []string{}
	for _, name := range cols {
		if _, ok := f.Column(name); ok {
			present = append(present, name)
		}
	}

	p.log.Info("converting times to datetime", "columns", present, "frame", f.Uid())

	out := f
	for _, name := range present {
		col, _ := out.Column(name)

		converted, err := parseDatetimeColumn(col, implicitTimeLayout)
		if err != nil {
			return nil, fmt.Errorf("convert times to datetime: column %q: %w", name, err)
		}

		out = replace(out, converted)
	}

	return out, nil
}

// parseDatetimeColumn converts a string column with a single layout.
// Nulls stay null; the first value that does not parse aborts.
func parseDatetimeColumn(col *frame.Series, layout string) (*frame.Series, error) {
	if col.Type() != frame.Utf8FieldType {
		return nil, fmt.Errorf("%w (%s)", ErrNotUtf8Column, col.Type().String())
	}

	values := frame.Values[string](col)
	parsed := make([]time.Time, len(values))

	for i, raw := range values {
		if col.IsNull(i) {
			continue
		}

		t, parseErr := time.Parse(layout, raw)
		if parseErr != nil {
			return nil, fmt.Errorf("value %q: %w", raw, parseErr)
		}
		parsed[i] = t
	}

	return frame.SeriesWithValidity(col.Name(), parsed, col.Validity().Clone()), nil
}
