package pipe

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/dot5enko/simple-frame-pipes/frame"
)

// DefaultZoneColumns are the columns CastTimeInZoneStringToListOfFloat
// targets when the caller passes none.
var DefaultZoneColumns = []string{"time_in_hr_zone_sec", "time_in_pwr_zone_sec"}

// CastTimeInZoneStringToListOfFloat splits pipe-delimited zone strings like
// "10.5|20.0|5.5" into float lists. Columns missing from the frame are
// silently skipped; a single malformed segment fails the whole call.
func (p *Piper) CastTimeInZoneStringToListOfFloat(f *frame.Frame, cols []string) (*frame.Frame, error) {
	if cols == nil {
		cols = DefaultZoneColumns
	}

	out := f
	for _, name := range cols {
		col, ok := out.Column(name)
		if !ok {
			continue
		}

		if col.Type() != frame.Utf8FieldType {
			return nil, fmt.Errorf("cast zone strings: column %q: %w (%s)", name, ErrNotUtf8Column, col.Type().String())
		}

		values := frame.Values[string](col)
		lists := make([][]float64, len(values))

		for i, raw := range values {
			if col.IsNull(i) {
				continue
			}

			segments := strings.Split(raw, "|")
			list := make([]float64, len(segments))

			for j, segment := range segments {
				v, castErr := cast.ToFloat64E(segment)
				if castErr != nil {
					return nil, fmt.Errorf("cast zone strings: column %q value %q: %w", name, raw, castErr)
				}
				list[j] = v
			}

			lists[i] = list
		}

		out = replace(out, frame.SeriesWithValidity(name, lists, col.Validity().Clone()))
	}

	return out, nil
}
