package pipe

import (
	"time"

	"github.com/spf13/cast"

	"github.com/dot5enko/simple-frame-pipes/frame"
	"github.com/dot5enko/simple-frame-pipes/ops"
)

// TryConvertDtypesToFloatIfPossible attempts, per column and regardless of
// the current dtype, a cast to Float64. Columns that cannot be cast are left
// as they are and no failure is reported anywhere; callers cannot tell
// "already float" from "unconvertible" from "converted now".
func (p *Piper) TryConvertDtypesToFloatIfPossible(f *frame.Frame) *frame.Frame {
	out := f

	for _, name := range f.Columns() {
		col, _ := out.Column(name)

		converted, ok := castSeriesToFloat64(col)
		if !ok {
			p.log.Debug("column not convertible to float", "column", name, "dtype", col.Type().String())
			continue
		}

		out = replace(out, converted)
	}

	return out
}

func castSeriesToFloat64(col *frame.Series) (*frame.Series, bool) {
	switch col.Type() {

	case frame.Float64FieldType:
		return col, true

	case frame.Int64FieldType:
		return frame.SeriesWithValidity(col.Name(), ops.ToFloat64(frame.Values[int64](col)), col.Validity().Clone()), true

	case frame.DatetimeFieldType:
		// epoch microseconds, the engine's native datetime unit
		values := frame.Values[time.Time](col)
		out := make([]float64, len(values))
		for i, t := range values {
			if col.IsNull(i) {
				continue
			}
			out[i] = float64(t.UnixMicro())
		}
		return frame.SeriesWithValidity(col.Name(), out, col.Validity().Clone()), true

	case frame.Utf8FieldType:
		values := frame.Values[string](col)
		out := make([]float64, len(values))
		for i, raw := range values {
			if col.IsNull(i) {
				continue
			}
			v, err := cast.ToFloat64E(raw)
			if err != nil {
				return nil, false
			}
			out[i] = v
		}
		return frame.SeriesWithValidity(col.Name(), out, col.Validity().Clone()), true

	default:
		return nil, false
	}
}
