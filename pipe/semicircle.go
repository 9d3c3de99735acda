package pipe

import (
	"strings"

	"github.com/dot5enko/simple-frame-pipes/frame"
	"github.com/dot5enko/simple-frame-pipes/ops"
)

// 360 degrees spread over the full int32 range
const semicircleFactor = 180.0 / float64(1<<31)

// SemicircleToDegrees rescales every numeric column whose name contains
// "_lat" or "_lon" from GPS semicircles to degrees. Other columns pass
// through unchanged.
func (p *Piper) SemicircleToDegrees(f *frame.Frame) *frame.Frame {
	out := f
	affected := []string{}

	for i := 0; i < f.Width(); i++ {
		col := f.At(i)
		name := col.Name()

		if !strings.Contains(name, "_lat") && !strings.Contains(name, "_lon") {
			continue
		}
		if !col.Type().Numeric() {
			continue
		}

		var scaled []float64

		switch col.Type() {
		case frame.Int64FieldType:
			values := frame.Values[int64](col)
			scaled = make([]float64, len(values))
			ops.ScaleToFloat64(values, semicircleFactor, scaled)
		case frame.Float64FieldType:
			values := frame.Values[float64](col)
			scaled = make([]float64, len(values))
			ops.ScaleToFloat64(values, semicircleFactor, scaled)
		}

		out = replace(out, frame.SeriesWithValidity(name, scaled, col.Validity().Clone()))
		affected = append(affected, name)
	}

	p.log.Info("converting semicircles to degrees", "columns", affected, "frame", f.Uid())

	return out
}
