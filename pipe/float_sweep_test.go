package pipe

import (
	"testing"
	"time"

	"github.com/dot5enko/simple-frame-pipes/frame"
)

func TestFloatSweepConvertsWhatItCan(t *testing.T) {

	when := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	f := frame.MustNew(
		frame.NewSeries("ints", []int64{1, 2}, nil),
		frame.NewSeries("floats", []float64{1.5, 2.5}, nil),
		frame.NewSeries("numeric_strings", []string{"3", "4.5"}, nil),
		frame.NewSeries("words", []string{"a", "b"}, nil),
		frame.NewSeries("when", []time.Time{when, when}, nil),
		frame.NewSeries("zones", [][]float64{{1}, {2}}, nil),
	)

	out := testPiper().TryConvertDtypesToFloatIfPossible(f)

	expectType := func(name string, dtype frame.FieldType) {
		col, _ := out.Column(name)
		if col.Type() != dtype {
			t.Errorf("column %s: expected %s, got %s", name, dtype.String(), col.Type().String())
		}
	}

	expectType("ints", frame.Float64FieldType)
	expectType("floats", frame.Float64FieldType)
	expectType("numeric_strings", frame.Float64FieldType)
	expectType("when", frame.Float64FieldType)

	// failures are swallowed, columns stay put
	expectType("words", frame.Utf8FieldType)
	expectType("zones", frame.FloatListFieldType)

	ints, _ := out.Column("ints")
	if got := frame.Values[float64](ints)[1]; got != 2.0 {
		t.Errorf("expected 2.0, got %v", got)
	}

	converted, _ := out.Column("when")
	if got := frame.Values[float64](converted)[0]; got != float64(when.UnixMicro()) {
		t.Errorf("expected epoch micros %v, got %v", float64(when.UnixMicro()), got)
	}
}

func TestFloatSweepNeverErrors(t *testing.T) {

	f := frame.MustNew(
		frame.NewSeries("words", []string{"a"}, nil),
	)

	out := testPiper().TryConvertDtypesToFloatIfPossible(f)
	if !out.Equal(f) {
		t.Errorf("unconvertible frame changed")
	}
}
