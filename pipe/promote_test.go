package pipe

import (
	"testing"
	"time"

	"github.com/dot5enko/simple-frame-pipes/frame"
)

func TestTryToNumericCommaBearingInt(t *testing.T) {

	f := frame.MustNew(frame.NewSeries("n", []string{"1,234"}, nil))

	out, ok := testPiper().TryToNumeric(f, "n", frame.Int64FieldType)
	if !ok {
		t.Fatalf("expected success")
	}

	col, _ := out.Column("n")
	if col.Type() != frame.Int64FieldType {
		t.Fatalf("expected Int64, got %s", col.Type().String())
	}
	if got := frame.Values[int64](col)[0]; got != 1234 {
		t.Errorf("expected 1234, got %d", got)
	}
}

func TestTryToNumericRejectsGarbage(t *testing.T) {

	f := frame.MustNew(frame.NewSeries("n", []string{"1", "abc"}, nil))

	out, ok := testPiper().TryToNumeric(f, "n", frame.Int64FieldType)
	if ok {
		t.Fatalf("expected failure")
	}

	// observably unchanged
	if !out.Equal(f) {
		t.Errorf("failed attempt modified the frame")
	}
}

func TestTryToNumericFloat(t *testing.T) {

	f := frame.MustNew(frame.NewSeries("n", []string{"1,234.5", "2.5"}, nil))

	out, ok := testPiper().TryToNumeric(f, "n", frame.Float64FieldType)
	if !ok {
		t.Fatalf("expected success")
	}

	col, _ := out.Column("n")
	values := frame.Values[float64](col)
	if values[0] != 1234.5 || values[1] != 2.5 {
		t.Errorf("expected [1234.5 2.5], got %v", values)
	}
}

func TestTryToNumericMissingColumn(t *testing.T) {

	f := frame.MustNew(frame.NewSeries("n", []string{"1"}, nil))

	_, ok := testPiper().TryToNumeric(f, "nope", frame.Int64FieldType)
	if ok {
		t.Errorf("missing column reported success")
	}
}

func TestTryToDatetimeLayouts(t *testing.T) {

	cases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"verbose", "February 22, 2023, 11:56 AM", time.Date(2023, 2, 22, 11, 56, 0, 0, time.UTC)},
		{"plain", "2023-01-01 10:00:00", time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"iso", "2023-01-01T10:00:00.500Z", time.Date(2023, 1, 1, 10, 0, 0, 500000000, time.UTC)},
		{"iso_no_fraction", "2023-01-01T10:00:00Z", time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {

			f := frame.MustNew(frame.NewSeries("t", []string{tc.value}, nil))

			out, ok := testPiper().TryToDatetime(f, "t")
			if !ok {
				t.Fatalf("expected %q to parse", tc.value)
			}

			col, _ := out.Column("t")
			if col.Type() != frame.DatetimeFieldType {
				t.Fatalf("expected Datetime, got %s", col.Type().String())
			}
			if got := frame.Values[time.Time](col)[0]; !got.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTryToDatetimeAllOrNothing(t *testing.T) {

	// second value parses under no layout, so the whole column stays put
	f := frame.MustNew(frame.NewSeries("t", []string{"2023-01-01 10:00:00", "not a time"}, nil))

	out, ok := testPiper().TryToDatetime(f, "t")
	if ok {
		t.Fatalf("expected failure")
	}
	if !out.Equal(f) {
		t.Errorf("failed attempt modified the frame")
	}
}

func TestUtf8Promotion(t *testing.T) {

	f := frame.MustNew(
		frame.NewSeries("ints", []string{"1", "2", "3"}, nil),
		frame.NewSeries("times", []string{"2023-01-01 10:00:00", "2023-01-02 10:00:00", "2023-01-03 10:00:00"}, nil),
		frame.NewSeries("words", []string{"a", "b", "c"}, nil),
		frame.NewSeries("floats", []string{"1.5", "2.5", "3.5"}, nil),
		frame.NewSeries("already", []int64{9, 9, 9}, nil),
	)

	out := testPiper().Utf8Promotion(f)

	expectType := func(name string, dtype frame.FieldType) {
		col, _ := out.Column(name)
		if col.Type() != dtype {
			t.Errorf("column %s: expected %s, got %s", name, dtype.String(), col.Type().String())
		}
	}

	expectType("ints", frame.Int64FieldType)
	expectType("times", frame.DatetimeFieldType)
	expectType("words", frame.Utf8FieldType)
	expectType("floats", frame.Float64FieldType)
	expectType("already", frame.Int64FieldType)

	ints, _ := out.Column("ints")
	values := frame.Values[int64](ints)
	if values[0] != 1 || values[1] != 2 || values[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", values)
	}
}

func TestUtf8PromotionSkipsNulls(t *testing.T) {

	f := frame.MustNew(
		frame.NewSeries("n", []string{"1", ""}, []bool{true, false}),
	)

	out := testPiper().Utf8Promotion(f)

	col, _ := out.Column("n")
	if col.Type() != frame.Int64FieldType {
		t.Fatalf("null should not block promotion, got %s", col.Type().String())
	}
	if !col.IsNull(1) {
		t.Errorf("null row became concrete")
	}
}
