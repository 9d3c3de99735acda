// Package lazy provides a deferred counterpart to pipe: transforms are
// recorded on a query and only run when Collect materializes the frame.
// Both variants share the same underlying transform functions, so eager and
// lazy runs of the same chain produce identical frames.
package lazy

import (
	"fmt"

	"github.com/dot5enko/simple-frame-pipes/frame"
	"github.com/dot5enko/simple-frame-pipes/pipe"
)

type step struct {
	name string
	fn   func(*frame.Frame) (*frame.Frame, error)
}

// Frame is a recorded chain of transforms over a source frame.
type Frame struct {
	src   *frame.Frame
	piper *pipe.Piper
	steps []step
}

func From(f *frame.Frame) *Frame {
	return New(f, pipe.Default)
}

func New(f *frame.Frame, p *pipe.Piper) *Frame {
	return &Frame{
		src:   f,
		piper: p,
	}
}

func (l *Frame) enqueue(name string, fn func(*frame.Frame) (*frame.Frame, error)) *Frame {
	steps := make([]step, len(l.steps), len(l.steps)+1)
	copy(steps, l.steps)

	return &Frame{
		src:   l.src,
		piper: l.piper,
		steps: append(steps, step{name: name, fn: fn}),
	}
}

// infallible wraps transforms that cannot fail into the step signature.
func infallible(fn func(*frame.Frame) *frame.Frame) func(*frame.Frame) (*frame.Frame, error) {
	return func(f *frame.Frame) (*frame.Frame, error) {
		return fn(f), nil
	}
}

func (l *Frame) DropRowsThatAreAllNull() *Frame {
	return l.enqueue("drop_rows_that_are_all_null", infallible(l.piper.DropRowsThatAreAllNull))
}

func (l *Frame) DropColumnsThatAreAllNull() *Frame {
	return l.enqueue("drop_columns_that_are_all_null", infallible(l.piper.DropColumnsThatAreAllNull))
}

func (l *Frame) SemicircleToDegrees() *Frame {
	return l.enqueue("semicircle_to_degrees", infallible(l.piper.SemicircleToDegrees))
}

func (l *Frame) ConvertTimesToDatetime(cols []string) *Frame {
	return l.enqueue("convert_times_to_datetime", func(f *frame.Frame) (*frame.Frame, error) {
		return l.piper.ConvertTimesToDatetime(f, cols)
	})
}

func (l *Frame) CastTimeInZoneStringToListOfFloat(cols []string) *Frame {
	return l.enqueue("cast_time_in_zone_string_to_list_of_float", func(f *frame.Frame) (*frame.Frame, error) {
		return l.piper.CastTimeInZoneStringToListOfFloat(f, cols)
	})
}

func (l *Frame) Utf8Promotion() *Frame {
	return l.enqueue("utf8_promotion", infallible(l.piper.Utf8Promotion))
}

func (l *Frame) TryConvertDtypesToFloatIfPossible() *Frame {
	return l.enqueue("try_convert_dtypes_to_float_if_possible", infallible(l.piper.TryConvertDtypesToFloatIfPossible))
}

// SortColumnsByNullCount defers the reorder; by the time it runs inside
// Collect the frame is materialized, so the null counts it sorts by are
// concrete values.
func (l *Frame) SortColumnsByNullCount() *Frame {
	return l.enqueue("sort_columns_by_null_count", infallible(l.piper.SortColumnsByNullCount))
}

func (l *Frame) Magic() *Frame {
	return l.enqueue("magic", infallible(l.piper.Magic))
}

// Collect runs the recorded steps in order and returns the materialized
// frame. The first failing step aborts the whole chain.
func (l *Frame) Collect() (*frame.Frame, error) {
	out := l.src

	for _, s := range l.steps {
		next, err := s.fn(out)
		if err != nil {
			return nil, fmt.Errorf("collect: step %s: %w", s.name, err)
		}
		out = next
	}

	return out, nil
}
