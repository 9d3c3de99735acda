package pipe

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dot5enko/simple-frame-pipes/frame"
)

// SortColumnsByNullCount reorders columns ascending by null count, ties
// broken by column name ascending. Data is untouched, only column order
// changes.
func (p *Piper) SortColumnsByNullCount(f *frame.Frame) *frame.Frame {
	type colNulls struct {
		name  string
		nulls int
	}

	keys := make([]colNulls, f.Width())
	for i := 0; i < f.Width(); i++ {
		col := f.At(i)
		keys[i] = colNulls{
			name:  col.Name(),
			nulls: col.NullCount(),
		}
	}

	slices.SortStableFunc(keys, func(a, b colNulls) int {
		if a.nulls != b.nulls {
			return cmp.Compare(a.nulls, b.nulls)
		}
		return strings.Compare(a.name, b.name)
	})

	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = key.name
	}

	out, err := f.Select(names)
	if err != nil {
		panic(err) // names come from the frame itself
	}
	return out
}
