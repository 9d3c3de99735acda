package pipe

import "github.com/dot5enko/simple-frame-pipes/frame"

// DropRowsThatAreAllNull removes every row where all column values are null.
// Column set, column order and relative row order are preserved.
func (p *Piper) DropRowsThatAreAllNull(f *frame.Frame) *frame.Frame {
	if f.Width() == 0 {
		return f
	}

	anyValid := f.At(0).Validity().Clone()
	for i := 1; i < f.Width(); i++ {
		anyValid = anyValid.Union(f.At(i).Validity())
	}

	keep := anyValid.SetIndices()
	if len(keep) == f.Height() {
		return f
	}

	return f.Take(keep)
}

// DropColumnsThatAreAllNull removes every column whose null count equals the
// row count. Row count and surviving column order are preserved.
func (p *Piper) DropColumnsThatAreAllNull(f *frame.Frame) *frame.Frame {
	names := make([]string, 0, f.Width())

	for i := 0; i < f.Width(); i++ {
		col := f.At(i)
		if col.NullCount() == col.Len() {
			continue
		}
		names = append(names, col.Name())
	}

	if len(names) == f.Width() {
		return f
	}

	out, err := f.Select(names)
	if err != nil {
		panic(err) // names come from the frame itself
	}
	return out
}
