package frame

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrRowCountMismatch = errors.New("columns have differing row counts")
	ErrDuplicateColumn  = errors.New("duplicate column name")
	ErrNoSuchColumn     = errors.New("no such column")
)

// Frame is an ordered set of series with a uniform row count. The uid is a
// lineage id: transforms derive new frames that keep it, so log lines from a
// whole pipeline run correlate.
type Frame struct {
	uid  uuid.UUID
	cols []*Series
}

func New(cols ...*Series) (*Frame, error) {

	seen := map[string]struct{}{}

	for _, col := range cols {
		if _, dup := seen[col.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.Name())
		}
		seen[col.Name()] = struct{}{}

		if col.Len() != cols[0].Len() {
			return nil, fmt.Errorf("%w: %q has %d rows, %q has %d",
				ErrRowCountMismatch, col.Name(), col.Len(), cols[0].Name(), cols[0].Len())
		}
	}

	return &Frame{
		uid:  uuid.New(),
		cols: cols,
	}, nil
}

// NewWithUid rebuilds a frame under an existing lineage id, e.g. when
// decoding a snapshot.
func NewWithUid(uid uuid.UUID, cols ...*Series) (*Frame, error) {
	f, err := New(cols...)
	if err != nil {
		return nil, err
	}
	f.uid = uid
	return f, nil
}

func MustNew(cols ...*Series) *Frame {
	f, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Frame) Uid() uuid.UUID {
	return f.uid
}

func (f *Frame) Height() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

func (f *Frame) Width() int {
	return len(f.cols)
}

// Columns returns column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.cols))
	for i, col := range f.cols {
		names[i] = col.Name()
	}
	return names
}

func (f *Frame) Column(name string) (*Series, bool) {
	for _, col := range f.cols {
		if col.Name() == name {
			return col, true
		}
	}
	return nil, false
}

func (f *Frame) At(i int) *Series {
	return f.cols[i]
}

// derive keeps the lineage uid while swapping the column set.
func (f *Frame) derive(cols []*Series) *Frame {
	return &Frame{
		uid:  f.uid,
		cols: cols,
	}
}

// WithColumn replaces the same-named column in place, or appends a new one.
func (f *Frame) WithColumn(s *Series) (*Frame, error) {
	if len(f.cols) > 0 && s.Len() != f.Height() {
		return nil, fmt.Errorf("%w: %q has %d rows, frame has %d",
			ErrRowCountMismatch, s.Name(), s.Len(), f.Height())
	}

	cols := make([]*Series, len(f.cols))
	copy(cols, f.cols)

	for i, col := range cols {
		if col.Name() == s.Name() {
			cols[i] = s
			return f.derive(cols), nil
		}
	}

	return f.derive(append(cols, s)), nil
}

// Select keeps only the named columns, in the order given.
func (f *Frame) Select(names []string) (*Frame, error) {
	cols := make([]*Series, 0, len(names))
	for _, name := range names {
		col, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
		}
		cols = append(cols, col)
	}
	return f.derive(cols), nil
}

// Take gathers the given rows, in the order given, from every column.
func (f *Frame) Take(rows []int) *Frame {
	cols := make([]*Series, len(f.cols))
	for i, col := range f.cols {
		cols[i] = col.take(rows)
	}
	return f.derive(cols)
}

// Equal compares column names, order, types, validity and values.
// Lineage uids are ignored.
func (f *Frame) Equal(other *Frame) bool {
	if f.Width() != other.Width() {
		return false
	}
	for i, col := range f.cols {
		if !col.equal(other.cols[i]) {
			return false
		}
	}
	return true
}
