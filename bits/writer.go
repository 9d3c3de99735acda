package bits

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"
)

// BitWriter appends fixed-width values to a growable byte buffer.
type BitWriter struct {
	pos   int
	data  []byte
	order binary.ByteOrder
}

func NewEncodeBuffer(sizeHint int, order binary.ByteOrder) *BitWriter {
	return &BitWriter{
		data:  make([]byte, sizeHint),
		order: order,
	}
}

func (w *BitWriter) grow(atLeast int) {
	newSize := len(w.data) * 2
	if w.pos+atLeast > newSize {
		newSize += atLeast
	}

	newBuf := make([]byte, newSize)
	copy(newBuf, w.data[:w.pos])
	w.data = newBuf
}

func (w *BitWriter) tryGrow(n int) {
	if w.pos+n > len(w.data) {
		w.grow(n)
	}
}

func (w *BitWriter) Position() int {
	return w.pos
}

func (w *BitWriter) Bytes() []byte {
	return w.data[:w.pos]
}

func (w *BitWriter) Write(p []byte) (int, error) {
	w.tryGrow(len(p))
	n := copy(w.data[w.pos:], p)
	w.pos += n
	return n, nil
}

func (w *BitWriter) WriteByte(u uint8) {
	w.tryGrow(1)
	w.data[w.pos] = u
	w.pos++
}

func (w *BitWriter) PutUint32(v uint32) {
	w.tryGrow(4)
	w.order.PutUint32(w.data[w.pos:], v)
	w.pos += 4
}

func (w *BitWriter) PutUint64(v uint64) {
	w.tryGrow(8)
	w.order.PutUint64(w.data[w.pos:], v)
	w.pos += 8
}

func (w *BitWriter) PutInt64(v int64) {
	w.PutUint64(uint64(v))
}

func (w *BitWriter) PutFloat64(f float64) {
	w.PutUint64(math.Float64bits(f))
}

func (w *BitWriter) PutString(s string) {
	w.PutUint32(uint32(len(s)))
	w.Write([]byte(s))
}

func (w *BitWriter) PutUUID(u uuid.UUID) {
	w.Write(u[:])
}
