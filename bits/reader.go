package bits

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/google/uuid"
)

var ErrReadMismatch = errors.New("read size mismatch")

const maxReaderBufferSize = 64

// BitsReader reads fixed-width values off an io.Reader.
type BitsReader struct {
	readBuffer [maxReaderBufferSize]byte

	buf   io.Reader
	order binary.ByteOrder
}

func NewReader(buf io.Reader, order binary.ByteOrder) *BitsReader {
	return &BitsReader{buf: buf, order: order}
}

func (r *BitsReader) readNextBytesIntoReadBuffer(size int) error {
	n, err := io.ReadFull(r.buf, r.readBuffer[:size])
	if err != nil {
		return err
	}
	if n != size {
		return ErrReadMismatch
	}
	return nil
}

func (r *BitsReader) ReadU8() (uint8, error) {
	if err := r.readNextBytesIntoReadBuffer(1); err != nil {
		return 0, err
	}
	return r.readBuffer[0], nil
}

func (r *BitsReader) ReadU32() (uint32, error) {
	if err := r.readNextBytesIntoReadBuffer(4); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.readBuffer[:4]), nil
}

func (r *BitsReader) ReadU64() (uint64, error) {
	if err := r.readNextBytesIntoReadBuffer(8); err != nil {
		return 0, err
	}
	return r.order.Uint64(r.readBuffer[:8]), nil
}

func (r *BitsReader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

func (r *BitsReader) ReadF64() (float64, error) {
	u, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

func (r *BitsReader) ReadUUID() (result uuid.UUID, err error) {
	err = r.ReadBytes(len(result), result[:])
	return result, err
}

func (r *BitsReader) ReadBytes(n int, out []byte) error {
	read, err := io.ReadFull(r.buf, out[:n])
	if err != nil {
		return err
	}
	if read != n {
		return ErrReadMismatch
	}
	return nil
}

func (r *BitsReader) ReadString() (string, error) {
	size, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}

	out := make([]byte, size)
	if err := r.ReadBytes(int(size), out); err != nil {
		return "", err
	}
	return string(out), nil
}
