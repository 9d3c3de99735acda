// Package snapshot encodes a frame into a compressed in-memory blob and
// back, so cleaned frames can be handed across process boundaries without
// this module owning any file format. Datetimes are stored at microsecond
// precision.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/dot5enko/simple-frame-pipes/bits"
	"github.com/dot5enko/simple-frame-pipes/frame"
)

const codecVersion = 1

var (
	ErrUnknownVersion = errors.New("unknown snapshot version")
	ErrUnknownDtype   = errors.New("unknown dtype in snapshot")
)

// Encode serializes a frame into an lz4-compressed blob.
func Encode(f *frame.Frame) ([]byte, error) {

	w := bits.NewEncodeBuffer(1024, binary.LittleEndian)

	w.WriteByte(codecVersion)
	w.PutUUID(f.Uid())
	w.PutUint32(uint32(f.Width()))
	w.PutUint32(uint32(f.Height()))

	for i := 0; i < f.Width(); i++ {
		encodeSeries(w, f.At(i))
	}

	var compressed bytes.Buffer
	if err := compressLz4(w.Bytes(), &compressed); err != nil {
		return nil, fmt.Errorf("snapshot encode: %w", err)
	}

	return compressed.Bytes(), nil
}

func encodeSeries(w *bits.BitWriter, col *frame.Series) {
	w.PutString(col.Name())
	w.WriteByte(uint8(col.Type()))

	// validity, bit-packed
	n := col.Len()
	var packed uint8
	for i := 0; i < n; i++ {
		if !col.IsNull(i) {
			packed |= 1 << (i & 7)
		}
		if i&7 == 7 {
			w.WriteByte(packed)
			packed = 0
		}
	}
	if n&7 != 0 {
		w.WriteByte(packed)
	}

	switch col.Type() {
	case frame.Utf8FieldType:
		for _, v := range frame.Values[string](col) {
			w.PutString(v)
		}
	case frame.Int64FieldType:
		for _, v := range frame.Values[int64](col) {
			w.PutInt64(v)
		}
	case frame.Float64FieldType:
		for _, v := range frame.Values[float64](col) {
			w.PutFloat64(v)
		}
	case frame.DatetimeFieldType:
		for i, v := range frame.Values[time.Time](col) {
			if col.IsNull(i) {
				w.PutInt64(0)
				continue
			}
			w.PutInt64(v.UnixMicro())
		}
	case frame.FloatListFieldType:
		for _, list := range frame.Values[[]float64](col) {
			w.PutUint32(uint32(len(list)))
			for _, v := range list {
				w.PutFloat64(v)
			}
		}
	default:
		panic("unknown field type " + col.Type().String())
	}
}

// Decode rebuilds a frame from an Encode blob, lineage id included.
func Decode(data []byte) (*frame.Frame, error) {

	payload, err := decompressLz4(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}

	r := bits.NewReader(bytes.NewReader(payload), binary.LittleEndian)

	version, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}
	if version != codecVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}

	uid, err := r.ReadUUID()
	if err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}

	ncols, err := r.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}
	nrows, err := r.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}

	cols := make([]*frame.Series, 0, ncols)
	for i := uint32(0); i < ncols; i++ {
		col, decodeErr := decodeSeries(r, int(nrows))
		if decodeErr != nil {
			return nil, fmt.Errorf("snapshot decode: column %d: %w", i, decodeErr)
		}
		cols = append(cols, col)
	}

	return frame.NewWithUid(uid, cols...)
}

func decodeSeries(r *bits.BitsReader, nrows int) (*frame.Series, error) {

	name, err := r.ReadString()
	if err != nil {
		return nil, err
	}

	rawType, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	dtype := frame.FieldType(rawType)

	packed := make([]byte, (nrows+7)>>3)
	if len(packed) > 0 {
		if err := r.ReadBytes(len(packed), packed); err != nil {
			return nil, err
		}
	}

	valid := make([]bool, nrows)
	for i := range valid {
		valid[i] = packed[i>>3]&(1<<(i&7)) != 0
	}

	switch dtype {
	case frame.Utf8FieldType:
		values := make([]string, nrows)
		for i := range values {
			if values[i], err = r.ReadString(); err != nil {
				return nil, err
			}
		}
		return frame.NewSeries(name, values, valid), nil

	case frame.Int64FieldType:
		values := make([]int64, nrows)
		for i := range values {
			if values[i], err = r.ReadI64(); err != nil {
				return nil, err
			}
		}
		return frame.NewSeries(name, values, valid), nil

	case frame.Float64FieldType:
		values := make([]float64, nrows)
		for i := range values {
			if values[i], err = r.ReadF64(); err != nil {
				return nil, err
			}
		}
		return frame.NewSeries(name, values, valid), nil

	case frame.DatetimeFieldType:
		values := make([]time.Time, nrows)
		for i := range values {
			micros, readErr := r.ReadI64()
			if readErr != nil {
				return nil, readErr
			}
			if valid[i] {
				values[i] = time.UnixMicro(micros).UTC()
			}
		}
		return frame.NewSeries(name, values, valid), nil

	case frame.FloatListFieldType:
		values := make([][]float64, nrows)
		for i := range values {
			size, readErr := r.ReadU32()
			if readErr != nil {
				return nil, readErr
			}
			list := make([]float64, size)
			for j := range list {
				if list[j], err = r.ReadF64(); err != nil {
					return nil, err
				}
			}
			values[i] = list
		}
		return frame.NewSeries(name, values, valid), nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDtype, rawType)
	}
}
