package snapshot

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/dot5enko/simple-frame-pipes/frame"
)

func TestSnapshotRoundTrip(t *testing.T) {

	when := time.Date(2023, 2, 22, 11, 56, 0, 0, time.UTC)

	f := frame.MustNew(
		frame.NewSeries("name", []string{"ride", "", "run"}, []bool{true, false, true}),
		frame.NewSeries("steps", []int64{100, 0, 300}, []bool{true, false, true}),
		frame.NewSeries("pace", []float64{5.5, 0, 4.5}, []bool{true, false, true}),
		frame.NewSeries("when", []time.Time{when, {}, when.Add(time.Hour)}, []bool{true, false, true}),
		frame.NewSeries("zones", [][]float64{{1, 2}, nil, {3}}, []bool{true, false, true}),
	)

	blob, err := Encode(f)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	restored, err := Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !f.Equal(restored) {
		t.Errorf("round trip changed the frame")
	}

	if f.Uid() != restored.Uid() {
		t.Errorf("lineage id lost: %s vs %s", f.Uid(), restored.Uid())
	}
}

func TestSnapshotEmptyFrame(t *testing.T) {

	f := frame.MustNew(
		frame.NewSeries("a", []int64{}, nil),
	)

	blob, err := Encode(f)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	restored, err := Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if restored.Width() != 1 || restored.Height() != 0 {
		t.Errorf("expected 1x0 frame, got %dx%d", restored.Width(), restored.Height())
	}
}

func TestSnapshotRejectsGarbage(t *testing.T) {

	if _, err := Decode([]byte("definitely not a snapshot")); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}

func TestSnapshotRejectsUnknownVersion(t *testing.T) {

	f := frame.MustNew(frame.NewSeries("a", []int64{1}, nil))

	blob, err := Encode(f)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	payload, err := decompressLz4(blob)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}

	payload[0] = 99

	var recompressed bytes.Buffer
	if err := compressLz4(payload, &recompressed); err != nil {
		t.Fatalf("compress: %v", err)
	}

	_, err = Decode(recompressed.Bytes())
	if !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("expected ErrUnknownVersion, got %v", err)
	}
}
