// Package pipe holds the frame-cleaning transforms used to normalize raw
// activity records before analysis. Every transform takes a frame and
// returns a new one; input frames are never mutated.
package pipe

import (
	"log/slog"

	"github.com/dot5enko/simple-frame-pipes/frame"
)

type Piper struct {
	log *slog.Logger
}

// New builds a Piper logging through the given logger.
// A nil logger falls back to slog.Default().
func New(log *slog.Logger) *Piper {
	if log == nil {
		log = slog.Default()
	}
	return &Piper{log: log}
}

var Default = New(nil)

// lengths are equal by construction everywhere this is called
func replace(f *frame.Frame, s *frame.Series) *frame.Frame {
	out, err := f.WithColumn(s)
	if err != nil {
		panic(err)
	}
	return out
}
