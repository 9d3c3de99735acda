package pipe

import "github.com/dot5enko/simple-frame-pipes/frame"

// Magic runs the default end-to-end cleaning pipeline: drop all-null rows,
// drop all-null columns, promote string columns, convert semicircles to
// degrees. Everything else is opt-in.
func (p *Piper) Magic(f *frame.Frame) *frame.Frame {
	out := p.DropRowsThatAreAllNull(f)
	out = p.DropColumnsThatAreAllNull(out)
	out = p.Utf8Promotion(out)
	out = p.SemicircleToDegrees(out)
	return out
}
