package template

import (
	"fmt"
	"strconv"
)

// 🎯 Sequence is the shared counter behind {seq} and {seq_raw}. Values are
// handed out through Frames, one Frame per plan entry, in plan order.
// A Sequence is not safe for concurrent use; planning is sequential.
type Sequence struct {
	next int
	step int
	pad  int
}

// 🏭 NewSequence returns a counter that starts at start and advances by
// step on each draw. pad is the zero-padded width of {seq}; pad <= 0
// disables padding. step may be negative.
func NewSequence(start, step, pad int) *Sequence {
	return &Sequence{next: start, step: step, pad: pad}
}

// 🏭 Frame reserves the per-entry view of the counter. The first {seq} or
// {seq_raw} evaluation inside the frame draws exactly one value and
// advances the counter; every later evaluation in the same frame reuses
// that value. A frame that is never evaluated consumes nothing.
func (s *Sequence) Frame() *Frame {
	return &Frame{seq: s}
}

// 📦 Frame is one entry's window onto its Sequence.
type Frame struct {
	seq   *Sequence
	drawn bool
	value int
}

func (f *Frame) draw() int {
	if !f.drawn {
		f.value = f.seq.next
		f.seq.next += f.seq.step
		f.drawn = true
	}
	return f.value
}

// 📝 Value returns the padded rendering, drawing on first use. A value
// whose decimal form is wider than the pad renders in full.
func (f *Frame) Value() string {
	v := f.draw()
	if f.seq.pad > 0 {
		return fmt.Sprintf("%0*d", f.seq.pad, v)
	}
	return strconv.Itoa(v)
}

// 📝 Raw returns the unpadded rendering, drawing on first use.
func (f *Frame) Raw() string {
	return strconv.Itoa(f.draw())
}

// 🔍 Consumed reports whether this frame drew a value from its Sequence.
func (f *Frame) Consumed() bool {
	return f.drawn
}
