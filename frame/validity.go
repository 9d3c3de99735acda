package frame

import "math/bits"

// Validity tracks which rows of a series hold a concrete value.
// A cleared bit means null.
type Validity struct {
	words []uint64
	n     int
}

func NewValidity(n int, allValid bool) Validity {
	result := Validity{
		words: make([]uint64, (n+63)>>6),
		n:     n,
	}

	if allValid {
		for i := range result.words {
			result.words[i] = ^uint64(0)
		}
		result.maskTail()
	}

	return result
}

func ValidityFromBools(valid []bool) Validity {
	result := NewValidity(len(valid), false)
	for i, ok := range valid {
		if ok {
			result.Set(i)
		}
	}
	return result
}

// bits past n must stay clear so Count stays exact
func (v *Validity) maskTail() {
	rem := v.n & 63
	if rem != 0 && len(v.words) > 0 {
		v.words[len(v.words)-1] &= (uint64(1) << rem) - 1
	}
}

func (v *Validity) Set(bit int) {
	word := bit >> 6
	mask := uint64(1) << (bit & 63)
	v.words[word] |= mask
}

func (v *Validity) Clear(bit int) {
	word := bit >> 6
	mask := uint64(1) << (bit & 63)
	v.words[word] &^= mask
}

func (v Validity) Get(bit int) bool {
	word := bit >> 6
	return (v.words[word]>>(bit&63))&1 == 1
}

func (v Validity) Len() int {
	return v.n
}

func (v Validity) CountValid() int {
	c := 0
	for _, w := range v.words {
		c += bits.OnesCount64(w)
	}
	return c
}

func (v Validity) CountNull() int {
	return v.n - v.CountValid()
}

func (v Validity) Clone() Validity {
	out := Validity{
		words: make([]uint64, len(v.words)),
		n:     v.n,
	}
	copy(out.words, v.words)
	return out
}

func (v Validity) Union(other Validity) Validity {
	if other.n != v.n {
		panic("validity length mismatch")
	}
	out := v.Clone()
	for i := range out.words {
		out.words[i] |= other.words[i]
	}
	return out
}

// SetIndices returns ascending row indices with the bit set.
func (v Validity) SetIndices() []int {
	out := make([]int, 0, v.CountValid())
	for wi, w := range v.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi*64+tz)
			w &= w - 1 // clear lowest set bit
		}
	}
	return out
}
