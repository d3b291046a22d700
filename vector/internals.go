package vector

import (
	"fmt"
	"math"
)

// coveringCapacity returns the smallest power of two ≥ n, or zero for n ≤ 0.
// Vector capacities always take one of these values.
func coveringCapacity(n int) int {
	if n <= 0 {
		return 0
	}
	c := 1
	for c < n {
		if c > math.MaxInt/2 {
			panic(fmt.Sprintf("vector: no power-of-two capacity covers %d elements", n))
		}
		c *= 2
	}
	return c
}

// ensure grows the backing buffer until it has room for n elements. Growth
// doubles the current capacity, repeatedly if necessary, keeping it a power
// of two.
func (v *Vector) ensure(n int) {
	for len(v.buf) < n {
		v.grow()
	}
}

// grow reallocates the backing buffer at double the current capacity (or at
// capacity 1 from an empty buffer), preserving all elements at their
// indices.
func (v *Vector) grow() {
	c := len(v.buf)
	if c == 0 {
		v.buf = make([]int, 1)
		return
	}
	if c > math.MaxInt/2 {
		panic(fmt.Sprintf("vector: grow: capacity %d cannot double", c))
	}
	tracer().Debugf("growing capacity %d to %d", c, 2*c)
	buf := make([]int, 2*c)
	copy(buf, v.buf)
	v.buf = buf
}

// rshift moves every element at an index > pivot up by offset positions,
// growing length (and, if needed, capacity) first. Elements at indices
// ≤ pivot stay put; the tail moves as one block, safe against overlap of
// source and destination ranges. A pivot of -1 shifts the complete vector.
func (v *Vector) rshift(pivot, offset int) {
	assertThat(pivot >= -1 && pivot < v.length, "shift pivot out of bounds: %d with length %d", pivot, v.length)
	assertThat(offset >= 0, "shift offset may not be negative: %d", offset)
	if offset == 0 {
		return
	}
	start := pivot + 1
	tail := v.length - start
	v.length += offset
	v.ensure(v.length)
	copy(v.buf[start+offset:start+offset+tail], v.buf[start:start+tail])
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
