package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is thrown if an index or a slice range does not fit within a
// vector's current length.
var ErrOutOfRange = errors.New("index out of range")

// Vector is a growable array of integers. It owns a contiguous backing
// buffer with room for Cap() elements, of which the first Len() are valid.
//
// The zero value is an empty vector, ready for use.
type Vector struct {
	buf    []int // owned backing buffer; len(buf) is the vector's capacity
	length int   // number of valid elements, length ≤ len(buf)
}

// New creates an empty vector.
//
// Use it like this:
//
//     vec := vector.New(vector.WithCapacity(64))
//
func New(opts ...Option) *Vector {
	v := &Vector{}
	for _, option := range opts {
		option.config(v)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(*Vector)
}

// WithCapacity is an option to pre-allocate room for n elements. The
// resulting capacity is the smallest power of two ≥ n; n ≤ 0 allocates
// nothing.
func WithCapacity(n int) Option {
	conf := func(v *Vector) {
		if c := coveringCapacity(n); c > 0 {
			v.buf = make([]int, c)
		}
	}
	return Option{config: conf}
}

// FromSlice creates a vector holding a copy of values. The input slice
// remains untouched and independent of the new vector.
func FromSlice(values []int) *Vector {
	v := &Vector{}
	if len(values) == 0 {
		return v
	}
	v.buf = make([]int, coveringCapacity(len(values)))
	v.length = copy(v.buf, values)
	return v
}

// Adopt creates a vector which takes ownership of buf instead of copying it.
// The caller must not use buf afterwards; the vector will write through it.
// Capacity becomes the smallest power of two covering len(buf). If cap(buf)
// falls short of that, the elements move into a fresh allocation.
func Adopt(buf []int) *Vector {
	v := &Vector{}
	if len(buf) == 0 {
		return v
	}
	c := coveringCapacity(len(buf))
	if cap(buf) >= c {
		v.buf = buf[:c]
		v.length = len(buf)
		return v
	}
	tracer().Debugf("adopted buffer has capacity %d, reallocating to %d", cap(buf), c)
	v.buf = make([]int, c)
	v.length = copy(v.buf, buf)
	return v
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements currently held by v.
func (v *Vector) Len() int {
	return v.length
}

// Cap returns the number of allocated element slots, always either zero or a
// power of two.
func (v *Vector) Cap() int {
	return len(v.buf)
}

// Get returns the element at index i. It panics if i is out of range, just
// as indexing a slice would.
func (v *Vector) Get(i int) int {
	assertThat(i >= 0 && i < v.length, "index out of bounds: %d with length %d", i, v.length)
	return v.buf[i]
}

// Set replaces the element at index i. It panics if i is out of range, just
// as indexing a slice would.
func (v *Vector) Set(i int, value int) {
	assertThat(i >= 0 && i < v.length, "index out of bounds: %d with length %d", i, v.length)
	v.buf[i] = value
}

// Push appends value at the end of v, growing the capacity if no slot is
// free.
func (v *Vector) Push(value int) {
	v.ensure(v.length + 1)
	v.buf[v.length] = value
	v.length++
}

// Insert places value at index at, moving the element previously found there
// and all its successors up by one position.
//
// Insertion is only defined within the current elements: it fails with
// ErrOutOfRange unless 0 ≤ at < Len(). Use Push to append at the end.
func (v *Vector) Insert(value int, at int) error {
	if at < 0 || at >= v.length {
		return fmt.Errorf("vector: insert at %d with length %d: %w", at, v.length, ErrOutOfRange)
	}
	v.rshift(at-1, 1) // open a one-element gap ending at index at
	v.buf[at] = value
	return nil
}

// Extend appends all values at the end of v. Extending by an empty slice is
// a no-op.
func (v *Vector) Extend(values []int) {
	if len(values) == 0 {
		return
	}
	start := v.length
	v.rshift(v.length-1, len(values))
	copy(v.buf[start:v.length], values)
}

// ExtendVector appends all elements of other at the end of v. The other
// vector remains untouched; extending by nil or by an empty vector is a
// no-op. Extending a vector by itself appends a snapshot of its elements.
func (v *Vector) ExtendVector(other *Vector) {
	if other == nil || other.length == 0 {
		return
	}
	n := other.length // capture first, v and other may be identical
	start := v.length
	v.rshift(v.length-1, n)
	copy(v.buf[start:v.length], other.buf[:n])
}

// Slice returns a copy of the elements in the half-open index range
// [start, end). The copy is independently owned by the caller.
//
// Slice fails with ErrOutOfRange unless 0 ≤ start ≤ end ≤ Len().
func (v *Vector) Slice(start, end int) ([]int, error) {
	if start < 0 || end < start || end > v.length {
		return nil, fmt.Errorf("vector: slice [%d:%d] with length %d: %w", start, end, v.length, ErrOutOfRange)
	}
	if start == end {
		return []int{}, nil
	}
	buf := make([]int, end-start, coveringCapacity(end-start))
	copy(buf, v.buf[start:end])
	return buf, nil
}

// SliceVector returns a new vector holding a copy of the elements in the
// half-open index range [start, end), equivalent to Slice followed by Adopt.
//
// SliceVector fails with ErrOutOfRange unless 0 ≤ start ≤ end ≤ Len().
func (v *Vector) SliceVector(start, end int) (*Vector, error) {
	buf, err := v.Slice(start, end)
	if err != nil {
		return nil, err
	}
	return Adopt(buf), nil
}

// Sort reorders the elements of v in place into ascending order. It uses a
// simple exchange sort with an early exit when a pass finds everything in
// order, so sorting an already sorted vector costs a single pass.
func (v *Vector) Sort() {
	limit := v.length
	swapped := true
	for swapped && limit > 1 {
		swapped = false
		for i := 1; i < limit; i++ {
			if v.buf[i-1] > v.buf[i] {
				v.buf[i-1], v.buf[i] = v.buf[i], v.buf[i-1]
				swapped = true
			}
		}
		limit--
	}
}

// Values returns the valid elements of v as a slice sharing the vector's
// backing buffer. The slice is a view for reading; it is invalidated by any
// mutation of v.
func (v *Vector) Values() []int {
	return v.buf[:v.length]
}

// Equal reports whether v and other hold the same elements in the same
// order. Capacities do not participate in the comparison; a nil other
// compares like an empty vector.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil {
		return v.length == 0
	}
	if v.length != other.length {
		return false
	}
	for i := 0; i < v.length; i++ {
		if v.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}

// Free releases the backing buffer and resets v to the empty state, ready
// for re-use. Calling Free twice in a row is a safe no-op.
func (v *Vector) Free() {
	if len(v.buf) > 0 {
		tracer().Debugf("releasing buffer of capacity %d", len(v.buf))
	}
	v.buf = nil
	v.length = 0
}
