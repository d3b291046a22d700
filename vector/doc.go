/*
Package vector implements a growable array of integers, backed by a single
contiguous buffer owned by the vector.

Unlike Go's built-in append, growth follows a fixed rule: capacity is always
either zero or a power of two, and doubles whenever more room is needed.
Clients may hand a vector an existing buffer (adopting it without copying) or
extract sub-ranges, either as fresh copies or as newly-owned vectors.

Vectors are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vec.vector'.
func tracer() tracing.Trace {
	return tracing.Select("vec.vector")
}
