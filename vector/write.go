package vector

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write serializes the elements of v to w as a single line of
// space-separated decimal integers in index order, each element followed by
// a single space. With newline set, a line terminator follows the last
// separator. An empty vector writes nothing, or just the line terminator.
//
// Write does not mutate v. It returns the first error reported by w, if any.
func (v *Vector) Write(w io.Writer, newline bool) error {
	for i := 0; i < v.length; i++ {
		if _, err := fmt.Fprintf(w, "%d ", v.buf[i]); err != nil {
			return err
		}
	}
	if newline {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// String returns a compact bracketed rendering of v for diagnostics, like
// "[67,123,2]". For the serialization format see Write.
func (v *Vector) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i := 0; i < v.length; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v.buf[i]))
	}
	b.WriteByte(']')
	return b.String()
}
