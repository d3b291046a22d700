package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/google/shlex"
	"github.com/npillmayer/vec/vector"
)

// session holds the named vectors a shell run operates on.
type session struct {
	vectors map[string]*vector.Vector
	out     io.Writer
	errw    io.Writer
	erred   bool // a command has failed during this session
}

func newSession(out, errw io.Writer) *session {
	return &session{
		vectors: make(map[string]*vector.Vector),
		out:     out,
		errw:    errw,
	}
}

// exec runs a single command line. It returns false when the session should
// end. Blank lines are no-ops; a failing command reports to the error writer
// and keeps the session alive.
func (s *session) exec(line string) bool {
	args, err := shlex.Split(line)
	if err != nil {
		s.fail("cannot parse input: %v", err)
		return true
	}
	if len(args) == 0 {
		return true
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		s.help()
	case "new":
		s.cmdNew(args)
	case "push":
		s.cmdPush(args)
	case "insert":
		s.cmdInsert(args)
	case "extend":
		s.cmdExtend(args)
	case "extendv":
		s.cmdExtendVector(args)
	case "sort":
		s.cmdSort(args)
	case "slice":
		s.cmdSlice(args)
	case "slicev":
		s.cmdSliceVector(args)
	case "write":
		s.cmdWrite(args)
	case "get":
		s.cmdGet(args)
	case "set":
		s.cmdSet(args)
	case "info":
		s.cmdInfo(args)
	case "list":
		s.cmdList()
	case "free":
		s.cmdFree(args)
	default:
		s.fail("unknown command: %s (try help)", cmd)
	}
	return true
}

func (s *session) cmdNew(args []string) {
	if len(args) < 1 {
		s.fail("usage: new NAME [VALUE...]")
		return
	}
	values, err := parseInts(args[1:])
	if err != nil {
		s.fail("%v", err)
		return
	}
	s.vectors[args[0]] = vector.FromSlice(values)
}

func (s *session) cmdPush(args []string) {
	if len(args) < 2 {
		s.fail("usage: push NAME VALUE...")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	values, err := parseInts(args[1:])
	if err != nil {
		s.fail("%v", err)
		return
	}
	for _, x := range values {
		v.Push(x)
	}
}

func (s *session) cmdInsert(args []string) {
	if len(args) != 3 {
		s.fail("usage: insert NAME VALUE INDEX")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	values, err := parseInts(args[1:])
	if err != nil {
		s.fail("%v", err)
		return
	}
	if err := v.Insert(values[0], values[1]); err != nil {
		s.fail("%v", err)
	}
}

func (s *session) cmdExtend(args []string) {
	if len(args) < 2 {
		s.fail("usage: extend NAME VALUE...")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	values, err := parseInts(args[1:])
	if err != nil {
		s.fail("%v", err)
		return
	}
	v.Extend(values)
}

func (s *session) cmdExtendVector(args []string) {
	if len(args) != 2 {
		s.fail("usage: extendv NAME OTHER")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	w, ok := s.vec(args[1])
	if !ok {
		return
	}
	v.ExtendVector(w)
}

func (s *session) cmdSort(args []string) {
	if len(args) != 1 {
		s.fail("usage: sort NAME")
		return
	}
	if v, ok := s.vec(args[0]); ok {
		v.Sort()
	}
}

func (s *session) cmdSlice(args []string) {
	if len(args) != 3 {
		s.fail("usage: slice NAME START END")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	bounds, err := parseInts(args[1:])
	if err != nil {
		s.fail("%v", err)
		return
	}
	values, err := v.Slice(bounds[0], bounds[1])
	if err != nil {
		s.fail("%v", err)
		return
	}
	fmt.Fprintln(s.out, values)
}

func (s *session) cmdSliceVector(args []string) {
	if len(args) != 4 {
		s.fail("usage: slicev NAME DEST START END")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	bounds, err := parseInts(args[2:])
	if err != nil {
		s.fail("%v", err)
		return
	}
	w, err := v.SliceVector(bounds[0], bounds[1])
	if err != nil {
		s.fail("%v", err)
		return
	}
	s.vectors[args[1]] = w
}

func (s *session) cmdWrite(args []string) {
	if len(args) != 1 {
		s.fail("usage: write NAME")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	if err := v.Write(s.out, true); err != nil {
		s.fail("%v", err)
	}
}

func (s *session) cmdGet(args []string) {
	if len(args) != 2 {
		s.fail("usage: get NAME INDEX")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	i, err := strconv.Atoi(args[1])
	if err != nil {
		s.fail("not an integer: %s", args[1])
		return
	}
	if i < 0 || i >= v.Len() {
		s.fail("index %d out of range for length %d", i, v.Len())
		return
	}
	fmt.Fprintln(s.out, v.Get(i))
}

func (s *session) cmdSet(args []string) {
	if len(args) != 3 {
		s.fail("usage: set NAME INDEX VALUE")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	values, err := parseInts(args[1:])
	if err != nil {
		s.fail("%v", err)
		return
	}
	if values[0] < 0 || values[0] >= v.Len() {
		s.fail("index %d out of range for length %d", values[0], v.Len())
		return
	}
	v.Set(values[0], values[1])
}

func (s *session) cmdInfo(args []string) {
	if len(args) != 1 {
		s.fail("usage: info NAME")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "%s: length %d, capacity %d\n", args[0], v.Len(), v.Cap())
}

func (s *session) cmdList() {
	names := make([]string, 0, len(s.vectors))
	for name := range s.vectors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(s.out, "%s %s\n", name, s.vectors[name])
	}
}

func (s *session) cmdFree(args []string) {
	if len(args) != 1 {
		s.fail("usage: free NAME")
		return
	}
	v, ok := s.vec(args[0])
	if !ok {
		return
	}
	v.Free()
	delete(s.vectors, args[0])
}

func (s *session) help() {
	for _, line := range []string{
		"new NAME [VALUE...]        create a vector",
		"push NAME VALUE...         append values one by one",
		"insert NAME VALUE INDEX    insert a value before INDEX",
		"extend NAME VALUE...       append a run of values",
		"extendv NAME OTHER         append all elements of another vector",
		"sort NAME                  sort ascending, in place",
		"slice NAME START END       print a copy of the range [START,END)",
		"slicev NAME DEST START END copy the range into vector DEST",
		"write NAME                 print space-separated elements",
		"get NAME INDEX             print one element",
		"set NAME INDEX VALUE       replace one element",
		"info NAME                  print length and capacity",
		"list                       print all vectors",
		"free NAME                  release a vector",
		"quit                       leave the shell",
	} {
		fmt.Fprintln(s.out, line)
	}
}

// --- Helpers ---------------------------------------------------------------

func (s *session) fail(format string, args ...interface{}) {
	s.erred = true
	fmt.Fprintf(s.errw, "vecsh: "+format+"\n", args...)
}

func (s *session) vec(name string) (*vector.Vector, bool) {
	v, ok := s.vectors[name]
	if !ok {
		s.fail("no vector named %s", name)
	}
	return v, ok
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %s", a)
		}
		values[i] = n
	}
	return values, nil
}
