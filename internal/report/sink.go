package report

import (
	"fmt"
	"io"
	"iter"
	"strconv"
)

// Sink prints already computed values one per line. After the first write
// error every call is a no-op and Err returns that error.
type Sink struct {
	w        io.Writer
	err      error
	sections int
}

func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Heading starts a section. Sections after the first are preceded by a blank
// line.
func (s *Sink) Heading(title string) {
	if s.sections > 0 {
		s.println("")
	}
	s.sections++
	s.println(title)
}

// Value prints v on its own line. Floats are printed with two decimals.
func (s *Sink) Value(v any) {
	switch x := v.(type) {
	case string:
		s.println(x)
	case bool:
		s.println(strconv.FormatBool(x))
	case float64:
		s.println(strconv.FormatFloat(x, 'f', 2, 64))
	case fmt.Stringer:
		s.println(x.String())
	default:
		s.println(fmt.Sprint(x))
	}
}

func (s *Sink) Lines(lines []string) {
	for _, l := range lines {
		s.println(l)
	}
}

func (s *Sink) Seq(seq iter.Seq[string]) {
	for l := range seq {
		if s.err != nil {
			return
		}
		s.println(l)
	}
}

func (s *Sink) Err() error { return s.err }

func (s *Sink) println(line string) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.w, line)
}
