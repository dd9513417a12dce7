package record

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/andrew-torda/bioflat/pkg/diag"
	"github.com/andrew-torda/bioflat/pkg/linesrc"
)

// noteFunc lets an assembler pass events to the Reader that owns it.
type noteFunc func(k diag.Kind, l linesrc.Line, msg string)

type binder interface {
	bind(noteFunc)
}

// Predicate tests one line of text.
type Predicate func(string) bool

// HasPrefix matches lines starting with p.
func HasPrefix(p string) Predicate {
	return func(s string) bool { return strings.HasPrefix(s, p) }
}

// Equals matches lines that are exactly s.
func Equals(s string) Predicate {
	return func(t string) bool { return t == s }
}

// SingleLine makes every line its own group. Lines starting with Comment
// are counted and dropped. An empty Comment means there are no comments.
type SingleLine struct {
	Comment  string
	comments int64
	note     noteFunc
}

func (a *SingleLine) bind(f noteFunc) { a.note = f }

// Comments is the number of comment lines dropped so far.
func (a *SingleLine) Comments() int64 { return a.comments }

func (a *SingleLine) Init(LineSource) error { return nil }

func (a *SingleLine) NextGroup(src LineSource) (Group, error) {
	for {
		l, err := src.NextLine()
		if err != nil {
			return nil, err
		}
		if a.Comment != "" && strings.HasPrefix(l.Text, a.Comment) {
			a.comments++
			if a.note != nil {
				a.note(diag.Comment, l, "")
			}
			continue
		}
		return Group{l}, nil
	}
}

// TailPolicy says what to do with a record that is still open when the
// input ends. The zero value is invalid.
type TailPolicy uint8

const (
	_        TailPolicy = iota
	EmitTail            // hand it to the parser like any other group
	DropTail            // throw it away and report it
)

func (t TailPolicy) String() string {
	switch t {
	case EmitTail:
		return "emit"
	case DropTail:
		return "drop"
	}
	return "unset"
}

// MultiLine groups lines into blocks. Anything before the first line
// matching First is header and is skipped. A block runs until a line
// matching Terminator, which is not part of the block. The line after
// the terminator starts the next block, whether it matches First or not,
// unless SkipBetween is set, in which case lines are skipped until First
// matches again.
type MultiLine struct {
	First       Predicate
	Terminator  Predicate
	Tail        TailPolicy
	SkipBetween bool

	pending linesrc.Line
	have    bool  // pending is valid
	err     error // read error met while looking ahead
	inited  bool
	dropped int64
	note    noteFunc
}

func (a *MultiLine) bind(f noteFunc) { a.note = f }

// Dropped is the number of unterminated tails thrown away.
func (a *MultiLine) Dropped() int64 { return a.dropped }

// Init checks the settings and skips the header.
func (a *MultiLine) Init(src LineSource) error {
	switch {
	case a.First == nil || a.Terminator == nil:
		return errors.AssertionFailedf("multi-line assembler needs both First and Terminator")
	case a.Tail != EmitTail && a.Tail != DropTail:
		return errors.WithHint(
			errors.AssertionFailedf("multi-line assembler tail policy is %s", a.Tail),
			"set Tail to EmitTail or DropTail")
	}
	a.inited = true
	return a.seekFirst(src)
}

// seekFirst reads until a line matches First and keeps it as pending.
func (a *MultiLine) seekFirst(src LineSource) error {
	a.have = false
	for {
		l, err := src.NextLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if a.First(l.Text) {
			a.pending, a.have = l, true
			return nil
		}
	}
}

// lookAhead fetches the start of the next block. Empty blocks, a
// terminator straight after a terminator, are passed over.
func (a *MultiLine) lookAhead(src LineSource) error {
	if a.SkipBetween {
		return a.seekFirst(src)
	}
	a.have = false
	for {
		l, err := src.NextLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !a.Terminator(l.Text) {
			a.pending, a.have = l, true
			return nil
		}
	}
}

func (a *MultiLine) NextGroup(src LineSource) (Group, error) {
	if !a.inited {
		return nil, errors.AssertionFailedf("NextGroup before Init")
	}
	if !a.have {
		if a.err != nil {
			return nil, a.err
		}
		return nil, io.EOF
	}
	g := Group{a.pending}
	a.have = false
	for {
		l, err := src.NextLine()
		if err == io.EOF {
			if a.Tail == DropTail {
				a.dropped++
				if a.note != nil {
					a.note(diag.Skipped, g[0], "unterminated record at end of input dropped")
				}
				return nil, io.EOF
			}
			return g, nil
		}
		if err != nil {
			return nil, err
		}
		if a.Terminator(l.Text) {
			break
		}
		g = append(g, l)
	}
	// The block is complete. A failure while looking ahead belongs to
	// the next call.
	a.err = a.lookAhead(src)
	return g, nil
}
