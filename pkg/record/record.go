// Package record turns a stream of lines into a stream of typed records.
//
// A file format is described by two halves. An Assembler decides where one
// record's lines end and the next begin; a Parser turns one such group of
// lines into a value. A Reader drives both and gives out records with the
// HasNext / Next pair, or as a range-over-func iterator with All.
//
// Groups that fail to parse are reported to a diag.Sink and skipped. Read
// failures from the underlying LineSource are fatal and end iteration.
package record

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/andrew-torda/bioflat/pkg/linesrc"
)

// Provenance says where a record came from. Record types embed it.
type Provenance struct {
	ByteOffset int64
	LineNumber int64
}

// Origin lets any type that embeds Provenance satisfy Record.
func (p Provenance) Origin() Provenance { return p }

// Record is anything a Parser can produce.
type Record interface {
	Origin() Provenance
}

// Group is the raw lines of one record, in input order.
type Group []linesrc.Line

// First is the position of the first line, or zero for an empty group.
func (g Group) First() Provenance {
	if len(g) == 0 {
		return Provenance{}
	}
	return Provenance{ByteOffset: g[0].ByteOffset, LineNumber: g[0].LineNumber}
}

// Texts gives the text of every line.
func (g Group) Texts() []string {
	s := make([]string, len(g))
	for i, l := range g {
		s[i] = l.Text
	}
	return s
}

// LineSource is satisfied by *linesrc.Source.
type LineSource interface {
	NextLine() (linesrc.Line, error)
	Close() error
}

// Assembler groups lines into records. Init is called once, before the
// first NextGroup. NextGroup returns io.EOF when there are no more groups.
// An Assembler keeps state, so every Reader needs its own.
type Assembler interface {
	Init(src LineSource) error
	NextGroup(src LineSource) (Group, error)
}

// Parser turns one group into one record. Any error means the group is
// skipped.
type Parser[R Record] interface {
	ParseGroup(Group) (R, error)
}

// ParserFunc lets an ordinary function be a Parser.
type ParserFunc[R Record] func(Group) (R, error)

func (f ParserFunc[R]) ParseGroup(g Group) (R, error) { return f(g) }

// Format is everything a Reader needs to know about a file format.
type Format[R Record] interface {
	Assembler
	Parser[R]
}

type composite[R Record] struct {
	Assembler
	Parser[R]
}

func (c composite[R]) assembler() Assembler { return c.Assembler }

// NewFormat puts an assembler and a parser together.
func NewFormat[R Record](a Assembler, p Parser[R]) Format[R] {
	return composite[R]{Assembler: a, Parser: p}
}

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("malformed record")

// ErrState means a Reader was used out of order, for example Next
// without a true HasNext.
var ErrState = errors.New("reader used out of order")

// ParseError is a structural problem with one group.
type ParseError struct {
	Provenance
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.LineNumber, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Malformed builds a ParseError positioned at the start of g.
func Malformed(g Group, format string, args ...any) error {
	return &ParseError{Provenance: g.First(), Err: errors.Newf(format, args...)}
}
