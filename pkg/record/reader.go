package record

import (
	"io"
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/andrew-torda/bioflat/pkg/diag"
	"github.com/andrew-torda/bioflat/pkg/linesrc"
	"github.com/andrew-torda/bioflat/pkg/logger"
)

type state uint8

const (
	uninitialized state = iota
	open
	exhausted
	closed
)

func (s state) String() string {
	return [...]string{"uninitialized", "open", "exhausted", "closed"}[s]
}

// Stats counts what a Reader has seen so far.
type Stats struct {
	Groups   int64 // groups handed to the parser
	Records  int64 // groups that parsed
	Skipped  int64 // groups that did not
	Comments int64 // comment lines dropped by the assembler
	Dropped  int64 // unterminated tails dropped by the assembler
}

type options struct {
	sink diag.Sink
	name string
}

// Option configures a Reader.
type Option func(*options)

// WithSink sends diagnostics somewhere other than the global logger.
// A nil sink is ignored.
func WithSink(s diag.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithName sets the name used in diagnostics. The default is the file
// name, if the source knows it.
func WithName(n string) Option { return func(o *options) { o.name = n } }

// Reader gives out the records of one source. It is not safe for
// concurrent use.
type Reader[R Record] struct {
	src       LineSource
	f         Format[R]
	asm       Assembler
	sink      diag.Sink
	name      string
	st        state
	cur       R
	have      bool
	err       error // sticky fatal error
	srcClosed bool
	stats     Stats
}

// NewReader does not read anything. That happens on the first HasNext
// or an explicit Initialize.
func NewReader[R Record](src LineSource, f Format[R], opts ...Option) *Reader[R] {
	o := options{sink: diag.ZapSink{}}
	if n, ok := src.(interface{ Name() string }); ok {
		o.name = n.Name()
	}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Reader[R]{src: src, f: f, asm: f, sink: o.sink, name: o.name}
	if c, ok := f.(interface{ assembler() Assembler }); ok {
		r.asm = c.assembler()
	}
	if b, ok := r.asm.(binder); ok {
		b.bind(r.note)
	}
	return r
}

// Open is linesrc.Open followed by NewReader.
func Open[R Record](path string, lo linesrc.Options, f Format[R], opts ...Option) (*Reader[R], error) {
	src, err := linesrc.Open(path, lo)
	if err != nil {
		return nil, err
	}
	return NewReader(src, f, opts...), nil
}

// Name is the name used in diagnostics.
func (r *Reader[R]) Name() string { return r.name }

func (r *Reader[R]) note(k diag.Kind, l linesrc.Line, msg string) {
	r.sink.Report(diag.Event{Kind: k, Source: r.name,
		LineNumber: l.LineNumber, ByteOffset: l.ByteOffset, Msg: msg})
}

// fatal records err, ends iteration and releases the source.
func (r *Reader[R]) fatal(err error) error {
	r.st = exhausted
	r.err = err
	if !r.srcClosed {
		r.srcClosed = true
		if cerr := r.src.Close(); cerr != nil {
			r.err = errors.CombineErrors(r.err, cerr)
		}
	}
	return r.err
}

// Initialize skips any header and gets ready for the first record.
// Calling it again does nothing. HasNext calls it if needed.
func (r *Reader[R]) Initialize() error {
	switch r.st {
	case uninitialized:
	case closed:
		return errors.Wrap(ErrState, "initialize after close")
	default:
		return r.err
	}
	r.st = open
	if err := r.asm.Init(r.src); err != nil {
		return r.fatal(err)
	}
	return nil
}

// HasNext says whether Next will give a record. It may be called any
// number of times; only the first call after a Next reads input. Groups
// that fail to parse are reported and skipped here. A non-nil error is
// a read failure and is returned by every later call.
func (r *Reader[R]) HasNext() (bool, error) {
	if r.have {
		return true, nil
	}
	switch r.st {
	case closed:
		return false, nil
	case exhausted:
		return false, r.err
	case uninitialized:
		if err := r.Initialize(); err != nil {
			return false, err
		}
	}
	return r.fill()
}

func (r *Reader[R]) fill() (bool, error) {
	for {
		g, err := r.asm.NextGroup(r.src)
		if err == io.EOF {
			r.st = exhausted
			return false, nil
		}
		if err != nil {
			return false, r.fatal(err)
		}
		r.stats.Groups++
		rec, err := r.f.ParseGroup(g)
		if err != nil {
			r.stats.Skipped++
			p := g.First()
			r.sink.Report(diag.Event{Kind: diag.Skipped, Source: r.name,
				LineNumber: p.LineNumber, ByteOffset: p.ByteOffset, Err: err})
			continue
		}
		r.stats.Records++
		r.cur, r.have = rec, true
		return true, nil
	}
}

// Next gives the record found by the last HasNext. Without a true
// HasNext in between, it returns ErrState.
func (r *Reader[R]) Next() (R, error) {
	var zero R
	if !r.have {
		return zero, errors.Wrapf(ErrState, "next without a pending record, reader is %s", r.st)
	}
	rec := r.cur
	r.cur, r.have = zero, false
	return rec, nil
}

// Close releases the source. It is fine to call it more than once, and
// before the input is finished.
func (r *Reader[R]) Close() error {
	if r.st == closed {
		return nil
	}
	var zero R
	r.st = closed
	r.cur, r.have = zero, false
	if r.srcClosed {
		return nil
	}
	r.srcClosed = true
	return r.src.Close()
}

// Stats is a snapshot of the counters.
func (r *Reader[R]) Stats() Stats {
	s := r.stats
	if c, ok := r.asm.(interface{ Comments() int64 }); ok {
		s.Comments = c.Comments()
	}
	if d, ok := r.asm.(interface{ Dropped() int64 }); ok {
		s.Dropped = d.Dropped()
	}
	return s
}

// All ranges over the records. A read failure is yielded once, with a
// zero record, and ends the loop. The reader is closed when the loop
// ends, however it ends.
func (r *Reader[R]) All() iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		defer func() {
			if err := r.Close(); err != nil {
				logger.Logger.Warnw("closing reader", logger.FieldFile, r.name, logger.FieldError, err)
			}
		}()
		for {
			ok, err := r.HasNext()
			if err != nil {
				var zero R
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			rec, err := r.Next()
			if err != nil {
				yield(rec, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Drain collects every record. On a read failure it returns what it
// had so far along with the error.
func Drain[R Record](r *Reader[R]) ([]R, error) {
	var out []R
	for rec, err := range r.All() {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}
