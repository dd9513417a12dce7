// Package diag carries warnings that are not errors: records that were
// skipped, duplicate keys that lost to an earlier value and similar.
// Readers report them to a Sink; what happens then is up to the caller.
package diag

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/andrew-torda/bioflat/pkg/logger"
)

// Kind says what sort of event happened.
type Kind uint8

const (
	Skipped   Kind = iota + 1 // a record group failed to parse and was dropped
	Duplicate                 // a key was seen again with a different value
	Comment                   // a comment line was discarded
)

func (k Kind) String() string {
	switch k {
	case Skipped:
		return "skipped"
	case Duplicate:
		return "duplicate"
	case Comment:
		return "comment"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Event is one diagnostic. Position fields are zero when they are not known.
type Event struct {
	Kind       Kind
	Source     string // file name, if there is one
	LineNumber int64
	ByteOffset int64
	Msg        string
	Err        error
}

func (e Event) String() string {
	s := fmt.Sprintf("%s %s:%d (offset %d)", e.Kind, e.Source, e.LineNumber, e.ByteOffset)
	if e.Msg != "" {
		s += " " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Sink receives events. Implementations used from more than one
// goroutine must do their own locking.
type Sink interface {
	Report(Event)
}

// Discard drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Event) {}

// Collector keeps every event in memory. It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *Collector) Report(e Event) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
}

// Events returns a copy of what has been reported so far.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

// Count says how many events of kind k were reported.
func (c *Collector) Count(k Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// ZapSink writes events as warnings. A nil Log means the global logger,
// looked up on every call so that it follows logger.Initialize.
type ZapSink struct {
	Log *zap.Logger
}

func (z ZapSink) Report(e Event) {
	l := z.Log
	if l == nil {
		l = logger.Desugared()
	}
	fields := []zap.Field{
		zap.String(logger.FieldFile, e.Source),
		zap.Int64(logger.FieldLine, e.LineNumber),
		zap.Int64(logger.FieldOffset, e.ByteOffset),
	}
	if e.Err != nil {
		fields = append(fields, zap.NamedError(logger.FieldError, e.Err))
	}
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Kind == Comment {
		l.Debug(msg, fields...)
		return
	}
	l.Warn(msg, fields...)
}

type tee []Sink

func (t tee) Report(e Event) {
	for _, s := range t {
		s.Report(e)
	}
}

// Tee sends every event to all of sinks. nil sinks are ignored.
func Tee(sinks ...Sink) Sink {
	var t tee
	for _, s := range sinks {
		if s != nil {
			t = append(t, s)
		}
	}
	return t
}
