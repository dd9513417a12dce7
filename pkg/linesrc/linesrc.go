// Package linesrc reads a text resource one line at a time and remembers
// where every line started, both as a byte offset and as a 1-based line
// number. Records built from the lines carry this position with them, so
// a complaint about a record can point back into a multi-gigabyte dump.
//
// Files may be plain, gzipped or xz compressed. The character encoding is
// given by its IANA name. Anything that is not UTF-8 is decoded line by line,
// so byte offsets always refer to the raw (decompressed) bytes.
package linesrc

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/andrew-torda/bioflat/pkg/zwrap"
)

// Line is one physical line of input with the terminator removed.
type Line struct {
	Text       string
	ByteOffset int64 // offset of the first byte of the line
	LineNumber int64 // counting from 1
}

// Options control how a Source is opened.
type Options struct {
	Encoding string // IANA name. Empty means UTF-8
	Mmap     bool   // map uncompressed files instead of reading them
	BufSize  int    // size of the read buffer. Zero gives the default
}

const defaultBufSize = 64 * 1024

// ErrEncoding is returned for encodings we do not know or cannot split
// into lines on a single newline byte.
var ErrEncoding = errors.New("unsupported character encoding")

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Source gives out lines. It is not safe for concurrent use.
type Source struct {
	rdr    *bufio.Reader
	closer io.Closer         // nil if the caller owns the underlying reader
	dec    *encoding.Decoder // nil for UTF-8
	name   string
	offset int64 // where the next line starts
	n      int64 // lines handed out so far
	err    error // sticky read error
	closed bool
}

// lookupEncoding turns a name into a decoder. A nil decoder and no error
// means the input is UTF-8 and needs no decoding.
func lookupEncoding(name string) (*encoding.Decoder, error) {
	if name == "" {
		return nil, nil
	}
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(ErrEncoding, "%q is not a registered charset", name)
	}
	if e == nil {
		return nil, errors.Wrapf(ErrEncoding, "%q is registered, but not implemented", name)
	}
	canon, err := ianaindex.IANA.Name(e)
	if err != nil {
		canon = strings.ToUpper(name)
	}
	switch {
	case canon == "UTF-8":
		return nil, nil
	case strings.HasPrefix(canon, "UTF-16"), strings.HasPrefix(canon, "UTF-32"):
		return nil, errors.WithHint(
			errors.Wrapf(ErrEncoding, "%q has multi-byte newlines", name),
			"convert the file to UTF-8 first")
	}
	return e.NewDecoder(), nil
}

// Open opens the file at path. gzip and xz input is decompressed on the
// fly. The returned Source must be closed.
func Open(path string, opts Options) (*Source, error) {
	dec, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if opts.Mmap {
		if s, ok, err := openMapped(fp, dec, opts); err != nil {
			fp.Close()
			return nil, errors.Wrapf(err, "mapping %s", path)
		} else if ok {
			s.name = path
			return s, nil
		}
	}
	zr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	s := newSource(zr, zr, dec, opts)
	s.name = path
	return s, nil
}

// NewSource reads lines from r. If r is also an io.Closer, Close will
// close it. The data is taken as is; there is no decompression.
func NewSource(r io.Reader, opts Options) (*Source, error) {
	dec, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	var c io.Closer
	if rc, ok := r.(io.Closer); ok {
		c = rc
	}
	return newSource(r, c, dec, opts), nil
}

func newSource(r io.Reader, c io.Closer, dec *encoding.Decoder, opts Options) *Source {
	bufsiz := opts.BufSize
	if bufsiz <= 0 {
		bufsiz = defaultBufSize
	}
	return &Source{
		rdr:    bufio.NewReaderSize(r, bufsiz),
		closer: c,
		dec:    dec,
	}
}

// Name is the path given to Open, or empty.
func (s *Source) Name() string { return s.name }

// Offset is where the next line will start.
func (s *Source) Offset() int64 { return s.offset }

// NextLine returns the next line, or io.EOF when there are no more.
// Any other error is a real read failure and will be returned again by
// every later call.
func (s *Source) NextLine() (Line, error) {
	if s.closed {
		return Line{}, errors.New("read from closed line source")
	}
	if s.err != nil {
		return Line{}, s.err
	}
	raw, err := s.rdr.ReadBytes('\n')
	if err != nil && err != io.EOF {
		s.err = errors.Wrapf(err, "%s: reading line %d", s.name, s.n+1)
		return Line{}, s.err
	}
	if len(raw) == 0 { // err must be io.EOF
		return Line{}, io.EOF
	}
	consumed := int64(len(raw))
	txt := bytes.TrimSuffix(raw, []byte{'\n'})
	txt = bytes.TrimSuffix(txt, []byte{'\r'})
	if s.n == 0 && s.dec == nil {
		txt = bytes.TrimPrefix(txt, utf8BOM)
	}
	if s.dec != nil {
		if txt, err = s.dec.Bytes(txt); err != nil {
			s.err = errors.Wrapf(err, "%s: decoding line %d", s.name, s.n+1)
			return Line{}, s.err
		}
	}
	s.n++
	line := Line{Text: string(txt), ByteOffset: s.offset, LineNumber: s.n}
	s.offset += consumed
	return line, nil
}

// Close releases the underlying file. It can be called more than once.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
