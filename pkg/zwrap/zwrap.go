// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// Public dumps come as plain text, gzip (.gz) or xz (.xz). We look at the
// magic bytes rather than trusting the file name.
package zwrap

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/ulikunitz/xz"
)

// Compression says what sort of stream we found.
type Compression byte

const (
	Plain Compression = iota
	Gzip
	Xz
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Xz:
		return "xz"
	default:
		return "plain"
	}
}

var (
	gzMagic = []byte{0x1f, 0x8b}
	xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// magicLen is enough bytes to recognise any of the formats above.
const magicLen = 6

// Sniff looks at the first bytes of a stream and guesses the compression.
func Sniff(b []byte) Compression {
	switch {
	case bytes.HasPrefix(b, gzMagic):
		return Gzip
	case bytes.HasPrefix(b, xzMagic):
		return Xz
	}
	return Plain
}

// ReadCloser is what we return. zrdr is nil for an uncompressed stream.
type ReadCloser struct {
	fp   io.ReadCloser
	zrdr io.Reader
	zcls io.Closer // gzip has a Close, xz does not
	kind Compression
}

// Kind reports the compression found when the stream was wrapped.
func (fc *ReadCloser) Kind() Compression { return fc.kind }

// Close closes the decompressor, then the underlying backing readCloser.
// It should work if the source is a file or an http stream.
func (fc *ReadCloser) Close() error {
	var err error
	if fc.zcls != nil {
		err = fc.zcls.Close()
	}
	return errors.CombineErrors(err, fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *ReadCloser) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Wrap takes a source like a file pointer or http stream and wraps it
// in a gzip reader. It fails if the stream is not gzipped.
func Wrap(fp io.ReadCloser) (*ReadCloser, error) {
	zr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, errors.Wrap(err, "gzip header")
	}
	return &ReadCloser{fp: fp, zrdr: zr, zcls: zr, kind: Gzip}, nil
}

// WrapXz is like Wrap, but for xz streams.
func WrapXz(fp io.ReadCloser) (*ReadCloser, error) {
	zr, err := xz.NewReader(fp)
	if err != nil {
		return nil, errors.Wrap(err, "xz header")
	}
	return &ReadCloser{fp: fp, zrdr: zr, kind: Xz}, nil
}

// ReadSeekCloser does not seem to be in the standard library
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary.
// You do lose something. If you pass in something which can seek,
// you get back a ReadCloser which cannot seek. This is the price
// one pays for reading from a compressed reader.
func WrapMaybe(fpIn ReadSeekCloser) (*ReadCloser, error) {
	var magic [magicLen]byte
	n, err := io.ReadFull(fpIn, magic[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, errors.Wrap(err, "reading magic bytes")
	}
	if _, err := fpIn.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "rewinding after magic bytes")
	}
	switch Sniff(magic[:n]) {
	case Gzip:
		return Wrap(fpIn)
	case Xz:
		return WrapXz(fpIn)
	}
	return &ReadCloser{fp: fpIn}, nil // Leave the zrdr implicitly nil
}
