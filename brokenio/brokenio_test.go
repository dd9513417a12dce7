package brokenio_test

import (
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/bioflat/brokenio"
)

var longstring = "0123456789012345678901234567890123456789"

func newRdr(s string) *brokenio.BrknRdrClsr {
	return brokenio.NewReader(io.NopCloser(strings.NewReader(s)))
}

// With nothing set, we should get the input back unchanged.
func TestPassThrough(t *testing.T) {
	got, err := io.ReadAll(newRdr(longstring))
	require.NoError(t, err)
	assert.Equal(t, longstring, string(got))
}

// Whatever the buffer size, we should get exactly n good bytes, then
// the error, and the error should come back on every call.
func TestFailAfter(t *testing.T) {
	for _, n := range []int64{0, 1, 7, 39} {
		for _, bufsiz := range []int{1, 3, 64} {
			rdr := newRdr(longstring)
			rdr.SetFailAfter(n)
			var got []byte
			buf := make([]byte, bufsiz)
			var err error
			for err == nil {
				var nr int
				nr, err = rdr.Read(buf)
				got = append(got, buf[:nr]...)
			}
			assert.True(t, errors.Is(err, brokenio.ErrBroken), "n %d bufsiz %d", n, bufsiz)
			assert.Equal(t, longstring[:n], string(got))
			_, err = rdr.Read(buf)
			assert.True(t, errors.Is(err, brokenio.ErrBroken))
		}
	}
}

func TestFailAfterBeyondEnd(t *testing.T) {
	rdr := newRdr("abc")
	rdr.SetFailAfter(100)
	got, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestProbFail(t *testing.T) {
	rdr := newRdr(longstring)
	rdr.SetProbFail(1)
	_, err := rdr.Read(make([]byte, 4))
	assert.True(t, errors.Is(err, brokenio.ErrBroken))
}

// Same seed, same sequence of failures.
func TestSeeded(t *testing.T) {
	run := func() []bool {
		rdr := newRdr(strings.Repeat(longstring, 10))
		rdr.SetSeed(42)
		rdr.SetProbFail(0.3)
		var fails []bool
		buf := make([]byte, 5)
		for i := 0; i < 50; i++ {
			_, err := rdr.Read(buf)
			fails = append(fails, err != nil)
		}
		return fails
	}
	assert.Equal(t, run(), run())
}

func TestZeroFile(t *testing.T) {
	rdr := newRdr(longstring)
	rdr.SetProbZeroFile(1)
	n, err := rdr.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}

func TestClose(t *testing.T) {
	rdr := newRdr("x")
	rdr.SetVerbose(true)
	require.NoError(t, rdr.Close())
	require.NoError(t, rdr.Close())
	assert.Equal(t, 2, rdr.NClose())
}
