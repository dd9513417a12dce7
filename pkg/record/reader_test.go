package record_test

import (
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/bioflat/brokenio"
	"github.com/andrew-torda/bioflat/pkg/common"
	"github.com/andrew-torda/bioflat/pkg/diag"
	"github.com/andrew-torda/bioflat/pkg/linesrc"
	"github.com/andrew-torda/bioflat/pkg/record"
)

// word is the simplest possible record: one line, which must not
// contain "bad".
type word struct {
	record.Provenance
	Text string
}

func parseWord(g record.Group) (word, error) {
	if strings.Contains(g[0].Text, "bad") {
		return word{}, record.Malformed(g, "bad word %q", g[0].Text)
	}
	return word{Provenance: g.First(), Text: g[0].Text}, nil
}

func wordFormat() record.Format[word] {
	return record.NewFormat[word](&record.SingleLine{Comment: "#"}, record.ParserFunc[word](parseWord))
}

func newWordReader(t *testing.T, in string, sink diag.Sink) *record.Reader[word] {
	t.Helper()
	return record.NewReader(src(t, in), wordFormat(), record.WithSink(sink), record.WithName("words"))
}

func TestHasNextIdempotent(t *testing.T) {
	r := newWordReader(t, "one\ntwo\n", diag.Discard)
	for i := 0; i < 5; i++ {
		ok, err := r.HasNext()
		require.NoError(t, err)
		require.True(t, ok)
	}
	w, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", w.Text)

	ok, err := r.HasNext()
	require.NoError(t, err)
	require.True(t, ok)
	w, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "two", w.Text)
	assert.Equal(t, record.Provenance{ByteOffset: 4, LineNumber: 2}, w.Origin())

	for i := 0; i < 3; i++ {
		ok, err = r.HasNext()
		require.NoError(t, err)
		assert.False(t, ok)
	}
	require.NoError(t, r.Close())
}

func TestNextWithoutHasNext(t *testing.T) {
	r := newWordReader(t, "one\n", diag.Discard)
	_, err := r.Next()
	assert.True(t, errors.Is(err, record.ErrState))

	ok, err := r.HasNext()
	require.NoError(t, err)
	require.True(t, ok)
	_, err = r.Next()
	require.NoError(t, err)
	_, err = r.Next()
	assert.True(t, errors.Is(err, record.ErrState), "second Next must not hand out the record again")
}

func TestSkipOnFailure(t *testing.T) {
	var c diag.Collector
	r := newWordReader(t, "#c\ngood\nbad one\nbad two\nfine\n", &c)
	got, err := record.Drain(r)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "good", got[0].Text)
	assert.Equal(t, "fine", got[1].Text)

	assert.Equal(t, 2, c.Count(diag.Skipped))
	assert.Equal(t, 1, c.Count(diag.Comment))
	var skipped []diag.Event
	for _, e := range c.Events() {
		if e.Kind == diag.Skipped {
			skipped = append(skipped, e)
		}
	}
	assert.Equal(t, int64(3), skipped[0].LineNumber)
	assert.Equal(t, int64(8), skipped[0].ByteOffset)
	assert.Equal(t, "words", skipped[0].Source)
	assert.True(t, errors.Is(skipped[0].Err, record.ErrParse))

	assert.Equal(t, record.Stats{Groups: 4, Records: 2, Skipped: 2, Comments: 1}, r.Stats())
}

func TestAllFail(t *testing.T) {
	var c diag.Collector
	got, err := record.Drain(newWordReader(t, "bad\nbad\n", &c))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 2, c.Count(diag.Skipped))
}

func TestEmptyInput(t *testing.T) {
	r := newWordReader(t, "", diag.Discard)
	require.NoError(t, r.Initialize())
	require.NoError(t, r.Initialize())
	ok, err := r.HasNext()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCloseEarly(t *testing.T) {
	brk := brokenio.NewReader(io.NopCloser(strings.NewReader("a\nb\nc\n")))
	ls, err := linesrc.NewSource(brk, linesrc.Options{})
	require.NoError(t, err)
	r := record.NewReader(ls, wordFormat(), record.WithSink(diag.Discard))

	ok, err := r.HasNext()
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Equal(t, 1, brk.NClose())

	ok, err = r.HasNext()
	assert.NoError(t, err)
	assert.False(t, ok)
	_, err = r.Next()
	assert.True(t, errors.Is(err, record.ErrState))
	assert.True(t, errors.Is(r.Initialize(), record.ErrState))
}

// A read failure is not a skipped record. It comes back from HasNext,
// keeps coming back, and the source is released.
func TestIOFailure(t *testing.T) {
	brk := brokenio.NewReader(io.NopCloser(strings.NewReader("alpha\nbeta\ngamma\n")))
	brk.SetFailAfter(8)
	ls, err := linesrc.NewSource(brk, linesrc.Options{})
	require.NoError(t, err)
	var c diag.Collector
	r := record.NewReader(ls, wordFormat(), record.WithSink(&c))

	ok, err := r.HasNext()
	require.NoError(t, err)
	require.True(t, ok)
	_, err = r.Next()
	require.NoError(t, err)

	ok, err = r.HasNext()
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, brokenio.ErrBroken))
	_, err2 := r.HasNext()
	assert.Equal(t, err, err2)

	assert.Zero(t, c.Count(diag.Skipped))
	assert.Equal(t, 1, brk.NClose())
	require.NoError(t, r.Close())
	assert.Equal(t, 1, brk.NClose())
}

func TestAllYieldsError(t *testing.T) {
	brk := brokenio.NewReader(io.NopCloser(strings.NewReader("alpha\nbeta\n")))
	brk.SetFailAfter(8)
	ls, err := linesrc.NewSource(brk, linesrc.Options{})
	require.NoError(t, err)
	r := record.NewReader(ls, wordFormat(), record.WithSink(diag.Discard))

	var words []string
	var errs []error
	for w, err := range r.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		words = append(words, w.Text)
	}
	assert.Equal(t, []string{"alpha"}, words)
	require.Len(t, errs, 1)

	got, err := record.Drain(newWordReader(t, "x\n", diag.Discard))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// A record already fetched by HasNext is the first one All gives out.
func TestAllAfterHasNext(t *testing.T) {
	r := newWordReader(t, "one\ntwo\n", diag.Discard)
	ok, err := r.HasNext()
	require.NoError(t, err)
	require.True(t, ok)

	var words []string
	for w, err := range r.All() {
		require.NoError(t, err)
		words = append(words, w.Text)
	}
	assert.Equal(t, []string{"one", "two"}, words)
	_, err = r.Next()
	assert.True(t, errors.Is(err, record.ErrState))
}

func TestAllBreakCloses(t *testing.T) {
	brk := brokenio.NewReader(io.NopCloser(strings.NewReader("a\nb\nc\n")))
	ls, err := linesrc.NewSource(brk, linesrc.Options{})
	require.NoError(t, err)
	r := record.NewReader(ls, wordFormat(), record.WithSink(diag.Discard))
	for range r.All() {
		break
	}
	assert.Equal(t, 1, brk.NClose())
}

func TestInitFailure(t *testing.T) {
	f := record.NewFormat[word](&record.MultiLine{First: record.HasPrefix("a")},
		record.ParserFunc[word](parseWord))
	r := record.NewReader(src(t, "a\n"), f, record.WithSink(diag.Discard))
	ok, err := r.HasNext()
	assert.False(t, ok)
	require.Error(t, err)
	assert.Equal(t, err, r.Initialize())
}

func TestDropTailReported(t *testing.T) {
	var c diag.Collector
	f := record.NewFormat[word](&record.MultiLine{
		First: record.HasPrefix("AC"), Terminator: record.Equals("//"), Tail: record.DropTail,
	}, record.ParserFunc[word](parseWord))
	r := record.NewReader(src(t, "AC 1\n//\nAC 2\n"), f, record.WithSink(&c))
	got, err := record.Drain(r)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, c.Count(diag.Skipped))
	assert.Equal(t, int64(1), r.Stats().Dropped)
}

func TestOpenFile(t *testing.T) {
	path, err := common.WrtTempGz(t.TempDir(), "one\n#c\ntwo\n")
	require.NoError(t, err)
	r, err := record.Open(path, linesrc.Options{}, wordFormat(), record.WithSink(diag.Discard))
	require.NoError(t, err)
	assert.Equal(t, path, r.Name())
	got, err := record.Drain(r)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[1].LineNumber)

	_, err = record.Open(path+".missing", linesrc.Options{}, wordFormat())
	assert.Error(t, err)
}
