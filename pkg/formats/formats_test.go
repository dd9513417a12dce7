package formats_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/bioflat/pkg/common"
	"github.com/andrew-torda/bioflat/pkg/diag"
	"github.com/andrew-torda/bioflat/pkg/formats"
	"github.com/andrew-torda/bioflat/pkg/formats/gene2refseq"
	"github.com/andrew-torda/bioflat/pkg/linesrc"
)

const g2r = "#header\n" +
	"9606\t1\tVALIDATED\tNM_000014.4\t123\t-\t-\t-\t-\t-\t-\t+\t-\t-\t-\tA2M\n" +
	"9606\t2\tVALIDATED\tNM_000015.3\t124\t-\t-\t-\t-\t-\t-\t+\t-\t-\tNAT2\n" +
	"10090\t11287\tPROVISIONAL\tNM_175628.3\t-\t-\t-\t-\t-\t-\t-\t-\t-\t-\t-\tPzp\n"

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"gene2refseq", "transfac-gene"}, formats.Names())
	_, ok := formats.Lookup("genbank")
	assert.False(t, ok)
	for _, b := range formats.Builders() {
		got, ok := formats.LookupBuilder(b.Name)
		require.True(t, ok)
		assert.Equal(t, b.Help, got.Help)
	}
}

func TestIngest(t *testing.T) {
	path, err := common.WrtTemp(t.TempDir(), g2r)
	require.NoError(t, err)
	f, ok := formats.Lookup("gene2refseq")
	require.True(t, ok)

	var syms []string
	st, err := f.Ingest(path, linesrc.Options{}, diag.Discard, func(rec any) error {
		syms = append(syms, rec.(gene2refseq.Record).Symbol)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A2M", "Pzp"}, syms)
	assert.Equal(t, int64(1), st.Skipped)
	assert.Equal(t, int64(1), st.Comments)

	stop := errors.New("stop")
	st, err = f.Ingest(path, linesrc.Options{}, diag.Discard, func(any) error { return stop })
	assert.True(t, errors.Is(err, stop))
	assert.Equal(t, int64(1), st.Records)

	st, err = f.Ingest(path, linesrc.Options{}, diag.Discard, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.Records)
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	p1, err := common.WrtTemp(dir, g2r)
	require.NoError(t, err)
	p2, err := common.WrtTempGz(dir, g2r)
	require.NoError(t, err)
	b, ok := formats.LookupBuilder("gene-taxon")
	require.True(t, ok)
	m, st, err := b.Build(context.Background(), []string{p1, p2}, linesrc.Options{}, diag.Discard, 2)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, int64(4), st.Records)
	assert.Zero(t, st.Duplicates, "identical repeats are not conflicts")
}
