package datasource_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/bioflat/pkg/datasource"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want datasource.DataSource
		ok   bool
	}{
		{"EG", datasource.Eg, true},
		{"eg", datasource.Eg, true},
		{"Uniprot", datasource.Uniprot, true},
		{"MI_ONTOLOGY", datasource.MiOntology, true},
		{"BIOPARADIGMS", datasource.Bioparadigms, true},
		{"ANY", datasource.Any, true},
		{"DDBJ", datasource.Ddbj, true},
		{"DBSNP", datasource.Dbsnp, true},
		{"dbsnp", datasource.Dbsnp, true},
		{" go ", datasource.Go, true},
		{"NOT_A_SOURCE", datasource.Unknown, false},
		{"", datasource.Unknown, false},
	}
	for _, tt := range tests {
		got, ok := datasource.Parse(tt.in)
		assert.Equal(t, tt.ok, ok, "parsing %q", tt.in)
		assert.Equal(t, tt.want, got, "parsing %q", tt.in)
	}
}

func TestIsDataSource(t *testing.T) {
	assert.True(t, datasource.IsDataSource("REFSEQ"))
	assert.False(t, datasource.IsDataSource("refseq"))
	assert.False(t, datasource.IsDataSource("UNKNOWN"))
}

// Every canonical name must come back to itself.
func TestCatalog(t *testing.T) {
	all := datasource.All()
	assert.Len(t, all, 268)
	assert.Equal(t, datasource.Any, all[0])
	seen := make(map[string]bool)
	for _, ds := range all {
		name := ds.String()
		assert.False(t, seen[name], "duplicate %s", name)
		seen[name] = true
		back, ok := datasource.Parse(name)
		require.True(t, ok, name)
		assert.Equal(t, ds, back)
	}
	assert.Equal(t, "UNKNOWN", datasource.Unknown.String())
	assert.Equal(t, "UNKNOWN", datasource.DataSource(60000).String())
}

// Names are upper case tags with no spaces or comment debris.
func TestCatalogNamesClean(t *testing.T) {
	for _, ds := range datasource.All() {
		name := ds.String()
		assert.Regexp(t, `^[A-Z][A-Z0-9_]*$`, name)
		assert.True(t, datasource.IsDataSource(name), name)
	}
	assert.Equal(t, datasource.Ddbj+1, datasource.Dbsnp)
}

func TestSubsets(t *testing.T) {
	gene := datasource.Members(datasource.GeneOrGeneProduct)
	assert.Len(t, gene, 11)
	onto := datasource.Members(datasource.Ontology)
	assert.Len(t, onto, 15)

	assert.True(t, datasource.Eg.In(datasource.GeneOrGeneProduct))
	assert.False(t, datasource.Eg.In(datasource.Ontology))
	assert.True(t, datasource.Go.In(datasource.Ontology))
	// PR is in both
	assert.True(t, datasource.Pr.In(datasource.GeneOrGeneProduct|datasource.Ontology))
	assert.Equal(t, "gene-or-gene-product|ontology", datasource.Pr.Subsets().String())
	assert.Equal(t, "none", datasource.Pdb.Subsets().String())
	assert.False(t, datasource.Unknown.In(datasource.Ontology))

	sub, ok := datasource.ParseSubset("Ontology")
	require.True(t, ok)
	assert.Equal(t, datasource.Ontology, sub)
	_, ok = datasource.ParseSubset("drugs")
	assert.False(t, ok)
}

func TestText(t *testing.T) {
	type holder struct {
		Src datasource.DataSource `json:"src"`
	}
	b, err := json.Marshal(holder{datasource.NcbiTaxon})
	require.NoError(t, err)
	assert.Equal(t, `{"src":"NCBI_TAXON"}`, string(b))

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"src":"hgnc"}`), &h))
	assert.Equal(t, datasource.Hgnc, h.Src)
	assert.Error(t, json.Unmarshal([]byte(`{"src":"nope"}`), &h))

	_, err = datasource.Unknown.MarshalText()
	assert.Error(t, err)
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "Entrez Gene", datasource.Eg.Display())
	assert.Equal(t, "ZFIN", datasource.Zfin.Display())
}
