// Package gene2refseq reads NCBI's gene2refseq file, which links Entrez
// genes to their RefSeq RNA, protein and genomic accessions. There is one
// record per line, sixteen tab separated fields, "#" starts a comment and
// "-" means a field is empty.
package gene2refseq

import (
	"strconv"
	"strings"

	"github.com/andrew-torda/bioflat/pkg/datasource"
	"github.com/andrew-torda/bioflat/pkg/ident"
	"github.com/andrew-torda/bioflat/pkg/linesrc"
	"github.com/andrew-torda/bioflat/pkg/record"
	"github.com/andrew-torda/bioflat/pkg/xref"
)

const nFields = 16

// Record is one line. Absent identifiers are zero IDs, absent strings
// are empty and absent positions are nil.
type Record struct {
	record.Provenance
	TaxonID          ident.ID
	GeneID           ident.ID
	Status           string
	RNAAccession     ident.ID
	RNAGi            ident.ID
	ProteinAccession ident.ID
	ProteinGi        ident.ID
	GenomicAccession ident.ID
	GenomicGi        ident.ID
	Start            *int64
	End              *int64
	Orientation      byte
	Assembly         string
	PeptideAccession ident.ID
	PeptideGi        ident.ID
	Symbol           string
}

var Schema = record.Schema{
	Name:       "gene2refseq",
	Label:      "gene2refseq record",
	DataSource: datasource.Eg,
	License:    "NCBI",
	Citation: "The NCBI handbook [Internet]. Bethesda (MD): National Library of Medicine (US), " +
		"National Center for Biotechnology Information; 2002 Oct. Chapter 19 Gene: A Directory of Genes.",
	Fields: []record.FieldDoc{
		{Name: "tax_id", Comment: "NCBI Taxonomy identifier of the species or strain"},
		{Name: "GeneID", Comment: "the unique identifier for a gene"},
		{Name: "status", Comment: "status of the RefSeq: INFERRED, MODEL, NA, PREDICTED, PROVISIONAL, REVIEWED, SUPPRESSED, VALIDATED"},
		{Name: "RNA_nucleotide_accession.version", Comment: "may be null (-) for some genomes"},
		{Name: "RNA_nucleotide_gi", Comment: "gi of the RNA accession, '-' if not applicable"},
		{Name: "protein_accession.version", Comment: "null (-) for RNA-coding genes"},
		{Name: "protein_gi", Comment: "gi of the protein accession, '-' if not applicable"},
		{Name: "genomic_nucleotide_accession.version", Comment: "may be null (-) if the RefSeq came after the genomic accession"},
		{Name: "genomic_nucleotide_gi", Comment: "gi of the genomic accession, '-' if not applicable"},
		{Name: "start_position_on_the_genomic_accession", Comment: "start of the gene feature, '-' if not applicable"},
		{Name: "end_position_on_the_genomic_accession", Comment: "end of the gene feature, '-' if not applicable"},
		{Name: "orientation", Comment: "strand of the gene feature, '?' if not applicable"},
		{Name: "assembly", Comment: "name of the assembly, '-' if not applicable"},
		{Name: "mature_peptide_accession.version", Comment: "mature peptide RefSeq accession"},
		{Name: "mature_peptide_gi", Comment: "gi of the mature peptide"},
		{Name: "Symbol", Comment: "default gene symbol"},
	},
}

// NewFormat gives a fresh format. Each reader needs its own.
func NewFormat() record.Format[Record] {
	return record.NewFormat[Record](&record.SingleLine{Comment: "#"}, record.ParserFunc[Record](Parse))
}

// Open starts reading a gene2refseq file, compressed or not.
func Open(path string, lo linesrc.Options, opts ...record.Option) (*record.Reader[Record], error) {
	return record.Open(path, lo, NewFormat(), opts...)
}

// orNil applies the same null rule as the identifier columns to the
// plain text ones.
func orNil(s string) string {
	if ident.IsNull(s) {
		return ""
	}
	return strings.TrimSpace(s)
}

// Parse reads one line.
func Parse(g record.Group) (Record, error) {
	toks := strings.Split(g[0].Text, "\t")
	if len(toks) != nFields {
		return Record{}, record.Malformed(g, "expected %d tab separated fields, got %d", nFields, len(toks))
	}
	rec := Record{Provenance: g.First()}
	var err error
	if rec.TaxonID, err = ident.New(ident.NcbiTaxonomy, toks[0]); err != nil {
		return Record{}, record.Malformed(g, "taxon: %v", err)
	}
	if rec.GeneID, err = ident.New(ident.EntrezGene, toks[1]); err != nil {
		return Record{}, record.Malformed(g, "gene: %v", err)
	}
	rec.Status = orNil(toks[2])

	// Accessions are only taken when there is a status. Without one the
	// producer drops them too.
	acc := func(i int) (ident.ID, error) {
		if rec.Status == "" {
			return ident.ID{}, nil
		}
		id, _, err := ident.Nullable(ident.RefSeq, toks[i])
		return id, err
	}
	gi := func(i int) (ident.ID, error) {
		id, _, err := ident.Nullable(ident.GiNumber, toks[i])
		return id, err
	}
	pos := func(i int) (*int64, error) {
		if ident.IsNull(toks[i]) {
			return nil, nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(toks[i]), 10, 64)
		if err != nil {
			return nil, err
		}
		return &n, nil
	}
	steps := []struct {
		name string
		do   func() error
	}{
		{"RNA accession", func() (err error) { rec.RNAAccession, err = acc(3); return }},
		{"RNA gi", func() (err error) { rec.RNAGi, err = gi(4); return }},
		{"protein accession", func() (err error) { rec.ProteinAccession, err = acc(5); return }},
		{"protein gi", func() (err error) { rec.ProteinGi, err = gi(6); return }},
		{"genomic accession", func() (err error) { rec.GenomicAccession, err = acc(7); return }},
		{"genomic gi", func() (err error) { rec.GenomicGi, err = gi(8); return }},
		{"start", func() (err error) { rec.Start, err = pos(9); return }},
		{"end", func() (err error) { rec.End, err = pos(10); return }},
		{"peptide accession", func() (err error) { rec.PeptideAccession, err = acc(13); return }},
		{"peptide gi", func() (err error) { rec.PeptideGi, err = gi(14); return }},
	}
	for _, s := range steps {
		if err := s.do(); err != nil {
			return Record{}, record.Malformed(g, "%s: %v", s.name, err)
		}
	}
	orient := strings.TrimSpace(toks[11])
	if len(orient) != 1 {
		return Record{}, record.Malformed(g, "orientation %q is not a single character", toks[11])
	}
	rec.Orientation = orient[0]
	rec.Assembly = orNil(toks[12])
	rec.Symbol = orNil(toks[15])
	return rec, nil
}

// GeneToRNA maps each gene to its RNA accession, for xref.Build.
func GeneToRNA(r Record) []xref.Pair {
	return []xref.Pair{{Key: r.GeneID, Value: r.RNAAccession}}
}

// GeneToTaxon maps each gene to its species.
func GeneToTaxon(r Record) []xref.Pair {
	return []xref.Pair{{Key: r.GeneID, Value: r.TaxonID}}
}
