// Package formats is the list of file formats and cross reference
// builders the command line tool knows about, by name.
package formats

import (
	"context"
	"sort"

	"github.com/andrew-torda/bioflat/pkg/diag"
	"github.com/andrew-torda/bioflat/pkg/formats/gene2refseq"
	"github.com/andrew-torda/bioflat/pkg/formats/transfac"
	"github.com/andrew-torda/bioflat/pkg/linesrc"
	"github.com/andrew-torda/bioflat/pkg/record"
	"github.com/andrew-torda/bioflat/pkg/xref"
)

// Emit receives records. Returning an error stops reading.
type Emit func(rec any) error

// Format can read one kind of file without the caller knowing the
// record type.
type Format struct {
	Name   string
	Schema record.Schema
	Ingest func(path string, lo linesrc.Options, sink diag.Sink, emit Emit) (record.Stats, error)
}

// Builder makes one kind of cross reference from any number of files.
type Builder struct {
	Name  string
	Help  string
	Build func(ctx context.Context, paths []string, lo linesrc.Options, sink diag.Sink, workers int) (xref.Map, xref.Stats, error)
}

type opener[R record.Record] func(path string, lo linesrc.Options, opts ...record.Option) (*record.Reader[R], error)

func ingest[R record.Record](open opener[R]) func(string, linesrc.Options, diag.Sink, Emit) (record.Stats, error) {
	return func(path string, lo linesrc.Options, sink diag.Sink, emit Emit) (record.Stats, error) {
		r, err := open(path, lo, record.WithSink(sink))
		if err != nil {
			return record.Stats{}, err
		}
		defer r.Close()
		for rec, err := range r.All() {
			if err != nil {
				return r.Stats(), err
			}
			if emit == nil {
				continue
			}
			if err := emit(rec); err != nil {
				return r.Stats(), err
			}
		}
		return r.Stats(), nil
	}
}

func sharded[R record.Record](open opener[R], extract xref.Extractor[R]) func(context.Context, []string, linesrc.Options, diag.Sink, int) (xref.Map, xref.Stats, error) {
	return func(ctx context.Context, paths []string, lo linesrc.Options, sink diag.Sink, workers int) (xref.Map, xref.Stats, error) {
		o := func(path string) (*record.Reader[R], error) {
			return open(path, lo, record.WithSink(sink))
		}
		return xref.BuildSharded(ctx, paths, o, extract, sink, workers)
	}
}

var formatList = []Format{
	{Name: gene2refseq.Schema.Name, Schema: gene2refseq.Schema, Ingest: ingest(gene2refseq.Open)},
	{Name: transfac.Schema.Name, Schema: transfac.Schema, Ingest: ingest(transfac.Open)},
}

var builderList = []Builder{
	{Name: "gene-rna", Help: "Entrez gene to RefSeq RNA accession, from gene2refseq",
		Build: sharded(gene2refseq.Open, gene2refseq.GeneToRNA)},
	{Name: "gene-taxon", Help: "Entrez gene to NCBI taxon, from gene2refseq",
		Build: sharded(gene2refseq.Open, gene2refseq.GeneToTaxon)},
	{Name: "transfac-gene-entrez", Help: "TRANSFAC gene to Entrez gene, from gene.dat",
		Build: sharded(transfac.Open, transfac.GeneToEntrez)},
	{Name: "transfac-factor-gene", Help: "TRANSFAC factor to the TRANSFAC gene encoding it, from gene.dat",
		Build: sharded(transfac.Open, transfac.FactorToGene)},
}

// Lookup finds a format by name.
func Lookup(name string) (Format, bool) {
	for _, f := range formatList {
		if f.Name == name {
			return f, true
		}
	}
	return Format{}, false
}

// Names lists the formats, sorted.
func Names() []string {
	n := make([]string, len(formatList))
	for i, f := range formatList {
		n[i] = f.Name
	}
	sort.Strings(n)
	return n
}

// LookupBuilder finds a cross reference builder by name.
func LookupBuilder(name string) (Builder, bool) {
	for _, b := range builderList {
		if b.Name == name {
			return b, true
		}
	}
	return Builder{}, false
}

// Builders lists every builder in a fixed order.
func Builders() []Builder {
	return append([]Builder(nil), builderList...)
}
