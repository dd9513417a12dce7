// Package transfac reads the TRANSFAC gene.dat file. Each entry is a
// block of lines, each starting with a two letter code. A block starts
// with an AC line and ends with "//". Whatever comes before the first AC
// line is a header and is skipped.
//
//	AC  G000001
//	XX
//	SD  Alb
//	OS  mouse, Mus musculus
//	FA  T00001 C/EBPalpha; mouse, Mus musculus.
//	DR  ENTREZGENE: 11657.
//	DR  MGI: MGI:87854.
//	//
package transfac

import (
	"strings"

	"github.com/andrew-torda/bioflat/pkg/datasource"
	"github.com/andrew-torda/bioflat/pkg/diag"
	"github.com/andrew-torda/bioflat/pkg/ident"
	"github.com/andrew-torda/bioflat/pkg/linesrc"
	"github.com/andrew-torda/bioflat/pkg/record"
	"github.com/andrew-torda/bioflat/pkg/xref"
)

// Ref is a database reference we have no identifier type for.
type Ref struct {
	Database  string
	Accession string
}

// Record is one gene entry.
type Record struct {
	record.Provenance
	GeneID     ident.ID   // AC
	Symbol     string     // SD
	Species    string     // OS
	Factors    []ident.ID // FA, the factors this gene encodes
	EntrezGene ident.ID   // DR ENTREZGENE, zero if there is none
	Mgi        ident.ID   // DR MGI, zero if there is none
	Refs       []Ref      // all other DR lines
}

var Schema = record.Schema{
	Name:       "transfac-gene",
	Label:      "TRANSFAC gene.dat record",
	DataSource: datasource.Transfac,
	License:    "TRANSFAC",
	Citation:   "Matys V. et al. TRANSFAC and its module TRANSCompel: transcriptional gene regulation in eukaryotes. Nucleic Acids Res. 2006.",
	Fields: []record.FieldDoc{
		{Name: "AC", Comment: "TRANSFAC gene accession, G followed by six digits"},
		{Name: "SD", Comment: "short gene symbol"},
		{Name: "OS", Comment: "species"},
		{Name: "FA", Comment: "encoded factor, T followed by five digits, one line per factor"},
		{Name: "DR", Comment: "database reference, DATABASE: accession."},
	},
}

// NewFormat gives a fresh format. Each reader needs its own.
func NewFormat() record.Format[Record] {
	return record.NewFormat[Record](&record.MultiLine{
		First:      record.HasPrefix("AC"),
		Terminator: record.HasPrefix("//"),
		Tail:       record.EmitTail,
	}, record.ParserFunc[Record](Parse))
}

// Open starts reading a gene.dat file.
func Open(path string, lo linesrc.Options, opts ...record.Option) (*record.Reader[Record], error) {
	return record.Open(path, lo, NewFormat(), opts...)
}

// split breaks "DR  ENTREZGENE: 11657." into "DR" and "ENTREZGENE: 11657.".
func split(s string) (code, val string) {
	if len(s) < 2 {
		return s, ""
	}
	return s[:2], strings.TrimSpace(s[2:])
}

// Parse reads one block.
func Parse(g record.Group) (Record, error) {
	rec := Record{Provenance: g.First()}
	for _, l := range g {
		code, val := split(l.Text)
		var err error
		switch code {
		case "AC":
			if !rec.GeneID.IsZero() {
				return Record{}, record.Malformed(g, "second AC line %d", l.LineNumber)
			}
			if rec.GeneID, err = ident.New(ident.TransfacGene, val); err != nil {
				return Record{}, record.Malformed(g, "AC: %v", err)
			}
		case "SD":
			rec.Symbol = val
		case "OS":
			rec.Species = val
		case "FA":
			tok, _, _ := strings.Cut(val, " ")
			f, err := ident.New(ident.TransfacFactor, strings.TrimRight(tok, ";"))
			if err != nil {
				return Record{}, record.Malformed(g, "FA on line %d: %v", l.LineNumber, err)
			}
			rec.Factors = append(rec.Factors, f)
		case "DR":
			if err := rec.addRef(val); err != nil {
				return Record{}, record.Malformed(g, "DR on line %d: %v", l.LineNumber, err)
			}
		}
	}
	if rec.GeneID.IsZero() {
		return Record{}, record.Malformed(g, "no AC line")
	}
	return rec, nil
}

func (rec *Record) addRef(val string) error {
	db, acc, ok := strings.Cut(val, ":")
	if !ok {
		rec.Refs = append(rec.Refs, Ref{Accession: strings.TrimSuffix(val, ".")})
		return nil
	}
	db = strings.TrimSpace(db)
	acc = strings.TrimSuffix(strings.TrimSpace(acc), ".")
	var kind ident.Kind
	var dst *ident.ID
	switch db {
	case "ENTREZGENE":
		kind, dst = ident.EntrezGene, &rec.EntrezGene
	case "MGI":
		kind, dst = ident.Mgi, &rec.Mgi
	default:
		rec.Refs = append(rec.Refs, Ref{Database: db, Accession: acc})
		return nil
	}
	if !dst.IsZero() {
		return nil // first one wins
	}
	id, err := ident.New(kind, acc)
	if err != nil {
		return err
	}
	*dst = id
	return nil
}

// GeneToEntrez is an extractor for xref.Build.
func GeneToEntrez(r Record) []xref.Pair {
	return []xref.Pair{{Key: r.GeneID, Value: r.EntrezGene}}
}

// FactorToGene maps every encoded factor to the gene that encodes it.
func FactorToGene(r Record) []xref.Pair {
	p := make([]xref.Pair, len(r.Factors))
	for i, f := range r.Factors {
		p[i] = xref.Pair{Key: f, Value: r.GeneID}
	}
	return p
}

// GeneToEntrezGene maps TRANSFAC genes (G000001) to Entrez genes.
func GeneToEntrezGene(path string, lo linesrc.Options, sink diag.Sink) (xref.Map, xref.Stats, error) {
	r, err := Open(path, lo, record.WithSink(sink))
	if err != nil {
		return nil, xref.Stats{}, err
	}
	return xref.Build(r, GeneToEntrez, sink)
}

// FactorToEncodingGene maps TRANSFAC factors (T00001) to the TRANSFAC
// genes that encode them.
func FactorToEncodingGene(path string, lo linesrc.Options, sink diag.Sink) (xref.Map, xref.Stats, error) {
	r, err := Open(path, lo, record.WithSink(sink))
	if err != nil {
		return nil, xref.Stats{}, err
	}
	return xref.Build(r, FactorToGene, sink)
}
