package ident

import (
	"regexp"
	"strings"

	"github.com/andrew-torda/bioflat/pkg/datasource"
)

// Kind names an identifier scheme. The zero Kind belongs to the zero ID.
type Kind uint8

const (
	EntrezGene Kind = iota + 1
	NcbiTaxonomy
	GiNumber
	RefSeq
	TransfacGene
	TransfacFactor
	Mgi
	Hgnc
	UniProt
	GeneOntology
	PubMed
	Ensembl
	Embl
	Omim
	Rgd
	Flybase
	Chebi
	Pdb
	numKinds
)

// variant is everything we know about one Kind.
type variant struct {
	name      string
	short     string // prefix used by String and MarshalText
	authority datasource.DataSource
	numeric   bool           // digits only, leading zeros dropped
	prefix    string         // added to a bare number, "MGI:" for 1234
	upper     bool           // case is not significant
	pattern   *regexp.Regexp // checked after normalising
	example   string
}

var variants = [numKinds]variant{
	EntrezGene:   {name: "EntrezGene", short: "EG", authority: datasource.Eg, numeric: true, example: "1"},
	NcbiTaxonomy: {name: "NcbiTaxonomy", short: "TAXON", authority: datasource.NcbiTaxon, numeric: true, example: "9606"},
	GiNumber:     {name: "GiNumber", short: "GI", authority: datasource.Genbank, numeric: true, example: "4557225"},
	RefSeq: {name: "RefSeq", short: "REFSEQ", authority: datasource.Refseq,
		pattern: regexp.MustCompile(`^[A-Z]{2}_[0-9]+(\.[0-9]+)?$`), example: "NM_000014.4"},
	TransfacGene: {name: "TransfacGene", short: "TFG", authority: datasource.Transfac, upper: true,
		pattern: regexp.MustCompile(`^G[0-9]{6}$`), example: "G000001"},
	TransfacFactor: {name: "TransfacFactor", short: "TFF", authority: datasource.Transfac, upper: true,
		pattern: regexp.MustCompile(`^T[0-9]{5}$`), example: "T00001"},
	Mgi: {name: "Mgi", short: "MGI", authority: datasource.Mgi, prefix: "MGI:", upper: true,
		pattern: regexp.MustCompile(`^MGI:[0-9]+$`), example: "MGI:87854"},
	Hgnc: {name: "Hgnc", short: "HGNC", authority: datasource.Hgnc, prefix: "HGNC:", upper: true,
		pattern: regexp.MustCompile(`^HGNC:[0-9]+$`), example: "HGNC:7"},
	UniProt: {name: "UniProt", short: "UNIPROT", authority: datasource.Uniprot, upper: true,
		pattern: regexp.MustCompile(`^([OPQ][0-9][A-Z0-9]{3}[0-9]|[A-NR-Z][0-9]([A-Z][A-Z0-9]{2}[0-9]){1,2})(-[0-9]+)?$`),
		example: "P01023"},
	GeneOntology: {name: "GeneOntology", short: "GO", authority: datasource.Go, prefix: "GO:", upper: true,
		pattern: regexp.MustCompile(`^GO:[0-9]{7}$`), example: "GO:0005576"},
	PubMed: {name: "PubMed", short: "PMID", authority: datasource.Pm, numeric: true, example: "2434045"},
	Ensembl: {name: "Ensembl", short: "ENSEMBL", authority: datasource.Ensembl, upper: true,
		pattern: regexp.MustCompile(`^ENS[A-Z]*[EGPRT][0-9]{11}(\.[0-9]+)?$`), example: "ENSG00000175899"},
	Embl: {name: "Embl", short: "EMBL", authority: datasource.Embl, upper: true,
		pattern: regexp.MustCompile(`^([A-Z][0-9]{5}|[A-Z]{2}[0-9]{6}|[A-Z]{4,6}[0-9]{8,10})(\.[0-9]+)?$`),
		example: "M11313"},
	Omim:  {name: "Omim", short: "OMIM", authority: datasource.Omim, numeric: true, example: "103950"},
	Rgd:   {name: "Rgd", short: "RGD", authority: datasource.Rgd, numeric: true, example: "2004"},
	Flybase: {name: "Flybase", short: "FB", authority: datasource.Flybase,
		pattern: regexp.MustCompile(`^FB[a-z]{2}[0-9]{7}$`), example: "FBgn0000008"},
	Chebi: {name: "Chebi", short: "CHEBI", authority: datasource.Chebi, prefix: "CHEBI:", upper: true,
		pattern: regexp.MustCompile(`^CHEBI:[0-9]+$`), example: "CHEBI:15377"},
	Pdb: {name: "Pdb", short: "PDB", authority: datasource.Pdb, upper: true,
		pattern: regexp.MustCompile(`^[0-9][A-Z0-9]{3}$`), example: "1BV1"},
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, 2*numKinds)
	for k := EntrezGene; k < numKinds; k++ {
		m[strings.ToLower(variants[k].name)] = k
		m[strings.ToLower(variants[k].short)] = k
	}
	return m
}()

// ParseKind accepts the long name ("EntrezGene") or the short one
// ("EG"), ignoring case.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// Kinds lists every scheme.
func Kinds() []Kind {
	ks := make([]Kind, 0, numKinds-1)
	for k := EntrezGene; k < numKinds; k++ {
		ks = append(ks, k)
	}
	return ks
}

func (k Kind) valid() bool { return k > 0 && k < numKinds }

func (k Kind) String() string {
	if !k.valid() {
		return "NoKind"
	}
	return variants[k].name
}

// Short is the prefix used when an ID is printed.
func (k Kind) Short() string {
	if !k.valid() {
		return ""
	}
	return variants[k].short
}

// Authority is the data source that issues identifiers of this kind.
func (k Kind) Authority() datasource.DataSource {
	if !k.valid() {
		return datasource.Unknown
	}
	return variants[k].authority
}

// Example is a well formed value, handy for help text.
func (k Kind) Example() string {
	if !k.valid() {
		return ""
	}
	return variants[k].example
}
