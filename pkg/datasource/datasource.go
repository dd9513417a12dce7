// Package datasource is the closed catalog of authorities that issue
// identifiers: Entrez Gene, UniProt, the Gene Ontology and a few hundred
// more. A DataSource is a small integer, so it is cheap to store in
// every identifier and to use as a map key.
package datasource

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// DataSource names one authority. The zero value is Unknown.
type DataSource uint16

// Subset is a named group of data sources. Subsets can be or-ed together.
type Subset uint8

const (
	GeneOrGeneProduct Subset = 1 << iota
	Ontology
)

var subsetNames = map[Subset]string{
	GeneOrGeneProduct: "gene-or-gene-product",
	Ontology:          "ontology",
}

var subsetMembers = map[Subset][]DataSource{
	GeneOrGeneProduct: {Eg, Uniprot, Mgi, Hgnc, Hprd, Refseq, Dip, Irefweb, Embl, Pr, Pharmgkb},
	Ontology:          {Go, So, Chebi, Cl, Pr, Ro, Mod, Uberon, Mp, MiOntology, Nbo, Iao, Pw, Rdo, Obo},
}

var (
	byName  map[string]DataSource // exact
	byUpper map[string]DataSource // upper cased, for the fallback
	member  [numSources]Subset
)

func init() {
	byName = make(map[string]DataSource, numSources)
	byUpper = make(map[string]DataSource, numSources)
	for ds := Any; ds < numSources; ds++ {
		byName[names[ds]] = ds
		byUpper[strings.ToUpper(names[ds])] = ds
	}
	for sub, dss := range subsetMembers {
		for _, ds := range dss {
			member[ds] |= sub
		}
	}
}

// Parse looks up a canonical name such as "EG" or "UNIPROT". If there is
// no exact match, case is ignored. It never fails loudly; unknown names
// give (Unknown, false).
func Parse(s string) (DataSource, bool) {
	if ds, ok := byName[s]; ok {
		return ds, true
	}
	ds, ok := byUpper[strings.ToUpper(strings.TrimSpace(s))]
	return ds, ok
}

// IsDataSource says whether s is exactly a canonical name.
func IsDataSource(s string) bool {
	_, ok := byName[s]
	return ok
}

// All returns the whole catalog in declaration order, without Unknown.
func All() []DataSource {
	all := make([]DataSource, 0, numSources-1)
	for ds := Any; ds < numSources; ds++ {
		all = append(all, ds)
	}
	return all
}

// Members lists the sources in any of the subsets in s, in catalog order.
func Members(s Subset) []DataSource {
	var m []DataSource
	for ds := Any; ds < numSources; ds++ {
		if member[ds]&s != 0 {
			m = append(m, ds)
		}
	}
	return m
}

// Valid is false for Unknown and for numbers outside the catalog.
func (d DataSource) Valid() bool { return d > Unknown && d < numSources }

// In says whether d belongs to any of the subsets in s.
func (d DataSource) In(s Subset) bool {
	return d.Valid() && member[d]&s != 0
}

// String is the canonical name.
func (d DataSource) String() string {
	if !d.Valid() {
		return "UNKNOWN"
	}
	return names[d]
}

// Display is a name for people. It falls back to the canonical name.
func (d DataSource) Display() string {
	if s, ok := displayNames[d]; ok {
		return s
	}
	return d.String()
}

func (d DataSource) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.Newf("cannot marshal data source %d", uint16(d))
	}
	return []byte(names[d]), nil
}

func (d *DataSource) UnmarshalText(b []byte) error {
	ds, ok := Parse(string(b))
	if !ok {
		return errors.WithHint(errors.Newf("unknown data source %q", b),
			"run 'bioflat datasource' for the list")
	}
	*d = ds
	return nil
}

func (s Subset) String() string {
	var parts []string
	for _, sub := range []Subset{GeneOrGeneProduct, Ontology} {
		if s&sub != 0 {
			parts = append(parts, subsetNames[sub])
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Subsets gives every subset d belongs to.
func (d DataSource) Subsets() Subset {
	if !d.Valid() {
		return 0
	}
	return member[d]
}

// ParseSubset accepts the names printed by Subset.String.
func ParseSubset(s string) (Subset, bool) {
	for sub, name := range subsetNames {
		if strings.EqualFold(name, s) {
			return sub, true
		}
	}
	return 0, false
}
