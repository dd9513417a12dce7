package record

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/bioflat/pkg/datasource"
)

// FieldDoc describes one field of a record type.
type FieldDoc struct {
	Name    string
	Comment string
}

// Schema is static documentation kept next to a record type. Parsing
// never looks at it.
type Schema struct {
	Name       string
	Label      string
	DataSource datasource.DataSource
	License    string
	Citation   string
	Fields     []FieldDoc
}

// Markdown renders the schema for people to read.
func (s Schema) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Name)
	if s.Label != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Label)
	}
	if s.DataSource != datasource.Unknown {
		fmt.Fprintf(&b, "- Source: %s\n", s.DataSource.Display())
	}
	if s.License != "" {
		fmt.Fprintf(&b, "- License: %s\n", s.License)
	}
	if s.Citation != "" {
		fmt.Fprintf(&b, "- Citation: %s\n", s.Citation)
	}
	b.WriteString("\n| Field | Description |\n|---|---|\n")
	for _, f := range s.Fields {
		fmt.Fprintf(&b, "| %s | %s |\n", f.Name, strings.ReplaceAll(f.Comment, "|", `\|`))
	}
	return b.String()
}
