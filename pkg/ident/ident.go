// Package ident holds typed identifiers. An ID knows which scheme it
// belongs to, so a gene number can not be mistaken for a taxon number
// even though both are just digits. Every ID goes through New, which
// checks and normalises the value.
//
// Flat files write a missing value as "-". That is not an identifier;
// Nullable turns it into "absent" before anything is constructed.
package ident

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/andrew-torda/bioflat/pkg/datasource"
)

// NullSentinel is how the dumps say "no value".
const NullSentinel = "-"

// ErrFormat is returned when a value does not fit its scheme.
var ErrFormat = errors.New("malformed identifier")

// ID is a validated identifier. It is comparable and can be a map key.
// The zero ID means "absent".
type ID struct {
	kind  Kind
	value string
}

// IsNull says whether raw is the null sentinel, ignoring surrounding
// white space.
func IsNull(raw string) bool { return strings.TrimSpace(raw) == NullSentinel }

// New checks raw against the rules for kind and returns the normalised ID.
func New(kind Kind, raw string) (ID, error) {
	if !kind.valid() {
		return ID{}, errors.AssertionFailedf("identifier kind %d does not exist", kind)
	}
	v := &variants[kind]
	s := strings.TrimSpace(raw)
	if s == "" {
		return ID{}, errors.Wrapf(ErrFormat, "empty %s", v.name)
	}
	if s == NullSentinel {
		return ID{}, errors.WithHint(errors.Wrapf(ErrFormat, "%s is the null sentinel", v.name),
			"use ident.Nullable for fields that may be missing")
	}
	if v.upper {
		s = strings.ToUpper(s)
	}
	if v.numeric {
		if !allDigits(s) {
			return ID{}, errors.WithHintf(errors.Wrapf(ErrFormat, "%s %q is not a number", v.name, raw),
				"expected something like %s", v.example)
		}
		s = strings.TrimLeft(s, "0")
		if s == "" {
			s = "0"
		}
	}
	if v.prefix != "" && allDigits(s) {
		s = v.prefix + s
	}
	if v.pattern != nil && !v.pattern.MatchString(s) {
		return ID{}, errors.WithHintf(errors.Wrapf(ErrFormat, "%s %q", v.name, raw),
			"expected something like %s", v.example)
	}
	return ID{kind: kind, value: s}, nil
}

// Nullable is New for fields that may hold the null sentinel. For "-"
// it returns the zero ID and false, with no error.
func Nullable(kind Kind, raw string) (ID, bool, error) {
	if IsNull(raw) {
		return ID{}, false, nil
	}
	id, err := New(kind, raw)
	if err != nil {
		return ID{}, false, err
	}
	return id, true, nil
}

// Must is New that panics. It is for tests and constant tables.
func Must(kind Kind, raw string) ID {
	id, err := New(kind, raw)
	if err != nil {
		panic(err)
	}
	return id
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (id ID) Kind() Kind { return id.kind }

// Value is the normalised text, without the kind prefix.
func (id ID) Value() string { return id.value }

func (id ID) IsZero() bool { return id.kind == 0 }

// Authority is the data source that issued the identifier.
func (id ID) Authority() datasource.DataSource { return id.kind.Authority() }

// String is "SHORT:value", for example "EG:1", or "-" for the zero ID.
func (id ID) String() string {
	if id.IsZero() {
		return NullSentinel
	}
	return id.kind.Short() + ":" + id.value
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText reads what MarshalText wrote. The kind is everything
// before the first colon, so "MGI:MGI:87854" is fine.
func (id *ID) UnmarshalText(b []byte) error {
	s := string(b)
	if IsNull(s) {
		*id = ID{}
		return nil
	}
	pfx, val, ok := strings.Cut(s, ":")
	if !ok {
		return errors.Wrapf(ErrFormat, "%q has no kind prefix", s)
	}
	kind, ok := ParseKind(pfx)
	if !ok {
		return errors.Wrapf(ErrFormat, "unknown identifier kind %q", pfx)
	}
	parsed, err := New(kind, val)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
