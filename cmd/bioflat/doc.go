// 18 Oct 2026
/*

bioflat reads flat file dumps of biological databases, such as NCBI
gene2refseq and TRANSFAC gene.dat, record by record. Lines that do not
parse are reported and skipped. Input may be plain, gzip or xz.

Usage:
 bioflat [flags] command [args]

Commands:
  ingest <format> <file>...
	Read every record and print a summary per file: records, skipped
	lines, comments and a blake3 digest of the raw input.
	--records prints each record as a line of JSON, -j prints the
	summary as JSON.
  xref <builder> <file>...
	Build a first-wins cross reference and print key<TAB>value lines.
	Files are read in parallel. --invert swaps the columns.
  datasource [name]
	Look up a data source tag. With no name, list the catalog.
	--subset gene-or-gene-product or --subset ontology lists a subset.
  schema [format]
	Print the field documentation of a format as markdown. With no
	format, list the formats.

Flags:
  --encoding name
	Character encoding of the input, an IANA name. Default UTF-8.
  --mmap
	Memory map uncompressed input.
  --log-level level
	debug, info, warn or error.
  --log-json
	Log as JSON.
  --workers N
	Files read at the same time by xref.

Settings can also come from bioflat.toml, found in the current directory
or any directory above it, and from BIOFLAT_ environment variables.
Flags win.

Examples:
 bioflat ingest gene2refseq gene2refseq.gz
 bioflat xref transfac-factor-gene gene.dat
 bioflat datasource EG
 bioflat schema transfac-gene

Exit status is 0 on success, 2 for usage errors and 1 otherwise.
*/
package main
