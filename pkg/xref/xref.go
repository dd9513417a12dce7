// Package xref builds cross-reference maps, such as TRANSFAC gene to
// Entrez gene, from the records of one or more files. When a key turns
// up again with a different value, the first value wins and the later
// one is reported as a duplicate.
package xref

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/bioflat/pkg/diag"
	"github.com/andrew-torda/bioflat/pkg/ident"
	"github.com/andrew-torda/bioflat/pkg/record"
)

// Pair is one key and the value it maps to.
type Pair struct {
	Key, Value ident.ID
}

// Map is the finished cross reference.
type Map map[ident.ID]ident.ID

// Stats counts what went into a Map.
type Stats struct {
	Records    int64 // records read
	Pairs      int64 // pairs kept
	Duplicates int64 // pairs that lost to an earlier value
}

// Extractor pulls the pairs out of one record. Pairs with a zero key or
// value are ignored, so an extractor need not check for absent fields.
type Extractor[R record.Record] func(R) []Pair

// put applies the first-wins rule. An identical repeat is not a conflict.
func (m Map) put(p Pair, ev diag.Event, sink diag.Sink, st *Stats) {
	if p.Key.IsZero() || p.Value.IsZero() {
		return
	}
	old, seen := m[p.Key]
	if !seen {
		m[p.Key] = p.Value
		st.Pairs++
		return
	}
	if old == p.Value {
		return
	}
	st.Duplicates++
	ev.Kind = diag.Duplicate
	ev.Msg = fmt.Sprintf("%s already maps to %s, ignoring %s", p.Key, old, p.Value)
	sink.Report(ev)
}

// Build reads r to the end. The reader is closed however Build returns.
// A read failure is returned along with the partial map.
func Build[R record.Record](r *record.Reader[R], extract Extractor[R], sink diag.Sink) (Map, Stats, error) {
	return build(context.Background(), r, extract, sink)
}

func build[R record.Record](ctx context.Context, r *record.Reader[R], extract Extractor[R], sink diag.Sink) (Map, Stats, error) {
	defer r.Close()
	if sink == nil {
		sink = diag.Discard
	}
	m := make(Map)
	var st Stats
	for rec, err := range r.All() {
		if err != nil {
			return m, st, err
		}
		if err := ctx.Err(); err != nil {
			return m, st, err
		}
		st.Records++
		prov := rec.Origin()
		ev := diag.Event{Source: r.Name(), LineNumber: prov.LineNumber, ByteOffset: prov.ByteOffset}
		for _, p := range extract(rec) {
			m.put(p, ev, sink, &st)
		}
	}
	return m, st, nil
}

// Merge joins maps, earlier arguments winning. Conflicts are reported
// without a position.
func Merge(sink diag.Sink, maps ...Map) Map {
	m, _ := merge(sink, maps)
	return m
}

func merge(sink diag.Sink, maps []Map) (Map, Stats) {
	if sink == nil {
		sink = diag.Discard
	}
	n := 0
	for _, m := range maps {
		n += len(m)
	}
	out := make(Map, n)
	var st Stats
	for _, m := range maps {
		for k, v := range m {
			out.put(Pair{Key: k, Value: v}, diag.Event{Source: "merge"}, sink, &st)
		}
	}
	return out, st
}

// BuildSharded reads every path in its own goroutine, at most workers at
// a time (no limit if workers < 1), and merges the maps in path order, so
// the result is the same as reading the files one after the other. The
// first failure cancels the rest. sink must be safe for concurrent use.
func BuildSharded[R record.Record](ctx context.Context, paths []string,
	open func(path string) (*record.Reader[R], error),
	extract Extractor[R], sink diag.Sink, workers int) (Map, Stats, error) {

	maps := make([]Map, len(paths))
	stats := make([]Stats, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			r, err := open(path)
			if err != nil {
				return err
			}
			m, st, err := build(ctx, r, extract, sink)
			if err != nil {
				return errors.Wrapf(err, "building cross reference from %s", path)
			}
			maps[i], stats[i] = m, st
			return nil
		})
	}
	var total Stats
	if err := g.Wait(); err != nil {
		return nil, total, err
	}
	// Within-file duplicates were counted by each shard; merge counts the
	// ones between files.
	merged, mst := merge(sink, maps)
	for _, st := range stats {
		total.Records += st.Records
		total.Duplicates += st.Duplicates
	}
	total.Duplicates += mst.Duplicates
	total.Pairs = int64(len(merged))
	return merged, total, nil
}

// Invert swaps keys and values. Where several keys share a value, the
// smallest key, by String, wins, so the result does not depend on map
// iteration order.
func (m Map) Invert() Map {
	out := make(Map, len(m))
	for k, v := range m {
		if old, ok := out[v]; !ok || k.String() < old.String() {
			out[v] = k
		}
	}
	return out
}
