package diag_test

import (
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/andrew-torda/bioflat/pkg/diag"
	"github.com/andrew-torda/bioflat/pkg/logger"
)

func TestCollectorConcurrent(t *testing.T) {
	var c diag.Collector
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				k := diag.Skipped
				if j%2 == 1 {
					k = diag.Duplicate
				}
				c.Report(diag.Event{Kind: k, LineNumber: int64(j)})
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, c.Events(), 800)
	assert.Equal(t, 400, c.Count(diag.Skipped))
	assert.Equal(t, 400, c.Count(diag.Duplicate))
	assert.Zero(t, c.Count(diag.Comment))
}

func TestZapSink(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sink := diag.ZapSink{Log: zap.New(core)}
	sink.Report(diag.Event{
		Kind: diag.Skipped, Source: "gene2refseq", LineNumber: 12, ByteOffset: 345,
		Msg: "bad group", Err: errors.New("15 fields"),
	})
	sink.Report(diag.Event{Kind: diag.Comment, LineNumber: 1})

	all := logs.All()
	require.Len(t, all, 2)
	assert.Equal(t, zap.WarnLevel, all[0].Level)
	assert.Equal(t, "skipped: bad group", all[0].Message)
	ctx := all[0].ContextMap()
	assert.Equal(t, "gene2refseq", ctx[logger.FieldFile])
	assert.Equal(t, int64(12), ctx[logger.FieldLine])
	assert.Equal(t, int64(345), ctx[logger.FieldOffset])
	assert.Equal(t, "15 fields", ctx[logger.FieldError])
	assert.Equal(t, zap.DebugLevel, all[1].Level)
}

func TestZapSinkGlobal(t *testing.T) {
	// the default logger is a no-op and must not panic
	diag.ZapSink{}.Report(diag.Event{Kind: diag.Duplicate})
}

func TestTee(t *testing.T) {
	var a, b diag.Collector
	s := diag.Tee(&a, nil, &b, diag.Discard)
	s.Report(diag.Event{Kind: diag.Skipped})
	assert.Equal(t, 1, a.Count(diag.Skipped))
	assert.Equal(t, 1, b.Count(diag.Skipped))
}

func TestEventString(t *testing.T) {
	e := diag.Event{Kind: diag.Skipped, Source: "f", LineNumber: 3, ByteOffset: 10,
		Msg: "m", Err: errors.New("boom")}
	assert.Equal(t, "skipped f:3 (offset 10) m: boom", e.String())
	assert.Equal(t, "Kind(9)", diag.Kind(9).String())
}
