package filelist_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/sv-explorer/filelist"
)

func benchmarkParseLines(b *testing.B, options ...filelist.Option) {
	lines := strings.Split(strings.Repeat(scenario, 1000), "\n")
	p := filelist.MustNew(options...)
	_, err := p.ParseLines(lines)
	assert.NoError(b, err)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.ParseLines(lines)
	}
}

func BenchmarkParseLines(b *testing.B) {
	benchmarkParseLines(b)
}

func BenchmarkParseLinesParallel(b *testing.B) {
	benchmarkParseLines(b, filelist.Parallel(8))
}
