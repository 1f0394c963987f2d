package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var benchInput = `+define+TEST_NAME="check_performance" # the test to run`

func BenchmarkLexer(b *testing.B) {
	tokens, err := ConsumeAll(LexString(benchInput))
	require.NoError(b, err)
	require.Len(b, tokens, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ConsumeAll(LexString(benchInput))
	}
}
