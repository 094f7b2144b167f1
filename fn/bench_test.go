package fn_test

import (
	"context"
	"testing"

	"github.com/hasbyte1/go-array-utils/fn"
)

func BenchmarkPipe(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fn.Pipe(i, inc, dbl, inc, dbl)
	}
}

func BenchmarkMemoizeHit(b *testing.B) {
	square := fn.Memoize(func(n int) int { return n * n })
	square(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		square(42)
	}
}

func BenchmarkMemoizeByHit(b *testing.B) {
	square := fn.MemoizeBy(func(n int) int { return n * n }, func(n int) int { return n })
	square(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		square(42)
	}
}

func BenchmarkWithRetrySuccess(b *testing.B) {
	call := fn.WithRetry(func(context.Context) (int, error) { return 1, nil }, 3, 0)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = call(ctx)
	}
}
