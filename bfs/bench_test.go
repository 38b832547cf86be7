package bfs_test

import (
	"testing"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/grid"
)

// BenchmarkOnGrid_Open measures an exhaustive walk over an open 200×200 grid.
func BenchmarkOnGrid_Open(b *testing.B) {
	const n = 200
	g := grid.New(n, n, 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.OnGrid(g, grid.Pt(0, 0), grid.Conn4)
	}
}
