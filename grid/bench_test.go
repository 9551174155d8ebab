package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// randomText builds an n×n grid in the text format with ~25% obstacles.
func randomText(n int, seed int64) string {
	r := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if r.Intn(4) == 0 {
				sb.WriteByte('5')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkParse measures parsing a 500×500 grid.
// Complexity: O(rows×cols).
func BenchmarkParse(b *testing.B) {
	text := randomText(500, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.Parse(strings.NewReader(text)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRegions measures Regions on a 1000×1000 random grid.
// Complexity: O(rows×cols×4)
func BenchmarkRegions(b *testing.B) {
	g, err := grid.Parse(strings.NewReader(randomText(1000, 42)))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions()
	}
}
