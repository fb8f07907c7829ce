package groupsimilar

import (
	"math"
	"math/rand"
	"testing"
)

func generateBenchNames(n int) []string {
	rng := rand.New(rand.NewSource(42))
	const letters = "abcdefghijklmnopqrstuvwxyz"
	names := make([]string, n)
	for i := range names {
		b := make([]byte, 4+rng.Intn(8))
		for j := range b {
			b[j] = letters[rng.Intn(len(letters))]
		}
		names[i] = string(b)
	}
	return names
}

func generateBenchCondensed(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, CondensedLen(n))
	for i := range data {
		data[i] = rng.Float64()
	}
	return data
}

// --- Condensed Matrix ---

func benchCondensedMatrix(b *testing.B, n, workers int) {
	b.Helper()
	names := generateBenchNames(n)
	cmp := JaroWinkler()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := CondensedMatrixParallel(names, cmp, workers, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCondensedMatrix_500(b *testing.B)          { benchCondensedMatrix(b, 500, 1) }
func BenchmarkCondensedMatrix_1000(b *testing.B)         { benchCondensedMatrix(b, 1000, 1) }
func BenchmarkCondensedMatrixParallel_1000(b *testing.B) { benchCondensedMatrix(b, 1000, 8) }
func BenchmarkCondensedMatrixParallel_2000(b *testing.B) { benchCondensedMatrix(b, 2000, 8) }

// --- Linkage ---

func benchLinkage(b *testing.B, n int, method Method) {
	b.Helper()
	condensed := generateBenchCondensed(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Linkage(condensed, n, method); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLinkageComplete_500(b *testing.B)  { benchLinkage(b, 500, MethodComplete) }
func BenchmarkLinkageComplete_1000(b *testing.B) { benchLinkage(b, 1000, MethodComplete) }
func BenchmarkLinkageAverage_1000(b *testing.B)  { benchLinkage(b, 1000, MethodAverage) }
func BenchmarkLinkageSingle_1000(b *testing.B)   { benchLinkage(b, 1000, MethodSingle) }

// --- Cut ---

func benchCut(b *testing.B, n int) {
	b.Helper()
	steps, err := Linkage(generateBenchCondensed(n), n, MethodComplete)
	if err != nil {
		b.Fatal(err)
	}
	threshold := MustThreshold(math.Min(0.5, steps[len(steps)/2].Dissimilarity))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Cut(steps, n, threshold)
	}
}

func BenchmarkCut_1000(b *testing.B) { benchCut(b, 1000) }

// --- Full Pipeline ---

func benchFullPipeline(b *testing.B, n int) {
	b.Helper()
	names := generateBenchNames(n)
	cfg := DefaultConfig(JaroWinkler())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Group(names, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFullPipeline_100(b *testing.B)  { benchFullPipeline(b, 100) }
func BenchmarkFullPipeline_500(b *testing.B)  { benchFullPipeline(b, 500) }
func BenchmarkFullPipeline_1000(b *testing.B) { benchFullPipeline(b, 1000) }
