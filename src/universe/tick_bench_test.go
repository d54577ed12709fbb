package universe

import (
	"fmt"
	"math/rand"
	"testing"
)

var sizes = []int{16, 64, 200}

//randomGrid settles about a third of the cells
func randomGrid(size int, seed int64) *Grid {
	r := rand.New(rand.NewSource(seed))
	g := createGrid(size, size)
	for i := 0; i < size*size/3; i++ {
		g.cells[r.Intn(size)][r.Intn(size)] = true
	}
	return g
}

func Benchmark_Tick(b *testing.B) {
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			g := randomGrid(size, 1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g = Tick(g)
			}
		})
	}
}

func Benchmark_Simulation(b *testing.B) {
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				s := NewSimulation(randomGrid(size, int64(i)), &Options{MaxSteps: 100})
				b.StartTimer()
				s.Run(nopViewer{}, nil)
			}
		})
	}
}

type nopViewer struct{}

func (nopViewer) Render(*Grid, Status) {}
