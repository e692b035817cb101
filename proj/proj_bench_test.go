package proj

import "testing"

func BenchmarkLonLatToUnit(b *testing.B) {
	coords := [][2]float64{
		{0, 0},
		{180, maxLat},
		{-180, minLat},
		{-122.67890, 45.12345},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range coords {
			LonLatToUnit(c[0], c[1])
		}
	}
}

func BenchmarkWindowToLocal(b *testing.B) {
	coords := [][2]float64{
		{0, 0},
		{1919, 1079},
		{960, 540},
		{13, 1000},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range coords {
			WindowToLocal(c[0], c[1], 1920, 1080)
		}
	}
}
