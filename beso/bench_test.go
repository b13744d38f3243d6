package beso_test

import (
	"context"
	"testing"

	"github.com/adrian0850/sbeso/beso"
)

func BenchmarkRun_5x5(b *testing.B) {
	cfg := beso.DefaultConfig()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := beso.Run(context.Background(), cfg, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_12x6(b *testing.B) {
	cfg := beso.DefaultConfig()
	cfg.Width, cfg.Height = 12, 6
	cfg.VolFrac = 0.5
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = beso.Run(context.Background(), cfg, nil, beso.WithMaxIterations(60))
	}
}
