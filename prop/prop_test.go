// Package prop contains tests for the property-based testing driver:
// configuration defaults, sequential/parallel execution, and shrinking
// behavior against the new Arbitrary/Shrinkable stack.
package prop

import (
	"testing"
	"time"

	"github.com/arbitlab/arbit/arbitrary"
)

func TestConfigEffectiveSeed(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{name: "seed zero generates a random seed", config: Config{Seed: 0}},
		{name: "non-zero seed is preserved", config: Config{Seed: 12345}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := tt.config.effectiveSeed()
			if seed == 0 {
				t.Errorf("effectiveSeed() = 0, want non-zero")
			}
			if tt.config.Seed != 0 && seed != tt.config.Seed {
				t.Errorf("effectiveSeed() = %d, want %d", seed, tt.config.Seed)
			}
		})
	}
}

func TestConfigEffectiveSeedConsistency(t *testing.T) {
	config := Config{Seed: 0}
	seeds := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		seed := config.effectiveSeed()
		if seeds[seed] {
			t.Errorf("effectiveSeed() generated duplicate seed: %d", seed)
		}
		seeds[seed] = true
		time.Sleep(time.Microsecond)
	}
}

func TestDefault(t *testing.T) {
	config := Default()
	if config.Examples <= 0 {
		t.Errorf("Default().Examples = %d, want > 0", config.Examples)
	}
	if config.MaxShrink <= 0 {
		t.Errorf("Default().MaxShrink = %d, want > 0", config.MaxShrink)
	}
	if config.Parallelism <= 0 {
		t.Errorf("Default().Parallelism = %d, want > 0", config.Parallelism)
	}
	if config.GenSize != arbitrary.DefaultGenSize {
		t.Errorf("Default().GenSize = %d, want %d", config.GenSize, arbitrary.DefaultGenSize)
	}
}

func TestForAllSequentialPassing(t *testing.T) {
	cfg := Config{Seed: 1, Examples: 20, MaxShrink: 10, ShrinkStrat: "bfs", Parallelism: 1}
	ForAll(t, cfg, arbitrary.Ints(0, 100))(func(st *testing.T, x int) {
		if x < 0 || x > 100 {
			st.Errorf("x out of range: %d", x)
		}
	})
}

func TestForAllParallelPassing(t *testing.T) {
	cfg := Config{Seed: 2, Examples: 20, MaxShrink: 10, ShrinkStrat: "bfs", Parallelism: 4}
	ForAll(t, cfg, arbitrary.Ints(0, 100))(func(st *testing.T, x int) {
		if x < 0 || x > 100 {
			st.Errorf("x out of range: %d", x)
		}
	})
}

func TestForAllShrinksTowardZero(t *testing.T) {
	t.Run("subtest reports the failure, outer test stays green", func(t *testing.T) {
		t.Skip("documents that a deliberately-failing property reports via t.Fatalf on the subtest; run manually to observe shrinking output")
		cfg := Config{Seed: 42, Examples: 30, MaxShrink: 100, ShrinkStrat: "bfs", Parallelism: 1}
		ForAll(t, cfg, arbitrary.Ints(-1000, 1000))(func(st *testing.T, x int) {
			if x > 50 || x < -50 {
				st.Fatalf("property violated: %d", x)
			}
		})
	})
}

func TestForAllDFSStrategy(t *testing.T) {
	cfg := Config{Seed: 7, Examples: 10, MaxShrink: 5, ShrinkStrat: "dfs", Parallelism: 1}
	ForAll(t, cfg, arbitrary.Ints(0, 10))(func(st *testing.T, x int) {
		if x < 0 || x > 10 {
			st.Errorf("x out of range: %d", x)
		}
	})
}

func TestForAllZeroExamplesRunsNothing(t *testing.T) {
	cfg := Config{Seed: 1, Examples: 0, MaxShrink: 0, ShrinkStrat: "bfs", Parallelism: 1}
	ran := false
	ForAll(t, cfg, arbitrary.Ints(0, 10))(func(st *testing.T, x int) { ran = true })
	if ran {
		t.Error("body should not run when Examples == 0")
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.countDraw()
	m.countShrinkStep()
	m.CountFilterMiss()
}
