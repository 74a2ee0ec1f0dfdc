// Package prop provides the test-driver layer for Go: it draws Examples
// values from an Arbitrary, runs them against a test body, and shrinks
// any counterexample found using the shrink package's minimisation loop.
// Kept in the teacher's idiom (flag-backed Config, t.Logf/t.Fatalf replay
// reporting) and generalized from the teacher's gen.Generator[T]-based
// ForAll to the Arbitrary[T]/Shrinkable[T] stack.
package prop

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/arbitlab/arbit/arbitrary"
	"github.com/arbitlab/arbit/display"
	"github.com/arbitlab/arbit/gen"
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// Config holds the configuration for property-based testing.
type Config struct {
	// Seed is the random seed used for test case generation.
	// If zero, a random seed will be generated based on the current time.
	Seed int64

	// Examples is the number of test cases to generate and run.
	Examples int

	// MaxShrink is the maximum number of shrinking steps to perform
	// when a counterexample is found.
	MaxShrink int

	// ShrinkStrat specifies the shrinking strategy to use.
	// Supported strategies: "bfs" (breadth-first), "dfs" (depth-first).
	ShrinkStrat string

	// StopOnFirstFailure determines whether to stop testing
	// after the first failing test case is found.
	StopOnFirstFailure bool

	// Parallelism specifies the number of parallel workers to use
	// for running test cases. Must be at least 1.
	Parallelism int

	// GenSize feeds the genSize hint passed to Arbitrary.Generator,
	// e.g. the practical magnitude of unbounded numeric arbitraries.
	GenSize int

	// WithNullProbability is the default null-injection rate a caller
	// can thread into arbitrary.Optional/InjectNull built for this run;
	// Config itself never injects nulls, it only carries the convention.
	WithNullProbability float64

	// Structured enables additional zerolog-based structured logging of
	// the run summary and any failure, alongside the plain t.Logf/
	// t.Fatalf reporting (which always happens regardless of this flag).
	Structured bool

	// Metrics, if non-nil, receives draw and shrink-step counts for this
	// run; its filter-miss counter only moves on explicit CountFilterMiss
	// calls, which the driver does not make. Off by default.
	Metrics *Metrics
}

var (
	// flagSeed sets the random seed for test case generation.
	// Default: 0 (random seed based on current time).
	flagSeed = flag.Int64("rapidx.seed", 0, "Random seed for test case generation")

	// flagExamples sets the number of test cases to generate.
	// Default: 100.
	flagExamples = flag.Int("rapidx.examples", 100, "Number of test cases to generate")

	// flagMaxShrink sets the maximum number of shrinking steps.
	// Default: 400.
	flagMaxShrink = flag.Int("rapidx.maxshrink", 400, "Maximum number of shrinking steps")

	// flagShrinkStrat sets the shrinking strategy.
	// Default: "bfs" (breadth-first search).
	flagShrinkStrat = flag.String("rapidx.shrink.strategy", "bfs", "Shrinking strategy (bfs or dfs)")

	// flagParallelism sets the number of parallel workers.
	// Default: 1.
	flagParallelism = flag.Int("rapidx.shrink.parallel", 1, "Number of parallel workers")
)

// Default returns a Config with default values based on command-line flags.
// This is the recommended way to create a configuration for property-based testing.
func Default() Config {
	return Config{
		Seed:                *flagSeed,
		Examples:            *flagExamples,
		MaxShrink:           *flagMaxShrink,
		ShrinkStrat:         *flagShrinkStrat,
		StopOnFirstFailure:  true,
		Parallelism:         *flagParallelism,
		GenSize:             arbitrary.DefaultGenSize,
		WithNullProbability: 0.1,
	}
}

// effectiveSeed returns the effective seed to use for random number generation.
// If the configured seed is zero, it returns a random seed based on the current time.
func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c Config) effectiveGenSize() int {
	if c.GenSize != 0 {
		return c.GenSize
	}
	return arbitrary.DefaultGenSize
}

var structuredLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// ForAll creates a property-based test that draws cfg.Examples values from
// a, runs them against body, and shrinks any failing draw using the
// shrink package's minimisation loop.
//
// Example usage:
//
//	ForAll(t, prop.Default(), arbitrary.Ints(0, 100))(func(t *testing.T, x int) {
//	    if x+0 != x {
//	        t.Errorf("addition identity failed for %d", x)
//	    }
//	})
func ForAll[T any](t *testing.T, cfg Config, a arbitrary.Arbitrary[T]) func(func(*testing.T, T)) {
	return func(body func(*testing.T, T)) {
		seed := cfg.effectiveSeed()
		src := rng.Seeded(seed)
		shrink.SetStrategy(shrink.Strategy(cfg.ShrinkStrat))
		generator := a.Generator(cfg.effectiveGenSize())

		t.Logf("[arbit] seed=%d examples=%d maxshrink=%d strategy=%s parallelism=%d",
			seed, cfg.Examples, cfg.MaxShrink, cfg.ShrinkStrat, cfg.Parallelism)
		if cfg.Structured {
			structuredLogger.Info().
				Int64("seed", seed).
				Int("examples", cfg.Examples).
				Int("max_shrink", cfg.MaxShrink).
				Str("strategy", cfg.ShrinkStrat).
				Int("parallelism", cfg.Parallelism).
				Msg("property run starting")
		}

		if cfg.Parallelism <= 1 {
			runSequential(t, cfg, generator, body, seed, src)
		} else {
			runParallel(t, cfg, generator, body, seed, src)
		}
	}
}

func runSequential[T any](t *testing.T, cfg Config, g gen.Generator[T], body func(*testing.T, T), seed int64, src *rng.Source) {
	for i := 0; i < cfg.Examples; i++ {
		drawn := g(src)
		cfg.Metrics.countDraw()
		name := fmt.Sprintf("ex#%d", i+1)

		passed := t.Run(name, func(st *testing.T) { body(st, drawn.Value()) })
		if passed {
			continue
		}

		steps := 0
		pred := func(v T) bool {
			steps++
			cfg.Metrics.countShrinkStep()
			sname := fmt.Sprintf("%s/shrink#%d", name, steps)
			ok := t.Run(sname, func(st *testing.T) { body(st, v) })
			return !ok
		}
		result := shrink.Shrink(drawn, pred, cfg.MaxShrink)
		reportFailure(t, cfg, seed, i, name, result.Min.Value(), result.Steps)

		if cfg.StopOnFirstFailure {
			return
		}
	}
}

func runParallel[T any](t *testing.T, cfg Config, g gen.Generator[T], body func(*testing.T, T), seed int64, src *rng.Source) {
	type job struct {
		index int
		drawn shrink.Shrinkable[T]
	}
	jobs := make([]job, 0, cfg.Examples)
	for i := 0; i < cfg.Examples; i++ {
		jobs = append(jobs, job{index: i, drawn: g(src)})
	}

	jobChan := make(chan job, len(jobs))
	for _, j := range jobs {
		jobChan <- j
	}
	close(jobChan)

	var wg sync.WaitGroup
	failureChan := make(chan failureResult[T], len(jobs))

	for w := 0; w < cfg.Parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				cfg.Metrics.countDraw()
				name := fmt.Sprintf("ex#%d", j.index+1)

				passed := t.Run(name, func(st *testing.T) { body(st, j.drawn.Value()) })
				if passed {
					continue
				}

				steps := 0
				pred := func(v T) bool {
					steps++
					cfg.Metrics.countShrinkStep()
					sname := fmt.Sprintf("%s/shrink#%d", name, steps)
					ok := t.Run(sname, func(st *testing.T) { body(st, v) })
					return !ok
				}
				result := shrink.Shrink(j.drawn, pred, cfg.MaxShrink)
				failureChan <- failureResult[T]{index: j.index, name: name, min: result.Min.Value(), steps: result.Steps}

				if cfg.StopOnFirstFailure {
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(failureChan)
	}()

	for failure := range failureChan {
		reportFailure(t, cfg, seed, failure.index, failure.name, failure.min, failure.steps)
		if cfg.StopOnFirstFailure {
			return
		}
	}
}

func reportFailure[T any](t *testing.T, cfg Config, seed int64, exampleIndex int, name string, min T, steps int) {
	full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), name)
	if cfg.Structured {
		structuredLogger.Error().
			Int64("seed", seed).
			Int("examples_run", exampleIndex+1).
			Int("shrunk_steps", steps).
			Interface("counterexample", min).
			Msg("property failed")
	}
	t.Fatalf("[arbit] property failed; seed=%d; examples_run=%d; shrunk_steps=%d\n"+
		"counterexample (min): %s\nreplay: go test -run '%s' -rapidx.seed=%d",
		seed, exampleIndex+1, steps, display.Render(min), full, seed)
}

// failureResult holds information about a failed test case after shrinking.
type failureResult[T any] struct {
	index int
	name  string
	min   T
	steps int
}

// Metrics holds optional Prometheus counters for a property run: total
// draws, total shrink steps, and total filter misses. Construct with
// NewMetrics and set on Config.Metrics; a nil *Metrics is always safe to
// call methods on (every method is a no-op).
type Metrics struct {
	draws        prometheus.Counter
	shrinkSteps  prometheus.Counter
	filterMisses prometheus.Counter
}

// NewMetrics registers arbit_draws_total, arbit_shrink_steps_total, and
// arbit_filter_misses_total against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		draws: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbit_draws_total",
			Help: "Total number of values drawn from an Arbitrary during property runs.",
		}),
		shrinkSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbit_shrink_steps_total",
			Help: "Total number of shrink candidates tried during property runs.",
		}),
		filterMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbit_filter_misses_total",
			Help: "Total number of draws rejected by a Filter predicate during property runs.",
		}),
	}
	reg.MustRegister(m.draws, m.shrinkSteps, m.filterMisses)
	return m
}

// CountFilterMiss increments the filter-miss counter. It is exported for
// callers that count their own rejections; nothing in this module calls
// it, and gen's Filter retry loop does not report into it.
func (m *Metrics) CountFilterMiss() {
	if m == nil {
		return
	}
	m.filterMisses.Inc()
}

func (m *Metrics) countDraw() {
	if m == nil {
		return
	}
	m.draws.Inc()
}

func (m *Metrics) countShrinkStep() {
	if m == nil {
		return
	}
	m.shrinkSteps.Inc()
}
