package gen

import "math"

// Float32 generates float32 values in [lo, hi] by drawing and shrinking a
// float64 internally (so it reuses the exact same target/bisection/
// Nextafter heuristic) and narrowing on the way out.
func Float32(lo, hi float32, allowSpecials bool) Generator[float32] {
	base := Float64(float64(lo), float64(hi), allowSpecials)
	return Map(base, func(v float64) float32 {
		if math.IsNaN(v) {
			return float32(math.NaN())
		}
		if math.IsInf(v, 1) {
			return float32(math.Inf(1))
		}
		if math.IsInf(v, -1) {
			return float32(math.Inf(-1))
		}
		return float32(v)
	})
}
