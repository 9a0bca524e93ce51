package rebar

import "math"

// Rebar takeoff constants

const (
	// UnitWeightDivisor gives kg/m as d²/162 for d in mm.
	// Empirical approximation used on site, kept exact for schedule parity.
	UnitWeightDivisor = 162.0

	// MMPerM converts millimeters to meters
	MMPerM = 1000.0

	// Hooks per stirrup (one at each free end)
	StirrupHooks = 2

	// 90° bends deducted per rectangular stirrup
	StirrupBends = 4
)

// UnitWeight returns the mass per meter (kg/m) of a bar of diameter d (mm).
// The caller guarantees d > 0.
func UnitWeight(d float64) float64 {
	return (d * d) / UnitWeightDivisor
}

// TiesEffectiveSides returns the centerline sides of a rectangular stirrup
// from the clear sides, cover and bar diameter.
func TiesEffectiveSides(clearA, clearB, cover, d float64) (a, b float64) {
	a = clearA + 2*cover - d
	b = clearB + 2*cover - d
	return a, b
}

// TiesCuttingLength calculates the cutting length (mm) of a rectangular
// stirrup with two hooks.
//
//	L = 2(a + b) + 2·k_hook·d − 4·k_bend·d
//
// where a and b are the effective sides. Negative sides are not clamped;
// a non-positive result means invalid geometry and must be rejected by
// the caller.
func TiesCuttingLength(clearA, clearB, cover, d, hookMult, bendMult float64) float64 {
	a, b := TiesEffectiveSides(clearA, clearB, cover, d)
	base := 2 * (a + b)
	hooks := StirrupHooks * hookMult * d
	bendDeduction := StirrupBends * bendMult * d
	return base + hooks - bendDeduction
}

// BeamMainBarLength calculates the cutting length (mm) of a straight main
// bar developed into both supports.
//
//	L = span + 2(cover + Ld)
//
// d is accepted so all length formulas share one shape. It does not enter
// this result.
func BeamMainBarLength(clearSpan, cover, d, devLength float64) float64 {
	return clearSpan + 2*(cover+devLength)
}

// ColumnLongitudinalLength calculates the cutting length (mm) of a column
// vertical bar lapped once with the bar above.
//
//	L = h + 2·cover + lap
//
// d does not enter this result either.
func ColumnLongitudinalLength(clearHeight, cover, d, lapLength float64) float64 {
	return clearHeight + 2*cover + lapLength
}

// StirrupCount returns the number of stirrups along a member of the given
// height: one at the start plus one per full pitch, never less than one.
func StirrupCount(height, pitch float64) int {
	n := int(math.Floor(height/pitch)) + 1
	if n < 1 {
		return 1
	}
	return n
}
