package quasirandom

import (
	"math"
	"sort"
)

// Discrepancy returns the discrepancy of a one-dimensional point set in
// [0,1]: the largest absolute difference between the fraction of points in an
// interval [a,b] (or (a,b)) with endpoints in the set (or 0 and 1) and the
// interval length. The input is not assumed sorted and is not modified.
func Discrepancy(points []float64) float64 {
	set := sortedCopy(points)
	n := len(set)

	// Intervals anchored at zero first.
	discrepancy := starDiscrepancySorted(set)

	// Then intervals [set[position], b] and (set[position], b) for every b in
	// the set larger than set[position]. The last point only produces empty
	// intervals, so it is skipped as a left end.
	for position := 0; position < n-1; position++ {
		discrepancy = math.Max(discrepancy, maximumFromLeftEnd(set, position))
	}
	return discrepancy
}

// StarDiscrepancy returns the star discrepancy: the discrepancy restricted to
// intervals anchored at zero. The input is not assumed sorted and is not modified.
func StarDiscrepancy(points []float64) float64 {
	return starDiscrepancySorted(sortedCopy(points))
}

func sortedCopy(points []float64) []float64 {
	set := make([]float64, len(points))
	copy(set, points)
	sort.Float64s(set)
	return set
}

// starDiscrepancySorted computes max over b in the set of
// max(b - |{x in (0,b)}|/n, |{x in [0,b]}|/n - b) on an already sorted set.
func starDiscrepancySorted(set []float64) float64 {
	n := float64(len(set))
	starDiscrepancy := 0.0
	// If the first point is zero the first interval is degenerate: starting
	// the closed count at zero makes that check contribute nothing.
	pointsInClosed := 0.0
	if set[0] != 0 {
		pointsInClosed = 1
	}
	for _, b := range set {
		candidate := math.Max(b-(pointsInClosed-1)/n, pointsInClosed/n-b)
		starDiscrepancy = math.Max(starDiscrepancy, candidate)
		pointsInClosed++
	}
	// The interval ending at 1 never improves on the ones above.
	return starDiscrepancy
}

// maximumFromLeftEnd computes the largest candidate over intervals whose left
// end is set[position], letting the right end run through the larger points
// of the set and finally through 1. Walking the sorted set lets the open and
// closed interval counts grow by one per step.
func maximumFromLeftEnd(set []float64, position int) float64 {
	n := float64(len(set))
	pointsInOpen := 0.0
	pointsInClosed := 2.0
	maxValue := 0.0
	for i := 1; i <= len(set)-position-1; i++ {
		length := set[position+i] - set[position]
		candidate := math.Max(length-pointsInOpen/n, pointsInClosed/n-length)
		maxValue = math.Max(maxValue, candidate)
		pointsInOpen++
		pointsInClosed++
	}
	if set[len(set)-1] != 1 {
		// Right end 1: only the open-interval side can grow, since a closed
		// interval of bigger length with the same points only loses.
		length := 1 - set[position]
		maxValue = math.Max(maxValue, length-pointsInOpen/n)
	}
	return maxValue
}
