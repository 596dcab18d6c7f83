package utils

import (
	"fmt"
	"math"
)

// RoundTo rounds a float to the specified decimal places.
func RoundTo(val float64, decimals uint32) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}

// BuildHistogram counts the given values into numberOfBins equal bins between
// left and right. The returned slice has numberOfBins+2 entries: the first
// collects values below left, the last collects values at or above right.
func BuildHistogram(values []float64, left, right float64, numberOfBins int) ([]int, error) {
	if numberOfBins < 1 {
		return nil, fmt.Errorf("utils: number of bins must be positive, got %d", numberOfBins)
	}
	if right <= left {
		return nil, fmt.Errorf("utils: histogram interval [%g, %g) is empty", left, right)
	}
	histogram := make([]int, numberOfBins+2)
	binSize := (right - left) / float64(numberOfBins)
	for _, v := range values {
		switch {
		case v < left:
			histogram[0]++
		case v >= right:
			histogram[numberOfBins+1]++
		default:
			histogram[1+int((v-left)/binSize)]++
		}
	}
	return histogram, nil
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	values := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	return values
}
