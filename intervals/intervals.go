// Package intervals computes confidence intervals for the sample mean of a
// distribution, based either on the Central Limit Theorem or on the Chebyshev
// inequality.
package intervals

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler is a distribution with known analytic moments whose sample mean can
// be drawn repeatedly. The randvar distributions implement it.
type Sampler interface {
	AnalyticMean() float64
	AnalyticStdDeviation() float64
	SampleMean(n int) float64
}

// MeanConfidenceInterval provides the bounds of a confidence interval for the
// mean of a sample of fixed size at a given confidence level.
type MeanConfidenceInterval interface {
	LowerBound(level float64) float64
	UpperBound(level float64) float64
}

// CLT computes confidence intervals from the Central Limit Theorem: the
// sample mean is asymptotically normal around the analytic mean with standard
// deviation sigma/sqrt(n).
type CLT struct {
	distribution Sampler
	sampleSize   int
}

// NewCLT constructs a CLT-based interval for sample means of the given size.
func NewCLT(distribution Sampler, sampleSize int) (*CLT, error) {
	if distribution == nil {
		return nil, fmt.Errorf("intervals: nil distribution")
	}
	if sampleSize < 1 {
		return nil, fmt.Errorf("intervals: sample size must be positive, got %d", sampleSize)
	}
	return &CLT{distribution: distribution, sampleSize: sampleSize}, nil
}

// halfWidth is z_{(1+level)/2} * sigma / sqrt(n).
func (c *CLT) halfWidth(level float64) float64 {
	standardNormal := distuv.Normal{Mu: 0, Sigma: 1}
	quantile := standardNormal.Quantile((1 + level) / 2)
	return c.distribution.AnalyticStdDeviation() / math.Sqrt(float64(c.sampleSize)) * quantile
}

// LowerBound returns the lower bound of the interval at the given level.
func (c *CLT) LowerBound(level float64) float64 {
	return c.distribution.AnalyticMean() - c.halfWidth(level)
}

// UpperBound returns the upper bound of the interval at the given level.
func (c *CLT) UpperBound(level float64) float64 {
	return c.distribution.AnalyticMean() + c.halfWidth(level)
}

// Chebyshev computes confidence intervals from the Chebyshev inequality:
// P(|mean - mu| >= k sigma/sqrt(n)) <= 1/k^2, so level 1 - 1/k^2 gives
// k = 1/sqrt(1-level). The bounds are valid for any distribution with finite
// variance, and wider than the CLT ones.
type Chebyshev struct {
	distribution Sampler
	sampleSize   int
}

// NewChebyshev constructs a Chebyshev-based interval for sample means of the
// given size.
func NewChebyshev(distribution Sampler, sampleSize int) (*Chebyshev, error) {
	if distribution == nil {
		return nil, fmt.Errorf("intervals: nil distribution")
	}
	if sampleSize < 1 {
		return nil, fmt.Errorf("intervals: sample size must be positive, got %d", sampleSize)
	}
	return &Chebyshev{distribution: distribution, sampleSize: sampleSize}, nil
}

func (c *Chebyshev) halfWidth(level float64) float64 {
	k := 1 / math.Sqrt(1-level)
	return c.distribution.AnalyticStdDeviation() / math.Sqrt(float64(c.sampleSize)) * k
}

// LowerBound returns the lower bound of the interval at the given level.
func (c *Chebyshev) LowerBound(level float64) float64 {
	return c.distribution.AnalyticMean() - c.halfWidth(level)
}

// UpperBound returns the upper bound of the interval at the given level.
func (c *Chebyshev) UpperBound(level float64) float64 {
	return c.distribution.AnalyticMean() + c.halfWidth(level)
}

// FrequencyInsideInterval draws numberOfComputations sample means of the
// given size from the distribution and returns the fraction falling strictly
// inside the interval at the given level.
func FrequencyInsideInterval(interval MeanConfidenceInterval, distribution Sampler, sampleSize, numberOfComputations int, level float64) (float64, error) {
	if interval == nil || distribution == nil {
		return 0, fmt.Errorf("intervals: nil interval or distribution")
	}
	if sampleSize < 1 || numberOfComputations < 1 {
		return 0, fmt.Errorf("intervals: sample size and number of computations must be positive, got %d and %d",
			sampleSize, numberOfComputations)
	}
	if level <= 0 || level >= 1 {
		return 0, fmt.Errorf("intervals: level must be in (0,1), got %g", level)
	}
	lower := interval.LowerBound(level)
	upper := interval.UpperBound(level)
	inside := 0
	for i := 0; i < numberOfComputations; i++ {
		mean := distribution.SampleMean(sampleSize)
		if mean > lower && mean < upper {
			inside++
		}
	}
	return float64(inside) / float64(numberOfComputations), nil
}
