// Package floatutils provides utilities for working with floats
package floatutils

import "gonum.org/v1/gonum/stat"

// Prod computes the product of a slice of integers. The product of an
// empty slice is 1.
func Prod(ints []int) int {
	prod := 1
	for _, value := range ints {
		prod *= value
	}
	return prod
}

// Variance computes the population variance of values. Note that
// stat.Variance computes the unbiased sample variance, which divides
// by n-1 rather than n.
func Variance(values []float64) float64 {
	mean := stat.Mean(values, nil)

	var sum float64
	for _, value := range values {
		deviation := value - mean
		sum += deviation * deviation
	}
	return sum / float64(len(values))
}
