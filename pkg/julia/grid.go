package julia

// Linspace returns n evenly spaced values from start to end, inclusive of
// both endpoints.
func Linspace(start, end float64, n int) []float64 {
	values := make([]float64, n)
	if n == 1 {
		values[0] = start
		return values
	}

	step := (end - start) / float64(n-1)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	// Land exactly on the endpoint regardless of rounding in step.
	values[n-1] = end

	return values
}
