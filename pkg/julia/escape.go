package julia

import "fmt"

// escapeRadius is the modulus past which the orbit of z² + c has provably
// diverged. Not configurable.
const escapeRadius = 4.0

// Evaluate returns the 0-based iteration at which the orbit of zx + i·zy
// under z ↦ z² + c first exceeds modulus 4, or threshold-1 if the orbit stays
// bounded for all threshold iterations. The result is always in
// [0, threshold-1].
func Evaluate(zx, zy, cx, cy float64, threshold int) (int, error) {
	if threshold < 1 {
		return 0, fmt.Errorf("%w: threshold must be at least 1, got %d", ErrInvalidArgument, threshold)
	}

	return escapeTime(complex(zx, zy), Quadratic{C: complex(cx, cy)}, threshold), nil
}

func escapeTime(z complex128, q Quadratic, threshold int) int {
	// Compare squared moduli to skip the square root per iteration.
	const bound = escapeRadius * escapeRadius

	for i := 0; i < threshold; i++ {
		z = q.Next(z)
		if real(z)*real(z)+imag(z)*imag(z) > bound {
			return i
		}
	}

	return threshold - 1
}
