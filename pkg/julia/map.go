package julia

import "math"

// Quadratic is the map z ↦ z² + c.
type Quadratic struct {
	C complex128
}

func (q Quadratic) Next(z complex128) complex128 {
	return z*z + q.C
}

// OnCircle returns the quadratic map whose constant lies at angle a on the
// circle of radius r, i.e. c = r·e^{ia}.
func OnCircle(r, a float64) Quadratic {
	return Quadratic{C: complex(r*math.Cos(a), r*math.Sin(a))}
}
