// Package mathx holds small generic integer helpers shared by the solvers.
package mathx

import "golang.org/x/exp/constraints"

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Dist returns |a - b|.
func Dist[T constraints.Signed](a, b T) T {
	return Abs(a - b)
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
