package utils

import "golang.org/x/exp/constraints"

// Sign returns -1, 0 or 1 following the sign of x.
func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
