package ops

import "golang.org/x/exp/constraints"

type NumericTypes interface {
	constraints.Integer | constraints.Float
}

// ScaleToFloat64 multiplies every element by factor into out.
// out must be at least len(arr).
func ScaleToFloat64[T NumericTypes](arr []T, factor float64, out []float64) {
	n := len(arr)
	i := 0

	for ; i+3 < n; i += 4 {
		out[i+0] = float64(arr[i+0]) * factor
		out[i+1] = float64(arr[i+1]) * factor
		out[i+2] = float64(arr[i+2]) * factor
		out[i+3] = float64(arr[i+3]) * factor
	}

	// Tail element
	for ; i < n; i++ {
		out[i] = float64(arr[i]) * factor
	}
}

// ToFloat64 converts a numeric slice to float64, one to one.
func ToFloat64[T NumericTypes](arr []T) []float64 {
	out := make([]float64, len(arr))
	ScaleToFloat64(arr, 1, out)
	return out
}
