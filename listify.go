package stepseries

// Listify normalizes a single-or-slice input to a slice. A []T passes
// through unchanged and a T is wrapped in a one-element slice; anything
// else, including nil, yields nil.
func Listify[T any](v any) []T {
	switch x := v.(type) {
	case []T:
		return x
	case T:
		return []T{x}
	default:
		return nil
	}
}
