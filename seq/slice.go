package seq

// Slice is a Go slice viewed as a sequence of its elements. Remainders share
// the backing array with the original slice; callers must not write to it
// while a parse is in progress.
type Slice[T any] []T

// SplitFirst returns the first element and the rest of the slice.
func (s Slice[T]) SplitFirst() (T, Slice[T], bool) {
	if len(s) == 0 {
		var none T
		return none, s, false
	}
	return s[0], s[1:], true
}
