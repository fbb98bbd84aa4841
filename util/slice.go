package util

// InsertSlice inserts element(s) at position pos and returns the result
func InsertSlice[T any](arr []T, pos int, element ...T) []T {
	return append(arr[:pos], append(element, arr[pos:]...)...)
}

// DeleteIndices returns arr without the elements whose positions appear in
// drop, preserving the survivors' relative order. arr itself is untouched;
// positions outside arr are ignored.
func DeleteIndices[T any](arr []T, drop map[int]struct{}) []T {
	if len(drop) == 0 {
		return arr
	}

	size := len(arr) - len(drop)
	if size < 0 {
		size = 0
	}

	kept := make([]T, 0, size)
	for i, element := range arr {
		if _, gone := drop[i]; gone {
			continue
		}
		kept = append(kept, element)
	}

	return kept
}
