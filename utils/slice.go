package utils

// ContainsUint reports whether v is present in slice.
func ContainsUint(slice []uint, v uint) bool {
	for _, entry := range slice {
		if entry == v {
			return true
		}
	}
	return false
}

// RemoveUint returns slice without any occurrence of v, preserving order.
func RemoveUint(slice []uint, v uint) []uint {
	out := make([]uint, 0, len(slice))
	for _, entry := range slice {
		if entry != v {
			out = append(out, entry)
		}
	}
	return out
}
