package dropdown

// NextIndex returns the index after current, wrapping from the last item
// back to 0. Defined for total >= 1; callers guard empty collections.
func NextIndex(total, current int) int {
	if current >= total-1 {
		return 0
	}
	return current + 1
}

// PrevIndex returns the index before current, wrapping from 0 to the last
// item. Defined for total >= 1; callers guard empty collections.
func PrevIndex(total, current int) int {
	if current <= 0 {
		return total - 1
	}
	return current - 1
}
