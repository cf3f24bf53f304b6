package pagination

// CalculateTotalPages returns the number of pages needed for total items.
// There is always at least one page so page 1 is valid even when empty.
func CalculateTotalPages(total int64, size int) int {
	if total == 0 || size <= 0 {
		return 1
	}
	return int((total + int64(size) - 1) / int64(size))
}
