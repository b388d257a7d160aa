package validator

// IsUniqueNo reports whether candidate is unused by rows once the row being
// updated is set aside. selfID is 0 on create. Only the first row matching
// both the candidate number and selfID is removed from the comparison set.
func IsUniqueNo[T any](rows []T, candidate string, selfID int, no func(T) string, id func(T) int) bool {
	skipped := selfID == 0
	for _, row := range rows {
		if no(row) != candidate {
			continue
		}
		if !skipped && id(row) == selfID {
			skipped = true
			continue
		}
		return false
	}
	return true
}
