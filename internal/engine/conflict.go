package engine

// HasConflict reports whether any change description in a is present, by
// exact string equality, in b. The comparison is over whole change
// descriptions, not the file names inside them; nothing downstream ever
// decomposes a description back into files.
func HasConflict(changeSetA, changeSetB []string) bool {
	if len(changeSetA) == 0 || len(changeSetB) == 0 {
		return false
	}

	other := make(map[string]struct{}, len(changeSetB))
	for _, change := range changeSetB {
		other[change] = struct{}{}
	}

	for _, change := range changeSetA {
		if _, ok := other[change]; ok {
			return true
		}
	}
	return false
}
