package partial

// selectKeys reduces pairs to at most limit entries. The pipeline stops as
// soon as the remaining count fits:
//
//  1. hidden keys are removed unconditionally, even when also precious
//  2. worthless keys are removed one at a time
//  3. any remaining unprotected key is removed, latest first
//
// Every precious key survives unless step 1 hid it. limit is the effective
// limit; callers account for precious keys before calling. A negative limit
// only applies step 1.
func selectKeys(pairs []Pair, limit int, precious, worthless, hidden map[string]bool) []Pair {
	if len(hidden) > 0 {
		kept := make([]Pair, 0, len(pairs))
		for _, p := range pairs {
			if !hidden[p.Key] {
				kept = append(kept, p)
			}
		}
		pairs = kept
	}

	if limit < 0 || len(pairs) <= limit {
		return pairs
	}

	if len(worthless) > 0 {
		toDrop := len(pairs) - limit
		kept := make([]Pair, 0, len(pairs))
		for _, p := range pairs {
			if toDrop > 0 && worthless[p.Key] {
				toDrop--
				continue
			}
			kept = append(kept, p)
		}
		pairs = kept
	}

	if len(pairs) <= limit {
		return pairs
	}

	// Drop unprotected keys from the end until the mapping fits.
	over := len(pairs) - limit
	drop := make([]bool, len(pairs))
	for i := len(pairs) - 1; i >= 0 && over > 0; i-- {
		if !precious[pairs[i].Key] {
			drop[i] = true
			over--
		}
	}
	kept := make([]Pair, 0, limit)
	for i, p := range pairs {
		if !drop[i] {
			kept = append(kept, p)
		}
	}
	return kept
}
