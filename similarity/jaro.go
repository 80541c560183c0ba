// Package similarity implements the Jaro and Jaro-Winkler string similarity used to
// suggest a flag name when an unknown one is given.
package similarity

// DefaultThreshold is the score a candidate must exceed to be suggested
const DefaultThreshold = 0.8

// prefixScale is the Winkler boost per character of common prefix
const prefixScale = 0.1

// Jaro returns the Jaro similarity of a and b in [0, 1], comparing runes
func Jaro(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	switch {
	case la == 0 && lb == 0:
		return 1
	case la == 0 || lb == 0:
		return 0
	case la == 1 && lb == 1:
		if ra[0] == rb[0] {
			return 1
		}
		return 0
	}

	window := max(la, lb)/2 - 1
	if window < 0 {
		window = 0
	}

	matched := make([]bool, lb)
	matches, transpositions := 0, 0
	prev := -1
	for i := 0; i < la; i++ {
		lo := max(0, i-window)
		hi := min(lb, i+window+1)
		for j := lo; j < hi; j++ {
			if matched[j] || ra[i] != rb[j] {
				continue
			}
			matched[j] = true
			matches++
			if j < prev {
				transpositions++
			}
			prev = j
			break
		}
	}

	if matches == 0 {
		return 0
	}

	m := float64(matches)

	return (m/float64(la) + m/float64(lb) + (m-float64(transpositions))/m) / 3
}

// JaroWinkler boosts the Jaro similarity of a and b by their common prefix, measured up
// to the first mismatching rune. The result is capped at 1.
func JaroWinkler(a, b string) float64 {
	j := Jaro(a, b)

	ra, rb := []rune(a), []rune(b)
	prefix := 0
	for prefix < len(ra) && prefix < len(rb) && ra[prefix] == rb[prefix] {
		prefix++
	}

	// the conversion rounds the boost on its own, keeping scores near the threshold
	// identical on platforms which fuse multiply-add
	boost := float64(float64(prefix) * prefixScale * (1 - j))

	return min(1, j+boost)
}

// Closest returns the candidate with the highest Jaro-Winkler similarity to target,
// provided it is strictly above threshold. Ties keep the earliest candidate.
func Closest(target string, candidates []string, threshold float64) (string, bool) {
	best, bestScore := "", threshold
	found := false
	for _, c := range candidates {
		if score := JaroWinkler(target, c); score > bestScore {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}
