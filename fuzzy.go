package inquire

import "strings"

// fuzzyScore scores how well input matches candidate. Zero means no
// match; exact, prefix, and substring matches rank above scattered
// character matches. Matching is case-insensitive.
func fuzzyScore(input, candidate string) int {
	if input == "" {
		return 1
	}
	if candidate == "" {
		return 0
	}

	in := strings.ToLower(input)
	cand := strings.ToLower(candidate)

	if in == cand {
		return 1000
	}
	if strings.HasPrefix(cand, in) {
		return 800 + len(in)*10
	}
	if strings.Contains(cand, in) {
		return 500 + len(in)*5
	}

	// Character-by-character fuzzy matching
	score := 0
	idx := 0
	for _, r := range in {
		for idx < len(cand) {
			if rune(cand[idx]) == r {
				score += 10
				idx++
				break
			}
			idx++
		}
		if idx >= len(cand) {
			break
		}
	}

	// Require every input character to have matched
	if score < len(in)*10 {
		return 0
	}
	return score
}
