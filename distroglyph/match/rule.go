package match

import "strings"

// Rule identifies which matching tier produced a result. Rules are tried in declaration order.
type Rule int

const (
	// Substring matches keys contained in the name (e.g. "arch" in "arch linux").
	Substring Rule = iota + 1
	// ReverseSubstring matches keys containing the name (e.g. "pop" in "pop!_os").
	ReverseSubstring
	// TokenOverlap matches keys where any whitespace-delimited part of the key is contained in the name
	// (e.g. "endeavour" from "endeavour os" in "endeavouros").
	TokenOverlap
)

var rules = []Rule{Substring, ReverseSubstring, TokenOverlap}

func (r Rule) String() string {
	switch r {
	case Substring:
		return "substring"
	case ReverseSubstring:
		return "reverse-substring"
	case TokenOverlap:
		return "token-overlap"
	default:
		return "unknown"
	}
}

// score rates how well key matches name under the rule; zero means no match. For the token rule the score is the
// total length of the key parts found in the name, so "endeavour os" outranks "elementary os" for "endeavouros".
func (r Rule) score(key, name string) int {
	switch r {
	case Substring:
		if strings.Contains(name, key) {
			return len(key)
		}
	case ReverseSubstring:
		if strings.Contains(key, name) {
			return len(key)
		}
	case TokenOverlap:
		total := 0
		for _, part := range strings.Fields(key) {
			if strings.Contains(name, part) {
				total += len(part)
			}
		}
		return total
	}
	return 0
}
