package match

import "sort"

type candidate struct {
	key   string
	score int
}

// less reports whether c ranks ahead of o.
func (c candidate) less(o candidate) bool {
	if c.score != o.score {
		return c.score > o.score
	}
	if len(c.key) != len(o.key) {
		return len(c.key) > len(o.key)
	}
	return c.key < o.key
}

func sortCandidates(cs []candidate) {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].less(cs[j])
	})
}
