package match

import (
	"strings"

	"github.com/anchore/distroglyph/distroglyph/glyph"
	"github.com/anchore/distroglyph/distroglyph/glypherr"
	"github.com/anchore/distroglyph/internal"
)

// Result is the outcome of a successful match.
type Result struct {
	Entry glyph.Entry
	Rule  Rule
}

// Normalize returns the form of a raw distro name used for matching: case folded with surrounding whitespace
// trimmed. A name that is blank after trimming never matches.
func Normalize(name string) string {
	return strings.TrimSpace(glyph.FoldKey(name))
}

// Match maps a raw distro name onto a table entry. Rules are tried in order and the first rule with any candidate
// wins; within a rule the highest score wins, then the longest key, then the lexicographically smallest key.
func Match(t *glyph.Table, rawName string) (Result, error) {
	name := Normalize(rawName)
	if name == "" {
		return Result{}, glypherr.NewNoMatch(rawName, internal.FontLogosURL)
	}

	keys := t.Keys()
	for _, rule := range rules {
		if key, ok := best(rule, keys, name); ok {
			e, _ := t.Lookup(key)
			return Result{Entry: e, Rule: rule}, nil
		}
	}

	return Result{}, glypherr.NewNoMatch(rawName, internal.FontLogosURL)
}

// Candidates returns every key matching the name under the given rule, best first. It is meant for diagnostics.
func Candidates(t *glyph.Table, rule Rule, rawName string) []string {
	name := Normalize(rawName)
	if name == "" {
		return nil
	}
	var scored []candidate
	for _, key := range t.Keys() {
		if s := rule.score(key, name); s > 0 {
			scored = append(scored, candidate{key: key, score: s})
		}
	}
	sortCandidates(scored)

	keys := make([]string, 0, len(scored))
	for _, c := range scored {
		keys = append(keys, c.key)
	}
	return keys
}

func best(rule Rule, keys []string, name string) (string, bool) {
	var top candidate
	for _, key := range keys {
		s := rule.score(key, name)
		if s == 0 {
			continue
		}
		c := candidate{key: key, score: s}
		if top.key == "" || c.less(top) {
			top = c
		}
	}
	return top.key, top.key != ""
}
