// core/leet/leet.go
package leet

import (
	"fmt"

	"passgen-core/orderedset"
)

// Table maps a lowercase ASCII character to its ordered replacement strings.
// Replacements may be longer than one character; matching against a word is
// case-insensitive.
type Table map[byte][]string

// Closure safety bounds used when Limits fields are zero. Pathological tables
// (a replacement that reintroduces a substitutable character) would otherwise
// grow without bound.
const (
	DefaultMaxVariants = 100_000
	DefaultMaxRounds   = 64
)

// Limits bounds Closure growth. Zero fields fall back to the package defaults.
type Limits struct {
	MaxVariants int
	MaxRounds   int
}

func (l Limits) maxVariants() int {
	if l.MaxVariants > 0 {
		return l.MaxVariants
	}
	return DefaultMaxVariants
}

func (l Limits) maxRounds() int {
	if l.MaxRounds > 0 {
		return l.MaxRounds
	}
	return DefaultMaxRounds
}

// OverflowError reports a substitution closure that exceeded its safety bound.
type OverflowError struct {
	Word     string
	Variants int
	Rounds   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("leet: closure of %q exceeded safety bound: %d variants after %d rounds",
		e.Word, e.Variants, e.Rounds)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// eachVariant emits every single-position substitution of w, scanning
// positions left to right and replacements in table order.
func eachVariant(w string, t Table, emit func(string)) {
	for i := 0; i < len(w); i++ {
		subs, ok := t[lower(w[i])]
		if !ok {
			continue
		}
		for _, sub := range subs {
			emit(w[:i] + sub + w[i+1:])
		}
	}
}

// OneStep returns w followed by every variant with exactly one position
// substituted, deduplicated in emission order.
func OneStep(w string, t Table) []string {
	set := orderedset.New()
	set.Add(w)
	eachVariant(w, t, func(v string) { set.Add(v) })
	return set.Values()
}

// Closure returns the fixed point of OneStep over w: the original word first,
// then new variants breadth-first, round by round, in discovery order.
// Substitutions introduced by earlier rounds are themselves substitutable.
//
// Termination is only guaranteed for tables whose replacements do not feed
// unbounded re-substitution, so growth is capped by lim; exceeding a cap
// fails with *OverflowError instead of looping.
func Closure(w string, t Table, lim Limits) ([]string, error) {
	maxV, maxR := lim.maxVariants(), lim.maxRounds()

	seen := orderedset.New()
	seen.Add(w)
	frontier := []string{w}

	for round := 0; len(frontier) > 0; round++ {
		if round >= maxR {
			return nil, &OverflowError{Word: w, Variants: seen.Len(), Rounds: round}
		}
		var next []string
		for _, cur := range frontier {
			overflow := false
			eachVariant(cur, t, func(v string) {
				if seen.Add(v) {
					next = append(next, v)
					if seen.Len() > maxV {
						overflow = true
					}
				}
			})
			if overflow {
				return nil, &OverflowError{Word: w, Variants: seen.Len(), Rounds: round + 1}
			}
		}
		frontier = next
	}
	return seen.Values(), nil
}
