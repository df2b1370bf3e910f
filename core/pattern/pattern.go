// core/pattern/pattern.go
package pattern

import "fmt"

// Reserved slot names with pipeline-level meaning.
const (
	// WordSlot is bound per base word by the engine.
	WordSlot = "custom_word"
	// SeparatorSlot holds the separator pool. Each occurrence in a template
	// draws its value independently, like any other slot.
	SeparatorSlot = "separators"
)

// Pools maps slot names to their ordered value lists.
type Pools map[string][]string

// UnknownSlotError reports a template placeholder with no backing pool.
type UnknownSlotError struct {
	Slot string
}

func (e *UnknownSlotError) Error() string {
	return fmt.Sprintf("pattern: unknown placeholder %q", e.Slot)
}

// segment is one literal run or one slot occurrence of a parsed template.
type segment struct {
	text   string // literal text, or the slot name
	isSlot bool
}

// parse splits template into literal and slot segments. A slot is a brace
// pair with no nested brace; a '{' without a closing '}' is literal text.
func parse(template string) []segment {
	var segs []segment
	lit := 0
	for i := 0; i < len(template); {
		if template[i] != '{' {
			i++
			continue
		}
		end := -1
		for j := i + 1; j < len(template); j++ {
			if template[j] == '{' {
				break
			}
			if template[j] == '}' {
				end = j
				break
			}
		}
		if end < 0 {
			i++
			continue
		}
		if lit < i {
			segs = append(segs, segment{text: template[lit:i]})
		}
		segs = append(segs, segment{text: template[i+1 : end], isSlot: true})
		i = end + 1
		lit = i
	}
	if lit < len(template) {
		segs = append(segs, segment{text: template[lit:]})
	}
	return segs
}

// Slots returns the placeholder names of template in occurrence order,
// including repeats.
func Slots(template string) []string {
	var names []string
	for _, s := range parse(template) {
		if s.isSlot {
			names = append(names, s.text)
		}
	}
	return names
}

// Expand substitutes every placeholder combination into template and returns
// the results in generation order: the Cartesian product over all placeholder
// occurrences, with the LAST occurrence varying fastest (odometer order).
// Repeated occurrences of one slot draw their values independently, including
// occurrences of SeparatorSlot. No deduplication is performed here; the
// pipeline dedups across templates.
//
// A placeholder whose slot is missing from pools fails with
// *UnknownSlotError. Any empty pool yields zero results.
func Expand(template string, pools Pools) ([]string, error) {
	segs := parse(template)

	total := 1
	slotPools := make([][]string, 0, len(segs))
	for _, s := range segs {
		if !s.isSlot {
			continue
		}
		vals, ok := pools[s.text]
		if !ok {
			return nil, &UnknownSlotError{Slot: s.text}
		}
		slotPools = append(slotPools, vals)
		total *= len(vals)
	}
	if total == 0 {
		return nil, nil
	}

	idx := make([]int, len(slotPools))
	out := make([]string, 0, total)
	for {
		out = append(out, render(segs, slotPools, idx))

		// Odometer increment, rightmost position first.
		pos := len(idx) - 1
		for ; pos >= 0; pos-- {
			idx[pos]++
			if idx[pos] < len(slotPools[pos]) {
				break
			}
			idx[pos] = 0
		}
		if pos < 0 {
			return out, nil
		}
	}
}

func render(segs []segment, slotPools [][]string, idx []int) string {
	n := 0
	slot := 0
	for _, s := range segs {
		if s.isSlot {
			n += len(slotPools[slot][idx[slot]])
			slot++
		} else {
			n += len(s.text)
		}
	}
	b := make([]byte, 0, n)
	slot = 0
	for _, s := range segs {
		if s.isSlot {
			b = append(b, slotPools[slot][idx[slot]]...)
			slot++
		} else {
			b = append(b, s.text...)
		}
	}
	return string(b)
}
