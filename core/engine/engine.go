// core/engine/engine.go
package engine

import (
	"context"

	"passgen-core/casing"
	"passgen-core/leet"
	"passgen-core/orderedset"
	"passgen-core/pattern"
	"passgen-core/policy"
)

// TemplateGroup is a named, ordered batch of pattern templates. Groups are
// applied in slice order; callers wanting reproducible runs must pass a
// stable order.
type TemplateGroup struct {
	Name      string
	Templates []string
}

// Options configures one generation run.
type Options struct {
	CaseForms casing.Forms

	ApplyLeet  bool
	LeetTable  leet.Table
	LeetLimits leet.Limits

	MinLen int
	MaxLen int // 0 = unbounded

	EnforcePolicy bool
	Policy        []policy.Requirement
}

// Engine expands base words into password candidates through the staged
// pipeline: template expansion, case forms, optional leet closure, then
// length and policy filtering. An Engine is immutable and safe for
// concurrent use; each call is a pure function of its inputs.
type Engine struct {
	groups []TemplateGroup
	pools  pattern.Pools
	opt    Options
}

func New(groups []TemplateGroup, pools pattern.Pools, opt Options) *Engine {
	return &Engine{groups: groups, pools: pools, opt: opt}
}

// ForEachCandidate runs the pipeline for one base word and streams surviving
// candidates to visit in first-produced order. The word is bound to the
// reserved pattern.WordSlot pool for the duration of the call.
//
// Dedup happens between stages within this word's run. When leet closures of
// two distinct cased strings overlap, the shared variant is visited once per
// closure; batch callers dedup across visits (and across words).
//
// Errors propagate immediately: *pattern.UnknownSlotError fails fast on the
// first invalid template, *leet.OverflowError aborts a runaway closure, and
// visit errors cancel the run.
func (e *Engine) ForEachCandidate(ctx context.Context, word string, visit func(string) error) error {
	pools := e.wordPools(word)

	// Stage 1: expand every template of every group, first-seen order.
	raw := orderedset.New()
	for _, g := range e.groups {
		for _, tpl := range g.Templates {
			expanded, err := pattern.Expand(tpl, pools)
			if err != nil {
				return err
			}
			for _, s := range expanded {
				raw.Add(s)
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	// Stage 2: case forms across all stage-1 survivors.
	cased := orderedset.New()
	for _, s := range raw.Values() {
		for _, v := range casing.Apply(s, e.opt.CaseForms) {
			cased.Add(v)
		}
	}

	// Stages 3+4: per-candidate closure (optional), then filters, streamed.
	for _, s := range cased.Values() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !e.opt.ApplyLeet {
			if err := e.emit(s, visit); err != nil {
				return err
			}
			continue
		}
		variants, err := leet.Closure(s, e.opt.LeetTable, e.opt.LeetLimits)
		if err != nil {
			return err
		}
		for _, v := range variants {
			if err := e.emit(v, visit); err != nil {
				return err
			}
		}
	}
	return nil
}

// Generate runs ForEachCandidate over words in order and returns the final
// candidate sequence, deduplicated across words with first-seen order
// preserved.
func (e *Engine) Generate(ctx context.Context, words []string) ([]string, error) {
	out := orderedset.New()
	for _, w := range words {
		err := e.ForEachCandidate(ctx, w, func(s string) error {
			out.Add(s)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out.Values(), nil
}

// emit applies the stage-4 length and policy filters.
func (e *Engine) emit(s string, visit func(string) error) error {
	if len(s) < e.opt.MinLen {
		return nil
	}
	if e.opt.MaxLen > 0 && len(s) > e.opt.MaxLen {
		return nil
	}
	if e.opt.EnforcePolicy && !policy.Satisfies(s, e.opt.Policy) {
		return nil
	}
	return visit(s)
}

// wordPools copies the configured pools with word bound to the reserved slot.
func (e *Engine) wordPools(word string) pattern.Pools {
	p := make(pattern.Pools, len(e.pools)+1)
	for k, v := range e.pools {
		p[k] = v
	}
	p[pattern.WordSlot] = []string{word}
	return p
}
