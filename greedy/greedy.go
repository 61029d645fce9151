// File: greedy.go
// Role: the outer Greedy reducer loop, append_removal, and its Attack
// adapter.
package greedy

import (
	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/dag"
	"github.com/katalvlaran/drgattacks/sets"
)

// Reducer is the Attack implementation for the incident-path-count greedy
// reducer.
type Reducer struct {
	Params Params
}

// New builds a Reducer after validating params.
func New(params Params) (*Reducer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Reducer{Params: params}, nil
}

// Kind reports attack.KindGreedy.
func (r *Reducer) Kind() attack.Kind { return attack.KindGreedy }

// Run drives the outer loop: while target is unsatisfied, rank surviving
// nodes with count_paths and admit the top (spatially-deduplicated, when
// radius > 0) candidates via append_removal, until the target is met, the
// iteration cap (n iterations) is hit, or reset-driven
// saturation is detected.
func (r *Reducer) Run(g *dag.Graph, target attack.Target) (*sets.Exclusion, error) {
	n := g.Size()
	s := sets.NewExclusion(n)
	inRadius := sets.NewNodeSet(n)

	for iter := 0; iter < n; iter++ {
		depth := g.DepthExclude(s)
		if target.Satisfied(n, depth, s.Size()) {
			return s, nil
		}

		k := r.Params.K
		if target.Metric() == attack.MetricSize {
			k = r.Params.effectiveK(target.Bound(n))
		}

		before := s.Size()
		appendRemoval(g, s, inRadius, r.Params, k)
		if r.Params.Reset {
			inRadius.Reset()
		}
		if s.Size() == before {
			if r.Params.Reset {
				return s, ErrSaturated
			}
			return s, attack.ErrExhausted
		}
	}

	depth := g.DepthExclude(s)
	if target.Satisfied(n, depth, s.Size()) {
		return s, nil
	}
	if r.Params.Reset {
		return s, ErrSaturated
	}
	return s, attack.ErrExhausted
}

// appendRemoval implements append_removal: radius 0 admits the single
// highest-ranked candidate unconditionally; radius > 0 walks the ranked
// list, always skipping candidates already in-radius, admitting the rest
// until a stop condition is met. The two radius>0 schemes differ only in
// that stop condition: the default walks until k candidates have been
// inserted (in-radius candidates are passed over for free); IterTopK walks
// at most k candidates total, inserted or skipped, so a heavily clustered
// ranking can yield fewer than k insertions in one call. Either way, if the
// walk inserted nothing it falls back to admitting the single top
// candidate regardless of in-radius membership, so progress never stalls.
func appendRemoval(g *dag.Graph, s *sets.Exclusion, inRadius *sets.NodeSet, params Params, k int) {
	ranked := countPaths(g, s, params)
	if len(ranked) == 0 {
		return
	}

	if params.Radius == 0 {
		s.Insert(ranked[0].Node)
		return
	}

	inserted, skipped := 0, 0
	for _, cand := range ranked {
		if inRadius.Contains(cand.Node) {
			skipped++
		} else {
			s.Insert(cand.Node)
			radiusUpdate(g, cand.Node, params.Radius, inRadius)
			inserted++
		}
		if params.IterTopK {
			if inserted+skipped >= k {
				break
			}
		} else if inserted >= k {
			break
		}
	}
	if inserted == 0 {
		s.Insert(ranked[0].Node)
		radiusUpdate(g, ranked[0].Node, params.Radius, inRadius)
	}
}
