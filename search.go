package main

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrMalformedInput reports a core list that is not three cores per group.
var ErrMalformedInput = errors.New("malformed input")

// ── Optimizer ───────────────────────────────────────────────────────

// Optimizer places gems into cores for one request. It holds no state
// between calls to Optimize beyond its read-only inputs.
type Optimizer struct {
	input   *Input
	profile *RoleProfile
	cfg     SearchConfig
	log     *zap.Logger
}

// NewOptimizer creates an optimizer for the given input and role profile.
// A nil logger discards all output.
func NewOptimizer(input *Input, profile *RoleProfile, cfg SearchConfig, log *zap.Logger) *Optimizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Optimizer{input: input, profile: profile, cfg: cfg, log: log}
}

// Optimize places gems with the default search configuration.
func Optimize(cores []Core, gems []Gem, profile *RoleProfile) (*Result, error) {
	in := &Input{Role: profile.Role, Cores: cores, Gems: gems}
	return NewOptimizer(in, profile, DefaultConfig().Search, nil).Optimize()
}

// ── Group partitioning ──────────────────────────────────────────────

// group is one trio of cores and the gems that may go into them.
// coreIdx maps back to positions in Input.Cores.
type group struct {
	id      Group
	cores   [3]Core
	coreIdx [3]int
	pool    []Gem
}

func (o *Optimizer) partition() ([2]group, error) {
	var groups [2]group
	groups[0].id = GroupOrder
	groups[1].id = GroupChaos

	cores := o.input.Cores
	if len(cores) != 6 {
		return groups, fmt.Errorf("%w: expected 6 cores, got %d", ErrMalformedInput, len(cores))
	}
	var counts [2]int
	for i, c := range cores {
		gi := groupIndex(c.Group)
		if gi < 0 {
			return groups, fmt.Errorf("%w: core %d has no group", ErrMalformedInput, i)
		}
		if counts[gi] == 3 {
			return groups, fmt.Errorf("%w: more than 3 %s cores", ErrMalformedInput, c.Group)
		}
		groups[gi].cores[counts[gi]] = c
		groups[gi].coreIdx[counts[gi]] = i
		counts[gi]++
	}

	// gems with an unknown group fit nowhere and are dropped here
	for _, g := range o.input.Gems {
		if gi := groupIndex(g.Group); gi >= 0 {
			groups[gi].pool = append(groups[gi].pool, g)
		}
	}
	return groups, nil
}

func groupIndex(g Group) int {
	switch g {
	case GroupOrder:
		return 0
	case GroupChaos:
		return 1
	}
	return -1
}

// ── Combination search ──────────────────────────────────────────────

// tripleKey is the lexicographic objective of a conflict-free triple.
type tripleKey struct {
	rank3, rank2, rank1 int
	mult                float64
}

func rankCounts(ranks ...int) (r3, r2, r1 int) {
	for _, r := range ranks {
		if r >= 3 {
			r3++
		}
		if r >= 2 {
			r2++
		}
		if r >= 1 {
			r1++
		}
	}
	return
}

// ranksBelow reports whether the rank part of k is strictly worse than best.
func (k tripleKey) ranksBelow(best tripleKey) bool {
	if k.rank3 != best.rank3 {
		return k.rank3 < best.rank3
	}
	if k.rank2 != best.rank2 {
		return k.rank2 < best.rank2
	}
	return k.rank1 < best.rank1
}

func (k tripleKey) beats(best tripleKey) bool {
	if k.ranksBelow(best) {
		return false
	}
	if best.ranksBelow(k) {
		return true
	}
	return k.mult > best.mult
}

func boundKey(ranks ...int) tripleKey {
	var k tripleKey
	k.rank3, k.rank2, k.rank1 = rankCounts(ranks...)
	return k
}

// evalTriple scores a triple: core bonuses multiply, stat levels are summed
// across the three cores before the single stat multiplier is applied.
func evalTriple(a, b, c *Candidate, profile *RoleProfile) tripleKey {
	k := boundKey(a.Rank, b.Rank, c.Rank)
	levels := addLevels(addLevels(a.Levels, b.Levels), c.Levels)
	k.mult = (1 + a.Bonus/100) * (1 + b.Bonus/100) * (1 + c.Bonus/100) * profile.StatMultiplier(levels)
	return k
}

// searchTriple walks the Cartesian product of the three candidate lists
// in order and returns the indices of the best conflict-free triple. The
// first triple reaching the maximum wins. Lists must be sorted by rank
// descending; branches whose rank bound is already worse than the
// incumbent are cut. ok is false only when no conflict-free triple exists.
func searchTriple(lists [3][]Candidate, profile *RoleProfile) (best [3]int, ok bool) {
	l0, l1, l2 := lists[0], lists[1], lists[2]
	if len(l0) == 0 || len(l1) == 0 || len(l2) == 0 {
		return best, false
	}
	top1, top2 := l1[0].Rank, l2[0].Rank

	var bestKey tripleKey
	for i := range l0 {
		a := &l0[i]
		if ok && boundKey(a.Rank, top1, top2).ranksBelow(bestKey) {
			break
		}
		for j := range l1 {
			b := &l1[j]
			if ok && boundKey(a.Rank, b.Rank, top2).ranksBelow(bestKey) {
				break
			}
			if a.mask.intersects(b.mask) {
				continue
			}
			for k := range l2 {
				c := &l2[k]
				if ok && boundKey(a.Rank, b.Rank, c.Rank).ranksBelow(bestKey) {
					break
				}
				if a.mask.intersects(c.mask) || b.mask.intersects(c.mask) {
					continue
				}
				key := evalTriple(a, b, c, profile)
				if !ok || key.beats(bestKey) {
					bestKey = key
					best = [3]int{i, j, k}
					ok = true
				}
			}
		}
	}
	return best, ok
}

// ── Group solver ────────────────────────────────────────────────────

// groupResult is the winning triple of one group.
type groupResult struct {
	group      *group
	picks      [3]Candidate
	levels     [3]int  // summed active-stat levels of the triple
	coreMult   float64 // Π (1 + bonus/100)
	multiplier float64 // coreMult × stat multiplier of levels
}

func (o *Optimizer) solveGroup(g *group) groupResult {
	var lists [3][]Candidate
	for i := range g.cores {
		lists[i] = generateCandidates(&g.cores[i], g.pool, o.profile, o.cfg.TopK)
	}
	o.log.Debug("candidates generated",
		zap.Stringer("group", g.id),
		zap.Int("pool", len(g.pool)),
		zap.Int("core0", len(lists[0])),
		zap.Int("core1", len(lists[1])),
		zap.Int("core2", len(lists[2])),
	)

	res := groupResult{group: g}
	if idx, ok := searchTriple(lists, o.profile); ok {
		for i := range res.picks {
			res.picks[i] = lists[i][idx[i]]
		}
	} else {
		for i := range res.picks {
			res.picks[i] = emptyCandidate(&g.cores[i], len(g.pool), o.profile)
		}
	}

	res.coreMult = 1.0
	for i := range res.picks {
		res.levels = addLevels(res.levels, res.picks[i].Levels)
		res.coreMult *= 1 + res.picks[i].Bonus/100
	}
	res.multiplier = res.coreMult * o.profile.StatMultiplier(res.levels)

	o.log.Debug("group solved",
		zap.Stringer("group", g.id),
		zap.Ints("ranks", []int{res.picks[0].Rank, res.picks[1].Rank, res.picks[2].Rank}),
		zap.Float64("multiplier", res.multiplier),
	)
	return res
}

// ── Main entry point ────────────────────────────────────────────────

// Optimize solves both groups and aggregates them into one Result.
func (o *Optimizer) Optimize() (*Result, error) {
	start := time.Now()
	if o.profile == nil {
		return nil, errors.New("no role profile")
	}

	groups, err := o.partition()
	if err != nil {
		return nil, err
	}

	var results [2]groupResult
	if o.cfg.ParallelGroups {
		var wg sync.WaitGroup
		for gi := range groups {
			gi := gi
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[gi] = o.solveGroup(&groups[gi])
			}()
		}
		wg.Wait()
	} else {
		for gi := range groups {
			results[gi] = o.solveGroup(&groups[gi])
		}
	}

	res := buildResult(o.input, o.profile, results)
	o.log.Info("optimization done",
		zap.Stringer("role", o.profile.Role),
		zap.Int("gems", len(o.input.Gems)),
		zap.Float64("final_percent", res.FinalScorePercent),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}
