package main

import (
	"cmp"
	"slices"
)

// ── Gem mask ──

// gemMask is a bitset over a group's gem pool (bit i = pool[i] used).
type gemMask []uint64

func newGemMask(poolSize int) gemMask {
	return make(gemMask, (poolSize+63)/64)
}

func (m gemMask) set(i int) { m[i/64] |= 1 << (uint(i) % 64) }

func (m gemMask) has(i int) bool { return m[i/64]&(1<<(uint(i)%64)) != 0 }

func (m gemMask) intersects(o gemMask) bool {
	for i := range m {
		if m[i]&o[i] != 0 {
			return true
		}
	}
	return false
}

// ── Candidate ──

// Candidate is one gem subset for one core, with its derived scoring fields.
type Candidate struct {
	gems [maxGemsPerCore]int // indices into the group pool
	n    int
	mask gemMask

	Cost       int
	Point      int
	Levels     [3]int // active-stat level sums, indexed like RoleProfile.Stats
	Bonus      float64
	Rank       int
	Multiplier float64
}

// Gems returns the pool indices of the chosen gems, in pool order.
func (c *Candidate) Gems() []int { return c.gems[:c.n] }

// emptyCandidate is the zero-gem loadout for a core.
func emptyCandidate(core *Core, poolSize int, profile *RoleProfile) Candidate {
	bonus := profile.CoreBonusPercent(core, 0)
	return Candidate{
		mask:       newGemMask(poolSize),
		Bonus:      bonus,
		Rank:       TierRank(core.Grade, 0),
		Multiplier: 1 + bonus/100,
	}
}

// compareCandidates orders by tier rank, then multiplier, both descending.
func compareCandidates(a, b Candidate) int {
	if a.Rank != b.Rank {
		return cmp.Compare(b.Rank, a.Rank)
	}
	return cmp.Compare(b.Multiplier, a.Multiplier)
}

// ── Generator ──

// generateCandidates enumerates every gem subset of at most maxGemsPerCore
// gems that fits the core's capacity, scores each one and keeps the topK
// best by (rank, multiplier) plus the empty loadout. Ties keep enumeration
// order.
func generateCandidates(core *Core, pool []Gem, profile *RoleProfile, topK int) []Candidate {
	capacity := core.Grade.Capacity()
	levels := make([][3]int, len(pool))
	for i := range pool {
		levels[i] = profile.gemStatLevels(&pool[i])
	}

	var out []Candidate
	var cur Candidate

	var walk func(start int)
	walk = func(start int) {
		c := cur
		c.Bonus = profile.CoreBonusPercent(core, c.Point)
		c.Rank = TierRank(core.Grade, c.Point)
		c.Multiplier = (1 + c.Bonus/100) * profile.StatMultiplier(c.Levels)
		out = append(out, c)

		if cur.n >= maxGemsPerCore {
			return
		}
		for i := start; i < len(pool); i++ {
			g := &pool[i]
			if cur.Cost+g.Cost > capacity {
				continue
			}
			saved := cur
			cur.gems[cur.n] = i
			cur.n++
			cur.Cost += g.Cost
			cur.Point += g.Point
			cur.Levels = addLevels(cur.Levels, levels[i])
			walk(i + 1)
			cur = saved
		}
	}
	walk(0)

	slices.SortStableFunc(out, compareCandidates)
	if topK > 0 && len(out) > topK {
		// the empty loadout always survives the cut; it never sorts above
		// anything that was kept
		hasEmpty := slices.ContainsFunc(out[:topK], func(c Candidate) bool { return c.n == 0 })
		out = out[:topK]
		if !hasEmpty {
			out = append(out, emptyCandidate(core, len(pool), profile))
		}
	}

	for i := range out {
		out[i].mask = newGemMask(len(pool))
		for _, gi := range out[i].Gems() {
			out[i].mask.set(gi)
		}
	}
	return out
}
