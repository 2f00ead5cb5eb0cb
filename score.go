package main

// ── Tier rank ──

// TierRank classifies a point total against the grade's breakpoints.
// The result is non-decreasing in point for a fixed grade.
func TierRank(grade Grade, point int) int {
	switch grade {
	case GradeRelic, GradeAncient:
		switch {
		case point >= 17:
			return 3
		case point >= 14:
			return 2
		case point >= 10:
			return 1
		}
	case GradeLegend:
		switch {
		case point >= 14:
			return 3
		case point >= 10:
			return 2
		}
	case GradeHero:
		if point >= 10 {
			return 3
		}
	}
	return 0
}

// ── Core bonus ──

// lookup returns the value at the highest breakpoint <= point, 0 below the first.
func (t *CoreTable) lookup(point int) float64 {
	for i := len(t.Points) - 1; i >= 0; i-- {
		if point >= t.Points[i] {
			return t.Values[i]
		}
	}
	return 0
}

// CoreBonusPercent returns the core's bonus percentage at the given point
// total. Ancient cores at 17 points or more get a flat +1.00.
func (p *RoleProfile) CoreBonusPercent(c *Core, point int) float64 {
	v := p.table(c).lookup(point)
	if c.Grade == GradeAncient && point >= 17 {
		v += 1.0
	}
	return v
}

// ── Stat multiplier ──

// StatMultiplier returns Π (1 + coefficient*level/100) over the active
// stats. levels is indexed like p.Stats; inactive stats never get here.
func (p *RoleProfile) StatMultiplier(levels [3]int) float64 {
	m := 1.0
	for i, lv := range levels {
		m *= 1 + p.Coefficients[i]*float64(lv)/100
	}
	return m
}

// gemStatLevels sums a gem's active-stat levels into profile slots.
// Inactive or unset options contribute nothing.
func (p *RoleProfile) gemStatLevels(g *Gem) [3]int {
	var out [3]int
	for _, opt := range g.Options {
		if opt.Level <= 0 {
			continue
		}
		if i := p.statIndex(opt.Stat); i >= 0 {
			out[i] += opt.Level
		}
	}
	return out
}

// gemMultiplier is the single-gem contribution shown next to each placed
// gem: Π (1 + rate/100) over its active options.
func (p *RoleProfile) gemMultiplier(g *Gem) float64 {
	m := 1.0
	for _, opt := range g.Options {
		i := p.statIndex(opt.Stat)
		if i < 0 || opt.Level <= 0 {
			continue
		}
		m *= 1 + p.Coefficients[i]*float64(opt.Level)/100
	}
	return m
}

func addLevels(a, b [3]int) [3]int {
	return [3]int{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
