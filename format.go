package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// toFixed rounds half away from zero to the given number of places.
func toFixed(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// GemDetail describes one placed gem.
type GemDetail struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Cost                int         `json:"cost"`
	Point               int         `json:"point"`
	Options             []GemOption `json:"options,omitempty"`
	ContributionPercent float64     `json:"contributionPercent"` // 2 places
}

// CoreDetail is the output record for one core.
type CoreDetail struct {
	Core             Core        `json:"core"`
	Name             string      `json:"name"`
	Capacity         int         `json:"capacity"`
	TotalCost        int         `json:"totalCost"`
	TotalPoint       int         `json:"totalPoint"`
	TierRank         int         `json:"tierRank"`
	CoreBonusPercent float64     `json:"coreBonusPercent"` // 2 places
	CombinedPercent  float64     `json:"combinedPercent"`  // 3 places
	Gems             []GemDetail `json:"gems"`
}

// StatTotal is the global level sum of one active stat.
type StatTotal struct {
	Stat  StatType `json:"stat"`
	Level int      `json:"level"`
}

// Result is the full optimizer output. Cores follow the input order.
type Result struct {
	Role              Role         `json:"role"`
	Cores             []CoreDetail `json:"cores"`
	StatTotals        []StatTotal  `json:"statTotals"`
	Multiplier        float64      `json:"multiplier"`
	FinalScorePercent float64      `json:"finalScorePercent"` // 3 places
}

// buildResult aggregates both groups. Stat levels are summed across the
// groups and the stat multiplier is applied once on the total.
func buildResult(in *Input, profile *RoleProfile, groups [2]groupResult) *Result {
	res := &Result{
		Role:  profile.Role,
		Cores: make([]CoreDetail, len(in.Cores)),
	}

	var levels [3]int
	mult := 1.0
	for gi := range groups {
		gr := &groups[gi]
		levels = addLevels(levels, gr.levels)
		mult *= gr.coreMult
		for ci := range gr.picks {
			res.Cores[gr.group.coreIdx[ci]] = coreDetail(&gr.group.cores[ci], &gr.picks[ci], gr.group.pool, profile)
		}
	}
	mult *= profile.StatMultiplier(levels)

	for i, st := range profile.Stats {
		res.StatTotals = append(res.StatTotals, StatTotal{Stat: st, Level: levels[i]})
	}
	res.Multiplier = mult
	res.FinalScorePercent = toFixed((mult-1)*100, 3)
	return res
}

func coreDetail(core *Core, cand *Candidate, pool []Gem, profile *RoleProfile) CoreDetail {
	cd := CoreDetail{
		Core:             *core,
		Name:             core.Name(),
		Capacity:         core.Grade.Capacity(),
		TotalCost:        cand.Cost,
		TotalPoint:       cand.Point,
		TierRank:         cand.Rank,
		CoreBonusPercent: toFixed(cand.Bonus, 2),
		Gems:             []GemDetail{},
	}

	local := 1.0
	for _, gi := range cand.Gems() {
		g := &pool[gi]
		gm := profile.gemMultiplier(g)
		local *= gm
		gd := GemDetail{
			ID:                  g.ID,
			Name:                g.Name,
			Cost:                g.Cost,
			Point:               g.Point,
			ContributionPercent: toFixed((gm-1)*100, 2),
		}
		for _, opt := range g.Options {
			if opt.Stat != StatNone && opt.Level > 0 {
				gd.Options = append(gd.Options, opt)
			}
		}
		cd.Gems = append(cd.Gems, gd)
	}
	cd.CombinedPercent = toFixed(((1+cand.Bonus/100)*local-1)*100, 3)
	return cd
}

// FormatResult renders a Result as plain text.
func FormatResult(res *Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Role: %s\n", res.Role)
	for i := range res.Cores {
		cd := &res.Cores[i]
		if i > 0 && cd.Core.Group != res.Cores[i-1].Core.Group {
			b.WriteString("-------------------\n")
		}
		fmt.Fprintf(&b, "%s [%s] cost %d/%d, point %d (rank %d) -> core %s%%, combined %s%%\n",
			cd.Name, cd.Core.Grade, cd.TotalCost, cd.Capacity, cd.TotalPoint, cd.TierRank,
			decimal.NewFromFloat(cd.CoreBonusPercent).StringFixed(2),
			decimal.NewFromFloat(cd.CombinedPercent).StringFixed(3))

		for _, gd := range cd.Gems {
			var opts []string
			for _, opt := range gd.Options {
				opts = append(opts, fmt.Sprintf("%s Lv%d", opt.Stat, opt.Level))
			}
			fmt.Fprintf(&b, "  %s (%d/%d) %s +%s%%\n",
				gd.Name, gd.Cost, gd.Point, strings.Join(opts, ", "),
				decimal.NewFromFloat(gd.ContributionPercent).StringFixed(2))
		}
	}

	var stats []string
	for _, st := range res.StatTotals {
		stats = append(stats, fmt.Sprintf("%s %d", st.Stat, st.Level))
	}
	fmt.Fprintf(&b, "Stats: %s\n", strings.Join(stats, ", "))
	fmt.Fprintf(&b, "Final: +%s%%\n", decimal.NewFromFloat(res.FinalScorePercent).StringFixed(3))
	return b.String()
}
