package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTierRank(t *testing.T) {
	cases := []struct {
		grade Grade
		point int
		want  int
	}{
		{GradeRelic, 9, 0},
		{GradeRelic, 10, 1},
		{GradeRelic, 13, 1},
		{GradeRelic, 14, 2},
		{GradeRelic, 16, 2},
		{GradeRelic, 17, 3},
		{GradeAncient, 20, 3},
		{GradeLegend, 9, 0},
		{GradeLegend, 10, 2},
		{GradeLegend, 14, 3},
		{GradeHero, 9, 0},
		{GradeHero, 10, 3},
		{GradeNone, 20, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TierRank(c.grade, c.point), "grade=%s point=%d", c.grade, c.point)
	}
}

func TestTierRank_MonotoneInPoint(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		grade := rapid.SampledFrom([]Grade{GradeHero, GradeLegend, GradeRelic, GradeAncient}).Draw(rt, "grade")
		p := rapid.IntRange(0, 30).Draw(rt, "point")
		q := rapid.IntRange(p, 31).Draw(rt, "higher")
		assert.LessOrEqual(rt, TierRank(grade, p), TierRank(grade, q))
	})
}

func TestCoreBonusPercent_Lookup(t *testing.T) {
	sun := Core{Group: GroupOrder, Position: PositionSun, Grade: GradeRelic}
	cases := map[int]float64{0: 0, 9: 0, 10: 1.5, 13: 1.5, 14: 4.0, 17: 7.5, 18: 7.67, 19: 7.83, 20: 8.0, 25: 8.0}
	for point, want := range cases {
		assert.InDelta(t, want, DealerProfile.CoreBonusPercent(&sun, point), 1e-9, "point=%d", point)
	}
}

func TestCoreBonusPercent_TableSelection(t *testing.T) {
	cases := []struct {
		name string
		core Core
		p    *RoleProfile
		want float64 // at 17 points
	}{
		{"dealer order sun", Core{Group: GroupOrder, Position: PositionSun}, DealerProfile, 7.5},
		{"dealer order moon", Core{Group: GroupOrder, Position: PositionMoon}, DealerProfile, 7.5},
		{"dealer order star", Core{Group: GroupOrder, Position: PositionStar}, DealerProfile, 4.5},
		{"order ignores special", Core{Group: GroupOrder, Position: PositionSun, Special: true}, DealerProfile, 7.5},
		{"chaos sun normal", Core{Group: GroupChaos, Position: PositionSun}, DealerProfile, 1.5},
		{"chaos moon tier1", Core{Group: GroupChaos, Position: PositionMoon, Special: true}, DealerProfile, 2.5},
		{"chaos star", Core{Group: GroupChaos, Position: PositionStar}, DealerProfile, 2.5},
		{"support order sun", Core{Group: GroupOrder, Position: PositionSun}, SupportProfile, 7.8},
		{"support order star", Core{Group: GroupOrder, Position: PositionStar}, SupportProfile, 2.1},
		{"support chaos sun", Core{Group: GroupChaos, Position: PositionSun}, SupportProfile, 1.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.core.Grade = GradeRelic
			assert.InDelta(t, c.want, c.p.CoreBonusPercent(&c.core, 17), 1e-9)
		})
	}
}

func TestCoreBonusPercent_AncientAddsOnePoint(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		group := rapid.SampledFrom([]Group{GroupOrder, GroupChaos}).Draw(rt, "group")
		pos := rapid.SampledFrom([]Position{PositionSun, PositionMoon, PositionStar}).Draw(rt, "position")
		special := rapid.Bool().Draw(rt, "special")
		point := rapid.IntRange(0, 24).Draw(rt, "point")

		relic := Core{Group: group, Position: pos, Grade: GradeRelic, Special: special}
		ancient := relic
		ancient.Grade = GradeAncient

		diff := DealerProfile.CoreBonusPercent(&ancient, point) - DealerProfile.CoreBonusPercent(&relic, point)
		if point >= 17 {
			assert.InDelta(rt, 1.0, diff, 1e-9)
		} else {
			assert.InDelta(rt, 0.0, diff, 1e-9)
		}
	})
}

func TestStatMultiplier_IsProductNotSum(t *testing.T) {
	a := Gem{Group: GroupOrder, Options: [2]GemOption{{Stat: StatAttack, Level: 5}}}
	b := Gem{Group: GroupOrder, Options: [2]GemOption{{Stat: StatBossDamage, Level: 5}}}
	levels := addLevels(DealerProfile.gemStatLevels(&a), DealerProfile.gemStatLevels(&b))

	want := (1 + (4.0/120)*5/100) * (1 + (10.0/120)*5/100)
	assert.InDelta(t, want, DealerProfile.StatMultiplier(levels), 1e-12)

	sum := 1 + ((4.0/120)*5+(10.0/120)*5)/100
	assert.NotEqual(t, sum, DealerProfile.StatMultiplier(levels))
}

func TestGemStatLevels_IgnoresInactiveStats(t *testing.T) {
	g := Gem{Options: [2]GemOption{{Stat: StatBrand, Level: 5}, {Stat: StatAttack, Level: 3}}}
	assert.Equal(t, [3]int{3, 0, 0}, DealerProfile.gemStatLevels(&g))
	assert.Equal(t, [3]int{5, 0, 0}, SupportProfile.gemStatLevels(&g))

	unset := Gem{Options: [2]GemOption{{Stat: StatAttack, Level: 0}}}
	assert.Equal(t, [3]int{}, DealerProfile.gemStatLevels(&unset))
	assert.Equal(t, 1.0, DealerProfile.gemMultiplier(&unset))
}
