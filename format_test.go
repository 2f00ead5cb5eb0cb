package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFixed_HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in     float64
		places int32
		want   float64
	}{
		{1.005, 2, 1.01},
		{0.125, 2, 0.13},
		{-0.125, 2, -0.13},
		{-2.5, 0, -3},
		{2.5, 0, 3},
		{4.1735, 3, 4.174},
		{7.666666, 2, 7.67},
		{0, 3, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, toFixed(c.in, c.places), "toFixed(%v, %d)", c.in, c.places)
	}
}

func sampleResult() *Result {
	return &Result{
		Role: RoleDealer,
		Cores: []CoreDetail{
			{
				Core:             Core{Group: GroupOrder, Position: PositionSun, Grade: GradeRelic},
				Name:             "Order Sun",
				Capacity:         15,
				TotalCost:        9,
				TotalPoint:       10,
				TierRank:         1,
				CoreBonusPercent: 1.5,
				CombinedPercent:  1.669,
				Gems: []GemDetail{
					{ID: "a", Name: "Order gem #1", Cost: 5, Point: 5, Options: []GemOption{{StatAttack, 5}}, ContributionPercent: 0.17},
					{ID: "b", Name: "Order gem #2", Cost: 4, Point: 5, ContributionPercent: 0},
				},
			},
			{
				Core:     Core{Group: GroupChaos, Position: PositionStar, Grade: GradeHero},
				Name:     "Chaos Star",
				Capacity: 9,
				Gems:     []GemDetail{},
			},
		},
		StatTotals:        []StatTotal{{StatAttack, 5}, {StatAdditionalDamage, 0}, {StatBossDamage, 0}},
		Multiplier:        1.016691,
		FinalScorePercent: 1.669,
	}
}

func TestFormatResult(t *testing.T) {
	want := "Role: dealer\n" +
		"Order Sun [relic] cost 9/15, point 10 (rank 1) -> core 1.50%, combined 1.669%\n" +
		"  Order gem #1 (5/5) attack Lv5 +0.17%\n" +
		"  Order gem #2 (4/5)  +0.00%\n" +
		"-------------------\n" +
		"Chaos Star [hero] cost 0/9, point 0 (rank 0) -> core 0.00%, combined 0.000%\n" +
		"Stats: attack 5, additional_damage 0, boss_damage 0\n" +
		"Final: +1.669%\n"
	assert.Equal(t, want, FormatResult(sampleResult()))
}

func TestResult_JSONUsesNames(t *testing.T) {
	data, err := json.Marshal(sampleResult())
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "dealer", back["role"])
	assert.Equal(t, 1.669, back["finalScorePercent"])

	cores := back["cores"].([]any)
	first := cores[0].(map[string]any)
	assert.Equal(t, "Order Sun", first["name"])
	core := first["core"].(map[string]any)
	assert.Equal(t, "order", core["group"])
	assert.Equal(t, "relic", core["grade"])
	assert.NotContains(t, core, "special")
}
