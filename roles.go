package main

// CoreTable maps point breakpoints to a core bonus percentage.
type CoreTable struct {
	Points [6]int
	Values [6]float64
}

var corePoints = [6]int{10, 14, 17, 18, 19, 20}

// RoleProfile holds everything that differs between the two scoring
// variants: the three active stats, their per-level coefficients and the
// core bonus tables.
type RoleProfile struct {
	Role         Role
	Stats        [3]StatType
	Coefficients [3]float64 // percent per level, indexed like Stats

	OrderSunMoon CoreTable
	OrderStar    CoreTable
	ChaosTier1   CoreTable
	ChaosNormal  CoreTable
	ChaosStar    CoreTable

	// Tier1Names are the sub-option names that flag chaos sun/moon cores
	// as tier-1 for this role.
	Tier1Names map[Position]string
}

// chaos tables are shared between roles
var (
	chaosTier1  = CoreTable{corePoints, [6]float64{0.5, 1.0, 2.5, 2.67, 2.83, 3.0}}
	chaosNormal = CoreTable{corePoints, [6]float64{0, 0.5, 1.5, 1.67, 1.83, 2.0}}
	chaosStar   = CoreTable{corePoints, [6]float64{0.5, 1.0, 2.5, 2.67, 2.83, 3.0}}
)

// DealerProfile scores for damage dealers.
var DealerProfile = &RoleProfile{
	Role:         RoleDealer,
	Stats:        [3]StatType{StatAttack, StatAdditionalDamage, StatBossDamage},
	Coefficients: [3]float64{4.0 / 120, 7.0 / 120, 10.0 / 120},
	OrderSunMoon: CoreTable{corePoints, [6]float64{1.5, 4.0, 7.5, 7.67, 7.83, 8.0}},
	OrderStar:    CoreTable{corePoints, [6]float64{1.0, 2.5, 4.5, 4.67, 4.83, 5.0}},
	ChaosTier1:   chaosTier1,
	ChaosNormal:  chaosNormal,
	ChaosStar:    chaosStar,
	Tier1Names: map[Position]string{
		PositionSun:  "현란한 공격",
		PositionMoon: "불타는 일격",
	},
}

// SupportProfile scores for supporters.
var SupportProfile = &RoleProfile{
	Role:         RoleSupport,
	Stats:        [3]StatType{StatBrand, StatAllyDamage, StatAllyAttack},
	Coefficients: [3]float64{8.0 / 120, 5.0 / 120, 10.0 / 120},
	OrderSunMoon: CoreTable{corePoints, [6]float64{1.2, 1.2, 7.8, 7.98, 8.1, 8.22}},
	OrderStar:    CoreTable{corePoints, [6]float64{0, 0.6, 2.1, 2.2, 2.3, 2.4}},
	ChaosTier1:   chaosTier1,
	ChaosNormal:  chaosNormal,
	ChaosStar:    chaosStar,
	Tier1Names: map[Position]string{
		PositionSun:  "신념의 강화",
		PositionMoon: "낙인의 흔적",
	},
}

// ProfileFor returns the profile for a role, or nil for RoleNone.
func ProfileFor(r Role) *RoleProfile {
	switch r {
	case RoleDealer:
		return DealerProfile
	case RoleSupport:
		return SupportProfile
	}
	return nil
}

// statIndex returns the slot of s within the profile's active stats, or -1.
func (p *RoleProfile) statIndex(s StatType) int {
	for i, st := range p.Stats {
		if st == s {
			return i
		}
	}
	return -1
}

// table picks the bonus table for a core.
func (p *RoleProfile) table(c *Core) *CoreTable {
	if c.Group == GroupOrder {
		if c.Position == PositionStar {
			return &p.OrderStar
		}
		return &p.OrderSunMoon
	}
	if c.Position == PositionStar {
		return &p.ChaosStar
	}
	if c.Special {
		return &p.ChaosTier1
	}
	return &p.ChaosNormal
}
