package main

import "strings"

type Group int

const (
	GroupNone Group = iota
	GroupOrder
	GroupChaos
)

type Position int

const (
	PositionNone Position = iota
	PositionSun
	PositionMoon
	PositionStar
)

type Grade int

const (
	GradeNone Grade = iota
	GradeHero
	GradeLegend
	GradeRelic
	GradeAncient
)

type StatType int

const (
	StatNone StatType = iota
	// Dealer stats
	StatAttack
	StatAdditionalDamage
	StatBossDamage
	// Support stats
	StatBrand
	StatAllyDamage
	StatAllyAttack
)

type Role int

const (
	RoleNone Role = iota
	RoleDealer
	RoleSupport
)

// maxGemsPerCore bounds the subset size explored per core.
const maxGemsPerCore = 4

// Capacity returns the willpower a core of this grade can hold.
func (g Grade) Capacity() int {
	switch g {
	case GradeHero:
		return 9
	case GradeLegend:
		return 12
	case GradeRelic:
		return 15
	case GradeAncient:
		return 17
	}
	return 0
}

func (g Group) String() string {
	switch g {
	case GroupOrder:
		return "order"
	case GroupChaos:
		return "chaos"
	}
	return "none"
}

func (p Position) String() string {
	switch p {
	case PositionSun:
		return "sun"
	case PositionMoon:
		return "moon"
	case PositionStar:
		return "star"
	}
	return "none"
}

func (g Grade) String() string {
	switch g {
	case GradeHero:
		return "hero"
	case GradeLegend:
		return "legend"
	case GradeRelic:
		return "relic"
	case GradeAncient:
		return "ancient"
	}
	return "none"
}

func (s StatType) String() string {
	switch s {
	case StatAttack:
		return "attack"
	case StatAdditionalDamage:
		return "additional_damage"
	case StatBossDamage:
		return "boss_damage"
	case StatBrand:
		return "brand"
	case StatAllyDamage:
		return "ally_damage"
	case StatAllyAttack:
		return "ally_attack"
	}
	return "none"
}

func (r Role) String() string {
	switch r {
	case RoleDealer:
		return "dealer"
	case RoleSupport:
		return "support"
	}
	return "none"
}

func (g Group) MarshalText() ([]byte, error)    { return []byte(g.String()), nil }
func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (g Grade) MarshalText() ([]byte, error)    { return []byte(g.String()), nil }
func (s StatType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (r Role) MarshalText() ([]byte, error)     { return []byte(r.String()), nil }

// title upper-cases the first byte; all enum names are ASCII.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func parseGroup(s string) Group {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "order", "질서":
		return GroupOrder
	case "chaos", "혼돈":
		return GroupChaos
	}
	return GroupNone
}

func parsePosition(s string) Position {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sun", "해", "first", "1":
		return PositionSun
	case "moon", "달", "second", "2":
		return PositionMoon
	case "star", "별", "third", "3":
		return PositionStar
	}
	return PositionNone
}

func parseGrade(s string) Grade {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hero", "영웅":
		return GradeHero
	case "legend", "전설":
		return GradeLegend
	case "relic", "유물":
		return GradeRelic
	case "ancient", "고대":
		return GradeAncient
	}
	return GradeNone
}

func parseStatType(s string) StatType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "attack", "공격력", "공격":
		return StatAttack
	case "additional_damage", "추가 피해", "추피":
		return StatAdditionalDamage
	case "boss_damage", "보스 피해", "보피":
		return StatBossDamage
	case "brand", "낙인력", "낙인":
		return StatBrand
	case "ally_damage", "아군 피해 강화", "아피":
		return StatAllyDamage
	case "ally_attack", "아군 공격 강화", "아공":
		return StatAllyAttack
	}
	return StatNone
}

func parseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dealer", "딜러":
		return RoleDealer
	case "support", "supporter", "서포터":
		return RoleSupport
	}
	return RoleNone
}

// parseCoreType splits a combined core name such as "질서의 해" or
// "chaos moon" into its group and position.
func parseCoreType(s string) (Group, Position) {
	s = strings.ToLower(s)
	var g Group
	switch {
	case strings.Contains(s, "질서"), strings.Contains(s, "order"):
		g = GroupOrder
	case strings.Contains(s, "혼돈"), strings.Contains(s, "chaos"):
		g = GroupChaos
	}
	var p Position
	switch {
	case strings.Contains(s, "해"), strings.Contains(s, "sun"):
		p = PositionSun
	case strings.Contains(s, "달"), strings.Contains(s, "moon"):
		p = PositionMoon
	case strings.Contains(s, "별"), strings.Contains(s, "star"):
		p = PositionStar
	}
	return g, p
}

// Core is one equipment slot. Special selects the tier-1 bonus table for
// chaos sun/moon cores and is ignored elsewhere.
type Core struct {
	Group    Group    `json:"group"`
	Position Position `json:"position"`
	Grade    Grade    `json:"grade"`
	Special  bool     `json:"special,omitempty"`
}

// Name returns the display name, e.g. "Order Sun".
func (c Core) Name() string {
	return title(c.Group.String()) + " " + title(c.Position.String())
}

// GemOption is one (stat, level) pair carried by a gem. Level 0 means unset.
type GemOption struct {
	Stat  StatType `json:"stat"`
	Level int      `json:"level"`
}

// Gem is one placeable item.
type Gem struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Group   Group        `json:"group"`
	Cost    int          `json:"cost"`
	Point   int          `json:"point"`
	Options [2]GemOption `json:"options"`
}

// Input is a full optimization request.
type Input struct {
	Role  Role
	Cores []Core
	Gems  []Gem
}
