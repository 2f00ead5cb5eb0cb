package main

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// LoadInput reads a JSON or YAML request file. role overrides the role
// named in the file; when neither is set the dealer profile is used.
func LoadInput(path string, role Role) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var raw *rawInput
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		raw, err = parseRawJSON(string(data))
	case ".yaml", ".yml":
		raw, err = parseRawYAML(data)
	default:
		return nil, fmt.Errorf("%s: unsupported input format", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw.toInput(role)
}

// loadFromString parses a JSON request body.
func loadFromString(body string, role Role) (*Input, error) {
	raw, err := parseRawJSON(body)
	if err != nil {
		return nil, err
	}
	return raw.toInput(role)
}

func (r *rawInput) toInput(override Role) (*Input, error) {
	in := &Input{Role: override}
	if in.Role == RoleNone && r.Role != "" {
		if in.Role = parseRole(r.Role); in.Role == RoleNone {
			return nil, fmt.Errorf("unknown role %q", r.Role)
		}
	}
	if in.Role == RoleNone {
		in.Role = RoleDealer
	}
	profile := ProfileFor(in.Role)

	for i, rc := range r.Cores {
		c, err := rc.toCore(profile)
		if err != nil {
			return nil, fmt.Errorf("core %d: %w", i, err)
		}
		in.Cores = append(in.Cores, c)
	}
	// canonical order: order sun, moon, star, then chaos
	slices.SortStableFunc(in.Cores, func(a, b Core) int {
		if c := cmp.Compare(a.Group, b.Group); c != 0 {
			return c
		}
		return cmp.Compare(a.Position, b.Position)
	})

	var perGroup [3]int
	for i, rg := range r.Gems {
		g, err := rg.toGem(i)
		if err != nil {
			return nil, fmt.Errorf("gem %d: %w", i, err)
		}
		perGroup[g.Group]++
		if g.Name == "" {
			num := rg.Num
			if num == 0 {
				num = perGroup[g.Group]
			}
			g.Name = fmt.Sprintf("%s gem #%d", title(g.Group.String()), num)
		}
		in.Gems = append(in.Gems, g)
	}
	return in, nil
}

func (rc rawCore) toCore(profile *RoleProfile) (Core, error) {
	var c Core
	c.Group, c.Position = parseCoreType(rc.Type)
	if rc.Group != "" {
		c.Group = parseGroup(rc.Group)
	}
	if rc.Position != "" {
		c.Position = parsePosition(rc.Position)
	}
	if c.Group == GroupNone || c.Position == PositionNone {
		return c, fmt.Errorf("cannot resolve core type %q (group %q, position %q)", rc.Type, rc.Group, rc.Position)
	}
	if c.Grade = parseGrade(rc.Grade); c.Grade == GradeNone {
		return c, fmt.Errorf("unknown grade %q", rc.Grade)
	}
	// only chaos sun/moon have a tier-1 variant
	if c.Group == GroupChaos && c.Position != PositionStar {
		c.Special = rc.Tier1 || (rc.SubName != "" && rc.SubName == profile.Tier1Names[c.Position])
	}
	return c, nil
}

func (rg rawGem) toGem(idx int) (Gem, error) {
	g := Gem{
		ID:    rg.ID,
		Name:  rg.Name,
		Cost:  rg.Cost,
		Point: rg.Point,
	}
	if g.Group = parseGroup(rg.Type); g.Group == GroupNone {
		return g, fmt.Errorf("unknown gem group %q", rg.Type)
	}
	if len(rg.Options) > len(g.Options) {
		return g, fmt.Errorf("%d options, at most %d allowed", len(rg.Options), len(g.Options))
	}
	for i, o := range rg.Options {
		if o.Stat == "" {
			continue
		}
		st := parseStatType(o.Stat)
		if st == StatNone {
			return g, fmt.Errorf("unknown stat %q", o.Stat)
		}
		g.Options[i] = GemOption{Stat: st, Level: o.Level}
	}
	if g.ID == "" {
		// stable across runs for the same file
		key := fmt.Sprintf("%s/%d/%d/%d", g.Group, idx, g.Cost, g.Point)
		g.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
	}
	return g, nil
}
