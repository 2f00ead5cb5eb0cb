package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Raw input as read from disk, before names are resolved. JSON goes through
// gjson so the aliases used by older exports are accepted; YAML uses the
// canonical keys only.

type rawCore struct {
	Type     string `yaml:"type"`
	Group    string `yaml:"group"`
	Position string `yaml:"position"`
	Grade    string `yaml:"grade"`
	Tier1    bool   `yaml:"tier1"`
	SubName  string `yaml:"subName"`
}

type rawOption struct {
	Stat  string `yaml:"stat"`
	Level int    `yaml:"level"`
}

type rawGem struct {
	ID      string      `yaml:"id"`
	Type    string      `yaml:"type"`
	Name    string      `yaml:"name"`
	Num     int         `yaml:"num"`
	Cost    int         `yaml:"cost"`
	Point   int         `yaml:"point"`
	Options []rawOption `yaml:"options"`
}

type rawInput struct {
	Role  string    `yaml:"role"`
	Cores []rawCore `yaml:"cores"`
	Gems  []rawGem  `yaml:"gems"`
}

// ── JSON ────────────────────────────────────────────────────────────

// firstOf returns the first of keys present on v.
func firstOf(v gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if r := v.Get(k); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}

func parseRawJSON(data string) (*rawInput, error) {
	if !gjson.Valid(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.Parse(data)
	in := &rawInput{Role: root.Get("role").String()}

	cores := root.Get("cores")
	switch {
	case cores.IsArray():
		cores.ForEach(func(_, v gjson.Result) bool {
			in.Cores = append(in.Cores, parseRawCore(v, ""))
			return true
		})
	case cores.IsObject():
		// keyed form: {"order-sun": {...}, "chaos-star": {...}}
		cores.ForEach(func(k, v gjson.Result) bool {
			in.Cores = append(in.Cores, parseRawCore(v, k.String()))
			return true
		})
	}

	root.Get("gems").ForEach(func(_, v gjson.Result) bool {
		in.Gems = append(in.Gems, parseRawGem(v))
		return true
	})
	return in, nil
}

func parseRawCore(v gjson.Result, key string) rawCore {
	c := rawCore{
		Type:     firstOf(v, "type", "name").String(),
		Group:    v.Get("group").String(),
		Position: v.Get("position").String(),
		Grade:    v.Get("grade").String(),
		Tier1:    firstOf(v, "isTier1", "tier1", "special").Bool(),
		SubName:  firstOf(v, "subName", "tier1Option").String(),
	}
	if c.Type == "" {
		c.Type = key
	}
	return c
}

func parseRawGem(v gjson.Result) rawGem {
	g := rawGem{
		ID:    v.Get("id").String(),
		Type:  firstOf(v, "type", "group").String(),
		Name:  v.Get("name").String(),
		Num:   int(v.Get("gemNum").Int()),
		Cost:  int(v.Get("cost").Int()),
		Point: int(v.Get("point").Int()),
	}
	if opts := v.Get("options"); opts.IsArray() {
		opts.ForEach(func(_, o gjson.Result) bool {
			g.Options = append(g.Options, rawOption{
				Stat:  firstOf(o, "stat", "name").String(),
				Level: int(o.Get("level").Int()),
			})
			return true
		})
		return g
	}
	for _, keys := range [][2][]string{
		{{"optionNameA", "opt1Type"}, {"optionLevelA", "opt1Lvl"}},
		{{"optionNameB", "opt2Type"}, {"optionLevelB", "opt2Lvl"}},
	} {
		name := firstOf(v, keys[0]...).String()
		if name == "" {
			continue
		}
		g.Options = append(g.Options, rawOption{Stat: name, Level: int(firstOf(v, keys[1]...).Int())})
	}
	return g
}

// ── YAML ────────────────────────────────────────────────────────────

func parseRawYAML(data []byte) (*rawInput, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var in rawInput
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &in, nil
}
