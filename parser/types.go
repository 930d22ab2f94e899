// Package parser turns single-line Grimdark Future statblock text into unit,
// weapon and upgrade records.
package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Range is a weapon's reach in inches. The zero value means melee.
type Range int

const Melee Range = 0

func (r Range) IsMelee() bool { return r == Melee }

func (r Range) String() string {
	if r.IsMelee() {
		return "melee"
	}
	return strconv.Itoa(int(r)) + "\""
}

func (r Range) MarshalYAML() (interface{}, error) {
	if r.IsMelee() {
		return "melee", nil
	}
	return int(r), nil
}

func (r *Range) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return r.set(raw)
}

func (r Range) MarshalJSON() ([]byte, error) {
	v, _ := r.MarshalYAML()
	return json.Marshal(v)
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return r.set(raw)
}

func (r *Range) set(raw interface{}) error {
	switch v := raw.(type) {
	case nil:
		*r = Melee
	case int:
		*r = Range(v)
	case float64:
		*r = Range(v)
	case string:
		if strings.EqualFold(v, "melee") {
			*r = Melee
			return nil
		}
		n, err := strconv.Atoi(strings.TrimRight(v, "\"”"))
		if err != nil {
			return fmt.Errorf("invalid range %q", v)
		}
		*r = Range(n)
	default:
		return fmt.Errorf("invalid range %v", raw)
	}
	return nil
}

// Weapon is a single weapon profile.
type Weapon struct {
	Name    string         `yaml:"name" json:"name"`
	Range   Range          `yaml:"range" json:"range"`
	Attacks int            `yaml:"attacks" json:"attacks"`
	Rules   []string       `yaml:"rules" json:"rules"`
	Values  map[string]int `yaml:"values,omitempty" json:"values,omitempty"`
	Cost    int            `yaml:"cost,omitempty" json:"cost,omitempty"`
}

// Value returns the numeric argument of a named-value rule such as AP(2).
func (w Weapon) Value(rule string) (int, bool) {
	v, ok := w.Values[strings.ToLower(rule)]
	return v, ok
}

// Upgrade is one option line of an upgrade group.
type Upgrade struct {
	Name    string         `yaml:"name" json:"name"`
	Rules   []string       `yaml:"rules" json:"rules"`
	Values  map[string]int `yaml:"values,omitempty" json:"values,omitempty"`
	Weapons []Weapon       `yaml:"weapons" json:"weapons"`
	Cost    int            `yaml:"cost" json:"cost"`
}

func (u Upgrade) Value(rule string) (int, bool) {
	v, ok := u.Values[strings.ToLower(rule)]
	return v, ok
}

// Limit caps how often an upgrade group may be taken. Exactly one shape is
// used: a fixed count, or per model (optionally only for models carrying
// Requirement).
type Limit struct {
	Count       int
	PerModel    bool
	Requirement string
}

func CountLimit(n int) *Limit { return &Limit{Count: n} }

func ModelsLimit() *Limit { return &Limit{PerModel: true} }

func (l Limit) String() string {
	switch {
	case l.PerModel && l.Requirement != "":
		return "models with " + l.Requirement
	case l.PerModel:
		return "models"
	default:
		return strconv.Itoa(l.Count)
	}
}

func (l Limit) MarshalYAML() (interface{}, error) {
	if l.PerModel {
		return l.String(), nil
	}
	return l.Count, nil
}

func (l *Limit) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return l.set(raw)
}

func (l Limit) MarshalJSON() ([]byte, error) {
	v, _ := l.MarshalYAML()
	return json.Marshal(v)
}

func (l *Limit) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return l.set(raw)
}

func (l *Limit) set(raw interface{}) error {
	switch v := raw.(type) {
	case int:
		*l = Limit{Count: v}
	case float64:
		*l = Limit{Count: int(v)}
	case string:
		if v == "models" {
			*l = Limit{PerModel: true}
			return nil
		}
		if req := strings.TrimPrefix(v, "models with "); req != v {
			*l = Limit{PerModel: true, Requirement: req}
			return nil
		}
		return fmt.Errorf("invalid limit %q", v)
	default:
		return fmt.Errorf("invalid limit %v", raw)
	}
	return nil
}

// UpgradeGroup is the structured form of an upgrade group header line.
type UpgradeGroup struct {
	Limit      *Limit   `yaml:"limit,omitempty" json:"limit,omitempty"`
	Replace    []string `yaml:"replace,omitempty" json:"replace,omitempty"`
	ReplaceAll []string `yaml:"replaceAll,omitempty" json:"replaceAll,omitempty"`
	Require    []string `yaml:"require,omitempty" json:"require,omitempty"`
}

// Unit is a parsed unit statblock.
type Unit struct {
	Name      string   `yaml:"name" json:"name"`
	Models    int      `yaml:"models" json:"models"`
	Quality   int      `yaml:"quality" json:"quality"`
	Defense   int      `yaml:"defense" json:"defense"`
	Equipment []Weapon `yaml:"equipment" json:"equipment"`
	Rules     []string `yaml:"rules" json:"rules"`
	Upgrades  []string `yaml:"upgrades" json:"upgrades"`
	Points    int      `yaml:"points" json:"points"`
}
