package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// costRe splits an option line into its body and a "+10pts" or "Free" cost.
	costRe = regexp.MustCompile(`^(.+?)(?: ?\+(\d{1,3})pts| Free)$`)

	// optionRe matches a generic option body: a name with an optional
	// parenthetical of rules and weapons, e.g. "Bike (Fast, Impact(1))".
	optionRe = regexp.MustCompile(`^([\w\-' ]+?)(?: \(([\w\-+,”"' ()]+)\))?$`)
)

// ParseUpgrade parses one upgrade option line.
//
// A line that is a single priced weapon becomes an option with an empty name
// holding that weapon. Otherwise the line must be "<name> (<contents>) +Npts"
// (or "... Free"); weapon profiles inside the parenthetical are collected as
// weapons and every other entry becomes a rule of the option.
func ParseUpgrade(line string) (Upgrade, error) {
	line = strings.TrimSpace(line)

	if w, priced, ok := matchWeapon(line); ok {
		if !priced {
			return Upgrade{}, fmt.Errorf("%w: %q", ErrMissingCost, line)
		}
		cost := w.Cost
		w.Cost = 0
		return Upgrade{
			Name:    "",
			Rules:   []string{},
			Weapons: []Weapon{w},
			Cost:    cost,
		}, nil
	}

	m := costRe.FindStringSubmatch(line)
	if m == nil {
		return Upgrade{}, fmt.Errorf("%w: %q", ErrMissingCost, line)
	}
	body := m[1]
	cost := 0
	if m[2] != "" {
		cost, _ = strconv.Atoi(m[2])
	}

	if weapons, ok := matchWeaponList(body); ok {
		return Upgrade{
			Name:    "",
			Rules:   []string{},
			Weapons: weapons,
			Cost:    cost,
		}, nil
	}

	// A bare named-value rule such as "Psychic(1) +10pts".
	if ruleValueRe.MatchString(body) {
		rules, values := ExtractRules([]string{body})
		return Upgrade{
			Name:    body,
			Rules:   rules,
			Values:  values,
			Weapons: []Weapon{},
			Cost:    cost,
		}, nil
	}

	o := optionRe.FindStringSubmatch(body)
	if o == nil {
		return Upgrade{}, fmt.Errorf("%w: %q", ErrNoMatch, line)
	}

	upgrade := Upgrade{
		Name:    strings.TrimSpace(o[1]),
		Weapons: []Weapon{},
		Cost:    cost,
	}

	var ruleTokens []string
	for _, token := range SplitByCommas(o[2]) {
		if w, ok := ParseWeapon(token); ok {
			upgrade.Weapons = append(upgrade.Weapons, w)
		} else {
			ruleTokens = append(ruleTokens, token)
		}
	}
	upgrade.Rules, upgrade.Values = ExtractRules(ruleTokens)

	return upgrade, nil
}

// matchWeaponList matches "Pistol (12”, A1) and CCW (A2)" where every
// " and "-separated part is a weapon profile.
func matchWeaponList(body string) ([]Weapon, bool) {
	parts := strings.Split(body, " and ")
	weapons := make([]Weapon, 0, len(parts))

	for _, part := range parts {
		w, ok := ParseWeapon(part)
		if !ok {
			return nil, false
		}
		weapons = append(weapons, w)
	}
	return weapons, true
}
