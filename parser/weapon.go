package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// weaponRe matches a weapon profile:
//
//	Name (24”, A2, AP(1), Rending) +15pts
//
// Range is optional (melee when absent), as is the point cost. Each rule is a
// plain name or a Name(N) value, so parentheses in the rule list always
// balance.
var weaponRe = regexp.MustCompile(`^([\w\- ]+) \((?:(\d{1,2})(?:"|”), )?A(\d{1,2})((?:, [\w\- +]+(?:\([+-]?\d+\))?)*)\)(?: \+(\d{1,3})pts)?$`)

// ParseWeapon matches a single weapon profile. It reports false when the
// fragment is not a weapon, which is not an error.
func ParseWeapon(fragment string) (Weapon, bool) {
	w, _, ok := matchWeapon(fragment)
	return w, ok
}

// matchWeapon also reports whether the fragment carried a +Npts suffix.
func matchWeapon(fragment string) (Weapon, bool, bool) {
	m := weaponRe.FindStringSubmatch(strings.TrimSpace(fragment))
	if m == nil {
		return Weapon{}, false, false
	}

	w := Weapon{
		Name:  strings.TrimSpace(m[1]),
		Range: Melee,
	}
	if m[2] != "" {
		r, _ := strconv.Atoi(m[2])
		if r == 0 {
			return Weapon{}, false, false
		}
		w.Range = Range(r)
	}
	w.Attacks, _ = strconv.Atoi(m[3])
	w.Rules, w.Values = ExtractRules(SplitByCommas(m[4]))

	priced := m[5] != ""
	if priced {
		w.Cost, _ = strconv.Atoi(m[5])
	}
	return w, priced, true
}
