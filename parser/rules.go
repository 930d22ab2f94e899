package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// ruleValueRe matches a named-value rule such as AP(2) or Tough(+3).
var ruleValueRe = regexp.MustCompile(`^(\w+)\(([+-]?\d+)\)$`)

// knownRules are the special rules that can appear in a unit line. Matching
// is by prefix, so Tough(3) is recognized as Tough.
var knownRules = []string{
	"Aircraft",
	"Ambush",
	"Fast",
	"Fear",
	"Fearless",
	"Flying",
	"Furious",
	"Hero",
	"Immobile",
	"Impact",
	"Psychic",
	"Regeneration",
	"Relentless",
	"Scout",
	"Slow",
	"Stealth",
	"Strider",
	"Tough",
	"Transport",
}

// IsKnownRule reports whether token starts with one of the known rule names.
// TODO: match whole rule names; "Toughness" currently counts as Tough.
func IsKnownRule(token string) bool {
	for _, rule := range knownRules {
		if strings.HasPrefix(token, rule) {
			return true
		}
	}
	return false
}

// ExtractRules separates named-value rules from plain ones. AP(2) yields the
// rule name "AP" and the value ap=2; anything else is kept verbatim. The
// returned map is nil when no token carried a value.
func ExtractRules(tokens []string) ([]string, map[string]int) {
	rules := make([]string, 0, len(tokens))
	var values map[string]int

	for _, token := range tokens {
		m := ruleValueRe.FindStringSubmatch(token)
		if m == nil {
			rules = append(rules, token)
			continue
		}
		v, err := strconv.Atoi(m[2])
		if err != nil {
			rules = append(rules, token)
			continue
		}
		if values == nil {
			values = make(map[string]int)
		}
		rules = append(rules, m[1])
		values[strings.ToLower(m[1])] = v
	}
	return rules, values
}
