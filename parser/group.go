package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var numberNames = map[string]int{
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
}

// parseCount reads a count word ("two") or a plain number ("2").
func parseCount(word string) (int, bool) {
	if n, ok := numberNames[strings.ToLower(word)]; ok {
		return n, true
	}
	if n, err := strconv.Atoi(word); err == nil && n > 0 {
		return n, true
	}
	return 0, false
}

var anyModelRe = regexp.MustCompile(`(?i)^any model may (.+)$`)

const targetPattern = `([\w\-]+(?: [\w\-]+)?)`

// replacePatterns are tried in order; more targets first so a two-target
// pattern never claims a three-target header.
var replacePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?i:replace) (?:(all|any|one) )?` + targetPattern + `, ` + targetPattern + `,? and ` + targetPattern + `$`),
	regexp.MustCompile(`^(?i:replace) (?:(all|any|one) )?` + targetPattern + ` and ` + targetPattern + `$`),
	regexp.MustCompile(`^(?i:replace)(?: (all|any|one))?(?: ` + targetPattern + `)?$`),
}

type replaceMatch struct {
	count   string
	targets []string
}

func matchReplace(header string) (replaceMatch, bool) {
	for _, re := range replacePatterns {
		m := re.FindStringSubmatch(header)
		if m == nil {
			continue
		}
		rm := replaceMatch{count: m[1], targets: []string{}}
		for _, t := range m[2:] {
			if t != "" {
				rm.targets = append(rm.targets, t)
			}
		}
		return rm, true
	}
	return replaceMatch{}, false
}

// ParseUpgradeGroup parses an upgrade group header such as
// "Replace one Pistol:" or "Any model may take one Energy Fist attachment:".
func ParseUpgradeGroup(header string) (UpgradeGroup, error) {
	text := strings.TrimSuffix(strings.TrimSpace(header), ":")
	group := UpgradeGroup{}

	if m := anyModelRe.FindStringSubmatch(text); m != nil {
		group.Limit = ModelsLimit()
		text = m[1]
	}

	tokens := strings.Fields(text)
	action := ""
	if len(tokens) > 0 {
		action = tokens[0]
	}

	switch strings.ToLower(action) {
	case "replace":
		group.parseReplace(text, tokens)
	case "take":
		group.parseTake(tokens)
	case "upgrade":
		group.parseUpgrade(tokens)
	default:
		return UpgradeGroup{}, fmt.Errorf("%w %s", ErrUnknownAction, action)
	}
	return group, nil
}

func (g *UpgradeGroup) parseReplace(text string, tokens []string) {
	if m, ok := matchReplace(text); ok {
		switch m.count {
		case "all":
			g.ReplaceAll = make([]string, len(m.targets))
			for i, t := range m.targets {
				g.ReplaceAll[i] = makeSingular(t)
			}
			if g.Limit == nil {
				g.Limit = CountLimit(1)
			}
		case "any":
			g.Replace = m.targets
			g.Limit = nil
		default:
			g.Replace = m.targets
			if g.Limit == nil {
				g.Limit = CountLimit(1)
			}
		}
		return
	}

	zap.L().Debug("no replace pattern matched, tokenizing", zap.String("header", text))

	if len(tokens) > 3 && strings.EqualFold(tokens[1]+tokens[2], "upto") {
		if n, ok := parseCount(tokens[3]); ok {
			g.Limit = CountLimit(n)
		}
	}
	g.Replace = []string{}
	if len(tokens) > 4 {
		for _, t := range tokens[4:] {
			g.Replace = append(g.Replace, makeSingular(t))
		}
	}
}

func (g *UpgradeGroup) parseTake(tokens []string) {
	count := ""
	if len(tokens) > 1 {
		count = tokens[1]
	}
	var requires []string
	if len(tokens) > 2 {
		requires = tokens[2:]
	}

	if n := len(requires); n > 0 && strings.EqualFold(requires[n-1], "attachment") {
		requires = requires[:n-1]
		if g.Limit != nil && g.Limit.PerModel {
			g.Limit.Requirement = strings.Join(requires, " ")
		}
	}

	if g.Limit == nil {
		if n, ok := parseCount(count); ok {
			g.Limit = CountLimit(n)
		}
	}
	if len(requires) > 0 {
		g.Require = []string{strings.Join(requires, " ")}
	}
}

// parseUpgrade limits "Upgrade with" and "Upgrade one model with" to a
// single use. Other forms stay unlimited.
func (g *UpgradeGroup) parseUpgrade(tokens []string) {
	next := ""
	if len(tokens) > 1 {
		next = strings.ToLower(tokens[1])
	}
	nextTwo := ""
	if len(tokens) > 2 {
		nextTwo = next + " " + strings.ToLower(tokens[2])
	}

	if (next == "with" || nextTwo == "one model") && g.Limit == nil {
		g.Limit = CountLimit(1)
	}
}
