package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseUnit parses a single-line unit statblock:
//
//	Grunt [1] 5+ 6+ Rifle (24”, A1) Slow A, B 20pts
//
// Name, model count, quality and defense are read from the front; points,
// upgrade references and rules from the back. Whatever lies between is the
// equipment list.
func ParseUnit(line string) (Unit, error) {
	tokens := strings.Fields(line)
	front, back := 0, len(tokens)-1

	for front <= back && !strings.HasPrefix(tokens[front], "[") {
		front++
	}
	if front > back {
		return Unit{}, fmt.Errorf("%w: %q", ErrMissingModelCount, line)
	}
	if front == 0 {
		return Unit{}, fmt.Errorf("%w: %q", ErrMissingName, line)
	}

	unit := Unit{
		Name:      strings.Join(tokens[:front], " "),
		Equipment: []Weapon{},
		Rules:     []string{},
		Upgrades:  []string{},
	}

	var err error
	if unit.Models, err = parseModelCount(tokens[front]); err != nil {
		return Unit{}, err
	}
	front++

	if unit.Quality, err = parseStat(tokens, front, ErrInvalidQuality); err != nil {
		return Unit{}, err
	}
	front++
	if unit.Defense, err = parseStat(tokens, front, ErrInvalidDefense); err != nil {
		return Unit{}, err
	}
	front++

	if back < front || !strings.HasSuffix(tokens[back], "pts") {
		return Unit{}, fmt.Errorf("%w: %q", ErrInvalidPoints, lastToken(tokens, front, back))
	}
	if unit.Points, err = strconv.Atoi(strings.TrimSuffix(tokens[back], "pts")); err != nil || unit.Points < 0 {
		return Unit{}, fmt.Errorf("%w: %q", ErrInvalidPoints, tokens[back])
	}
	back--

	// Upgrade references run back until a known rule or the end of a
	// weapon profile.
	end := back
	for back >= front && !IsKnownRule(tokens[back]) && !endsProfile(tokens[back]) {
		back--
	}
	unit.Upgrades = collectTail(tokens[back+1 : end+1])

	// A rule token that closes a weapon profile, such as "Fear)", belongs to
	// the equipment.
	end = back
	for back >= front && IsKnownRule(tokens[back]) && !closesProfile(tokens[back]) {
		back--
	}
	unit.Rules = collectTail(tokens[back+1 : end+1])

	if back >= front {
		for _, segment := range SplitByCommas(strings.Join(tokens[front:back+1], " ")) {
			w, ok := ParseWeapon(segment)
			if !ok {
				return Unit{}, fmt.Errorf("%w: %q", ErrInvalidWeapons, segment)
			}
			unit.Equipment = append(unit.Equipment, w)
		}
	}

	return unit, nil
}

// parseModelCount reads "[5]".
func parseModelCount(token string) (int, error) {
	if !strings.HasPrefix(token, "[") || !strings.HasSuffix(token, "]") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidModels, token)
	}
	n, err := strconv.Atoi(token[1 : len(token)-1])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidModels, token)
	}
	return n, nil
}

// parseStat reads the leading integer of a stat such as "4+".
func parseStat(tokens []string, i int, fieldErr error) (int, error) {
	if i >= len(tokens) {
		return 0, fmt.Errorf("%w: %q", fieldErr, "")
	}
	n, ok := leadingInt(tokens[i])
	if !ok {
		return 0, fmt.Errorf("%w: %q", fieldErr, tokens[i])
	}
	return n, nil
}

func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

func endsProfile(token string) bool {
	return strings.HasSuffix(strings.TrimSuffix(token, ","), ")")
}

func closesProfile(token string) bool {
	return strings.Count(token, ")") > strings.Count(token, "(")
}

func lastToken(tokens []string, front, back int) string {
	if back < front {
		return ""
	}
	return tokens[back]
}

// collectTail drops "-" placeholders and trailing commas, keeping order.
func collectTail(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "-" {
			continue
		}
		if t = strings.TrimSuffix(t, ","); t != "" {
			out = append(out, t)
		}
	}
	return out
}
