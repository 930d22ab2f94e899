package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mekane/Grimdark-Future-Rules-Parser/armybook"
	"github.com/mekane/Grimdark-Future-Rules-Parser/parser"
)

// loadUnit reads a library entry. name is either a path to a file or a unit
// name / file name inside libraryDir.
func loadUnit(libraryDir, name string) (armybook.Entry, error) {
	if _, err := os.Stat(name); err == nil {
		return armybook.LoadUnit(name)
	}

	file := name
	if !strings.HasSuffix(file, ".yaml") {
		file = armybook.FileName(name)
	}
	entry, err := armybook.LoadUnit(filepath.Join(libraryDir, file))
	if errors.Is(err, fs.ErrNotExist) {
		return entry, fmt.Errorf("unit %q not found in %s", name, libraryDir)
	}
	return entry, err
}

func printInfo(w io.Writer, e armybook.Entry) {
	u := e.Unit
	fmt.Fprintf(w, "Unit: %s [%d] | Quality: %d+ | Defense: %d+ | Points: %d\n",
		u.Name, u.Models, u.Quality, u.Defense, u.Points)
	for _, weapon := range u.Equipment {
		fmt.Fprintf(w, "Weapon: %s\n", describeWeapon(weapon))
	}
	if len(u.Rules) > 0 {
		fmt.Fprintf(w, "Rules: %s\n", strings.Join(u.Rules, ", "))
	}

	for _, p := range e.Packages {
		fmt.Fprintf(w, "Package %s:\n", p.Letter)
		for _, g := range p.Groups {
			limit := "any"
			if g.Spec.Limit != nil {
				limit = g.Spec.Limit.String()
			}
			fmt.Fprintf(w, "  %s (limit: %s)\n", g.Header, limit)
			for _, o := range g.Options {
				fmt.Fprintf(w, "    %s %s\n", describeUpgrade(o), describeCost(o.Cost))
			}
		}
	}
}

func describeWeapon(w parser.Weapon) string {
	parts := []string{}
	if !w.Range.IsMelee() {
		parts = append(parts, w.Range.String())
	}
	parts = append(parts, fmt.Sprintf("A%d", w.Attacks))
	for _, rule := range w.Rules {
		if v, ok := w.Value(rule); ok {
			rule = fmt.Sprintf("%s(%d)", rule, v)
		}
		parts = append(parts, rule)
	}
	return fmt.Sprintf("%s (%s)", w.Name, strings.Join(parts, ", "))
}

func describeUpgrade(o parser.Upgrade) string {
	items := []string{}
	for _, rule := range o.Rules {
		if v, ok := o.Value(rule); ok {
			rule = fmt.Sprintf("%s(%d)", rule, v)
		}
		items = append(items, rule)
	}
	for _, w := range o.Weapons {
		items = append(items, describeWeapon(w))
	}

	switch {
	case o.Name == "":
		return strings.Join(items, " and ")
	case len(items) == 0:
		return o.Name
	default:
		return fmt.Sprintf("%s (%s)", o.Name, strings.Join(items, ", "))
	}
}

func describeCost(cost int) string {
	if cost == 0 {
		return "Free"
	}
	return fmt.Sprintf("+%dpts", cost)
}
