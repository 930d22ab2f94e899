package armybook

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/mekane/Grimdark-Future-Rules-Parser/parser"
)

// Entry is one unit library file: the unit and the upgrade packages it
// references.
type Entry struct {
	Unit     parser.Unit `yaml:",inline"`
	Packages []Package   `yaml:"packages,omitempty"`
}

// NewEntry resolves the unit's upgrade letters against the book.
func (b *Book) NewEntry(u parser.Unit) Entry {
	return Entry{Unit: u, Packages: b.PackagesFor(u)}
}

var nonWordRe = regexp.MustCompile(`[^a-z0-9]+`)

// FileName turns "Battle Brothers" into "battle_brothers.yaml".
func FileName(unitName string) string {
	name := nonWordRe.ReplaceAllString(strings.ToLower(unitName), "_")
	return strings.Trim(name, "_") + ".yaml"
}

// SaveUnit writes the entry into dir and returns the file path.
func SaveUnit(dir string, e Entry) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	data, err := yaml.Marshal(e)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(e.Unit.Name))
	return path, os.WriteFile(path, data, 0644)
}

func LoadUnit(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, err
	}
	var e Entry
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return e, nil
}

// Combine joins two entries into one, e.g. a hero joined to a squad.
// Models, points, equipment and packages add up; rules and upgrade letters
// are merged without duplicates. Quality and defense come from the first.
func Combine(a, b Entry) Entry {
	u := parser.Unit{
		Name:      a.Unit.Name + " + " + b.Unit.Name,
		Models:    a.Unit.Models + b.Unit.Models,
		Quality:   a.Unit.Quality,
		Defense:   a.Unit.Defense,
		Equipment: append(append([]parser.Weapon{}, a.Unit.Equipment...), b.Unit.Equipment...),
		Rules:     mergeUnique(a.Unit.Rules, b.Unit.Rules),
		Upgrades:  mergeUnique(a.Unit.Upgrades, b.Unit.Upgrades),
		Points:    a.Unit.Points + b.Unit.Points,
	}

	packages := append([]Package{}, a.Packages...)
	for _, p := range b.Packages {
		if !hasPackage(packages, p.Letter) {
			packages = append(packages, p)
		}
	}
	return Entry{Unit: u, Packages: packages}
}

func mergeUnique(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := []string{}
	for _, s := range append(append([]string{}, a...), b...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func hasPackage(packages []Package, letter string) bool {
	for _, p := range packages {
		if p.Letter == letter {
			return true
		}
	}
	return false
}
