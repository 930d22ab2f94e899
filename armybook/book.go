// Package armybook groups statblock lines into units and lettered upgrade
// packages, and reads and writes the YAML unit library.
package armybook

import (
	"github.com/mekane/Grimdark-Future-Rules-Parser/parser"
)

// Group is one upgrade group: its header and the options listed under it.
type Group struct {
	Header  string              `yaml:"header" json:"header"`
	Spec    parser.UpgradeGroup `yaml:"spec" json:"spec"`
	Options []parser.Upgrade    `yaml:"options" json:"options"`
}

// Package is a lettered set of upgrade groups referenced from unit lines.
type Package struct {
	Letter string  `yaml:"letter" json:"letter"`
	Groups []Group `yaml:"groups" json:"groups"`
}

type Book struct {
	Units    []parser.Unit `yaml:"units" json:"units"`
	Packages []Package     `yaml:"packages,omitempty" json:"packages,omitempty"`
}

func (b *Book) Package(letter string) (Package, bool) {
	if i := b.packageIndex(letter); i >= 0 {
		return b.Packages[i], true
	}
	return Package{}, false
}

func (b *Book) packageIndex(letter string) int {
	for i, p := range b.Packages {
		if p.Letter == letter {
			return i
		}
	}
	return -1
}

// PackagesFor returns the packages a unit references, in reference order.
// Letters without a package are skipped.
func (b *Book) PackagesFor(u parser.Unit) []Package {
	var out []Package
	for _, letter := range u.Upgrades {
		if p, ok := b.Package(letter); ok {
			out = append(out, p)
		}
	}
	return out
}
