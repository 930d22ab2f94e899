package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mekane/Grimdark-Future-Rules-Parser/armybook"
)

const testBook = `Battle Brothers [5] 3+ 4+ Assault Rifles (24”, A1), CCWs (A1) Fearless A 150pts
A
Replace one Pistol:
    Plasma Pistol (12”, A1, AP(2)) +5pts
Upgrade with:
    Jump Pack +10pts
`

func saveTestUnit(t *testing.T) string {
	t.Helper()
	book, err := armybook.NewAssembler(nil).Assemble(strings.NewReader(testBook))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if _, err := armybook.SaveUnit(dir, book.NewEntry(book.Units[0])); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadUnit(t *testing.T) {
	dir := saveTestUnit(t)

	for _, name := range []string{"Battle Brothers", "battle_brothers.yaml"} {
		e, err := loadUnit(dir, name)
		if err != nil {
			t.Errorf("loadUnit(%q): %v", name, err)
			continue
		}
		if e.Unit.Models != 5 {
			t.Errorf("loadUnit(%q) models = %d", name, e.Unit.Models)
		}
	}

	if _, err := loadUnit(dir, "Captain"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("missing unit error = %v", err)
	}
}

func TestPrintInfo(t *testing.T) {
	e, err := loadUnit(saveTestUnit(t), "Battle Brothers")
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	printInfo(&out, e)
	for _, want := range []string{
		"Unit: Battle Brothers [5] | Quality: 3+ | Defense: 4+ | Points: 150",
		`Weapon: Assault Rifles (24", A1)`,
		"Weapon: CCWs (A1)",
		"Rules: Fearless",
		"Package A:",
		"  Replace one Pistol (limit: 1)",
		`    Plasma Pistol (12", A1, AP(2)) +5pts`,
		"    Jump Pack +10pts",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestShowCommand(t *testing.T) {
	dir := saveTestUnit(t)
	out, _, err := runCmd(t, "--library", dir, "show", "Battle Brothers")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Unit: Battle Brothers") {
		t.Errorf("output:\n%s", out)
	}
}
