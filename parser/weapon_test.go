package parser

import (
	"reflect"
	"testing"
)

func TestParseWeapon(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Weapon
	}{
		{
			name: "one-word name, two digit range",
			in:   "Pistol (12”, A2) +5pts",
			want: Weapon{Name: "Pistol", Range: 12, Attacks: 2, Rules: []string{}, Cost: 5},
		},
		{
			name: "straight quote",
			in:   `Pistol (6", A1) +5pts`,
			want: Weapon{Name: "Pistol", Range: 6, Attacks: 1, Rules: []string{}, Cost: 5},
		},
		{
			name: "two-word name",
			in:   "Storm Rifle (24”, A2) +15pts",
			want: Weapon{Name: "Storm Rifle", Range: 24, Attacks: 2, Rules: []string{}, Cost: 15},
		},
		{
			name: "hyphenated name",
			in:   "Twin Heavy Bio-Carbine (18”, A6) +25pts",
			want: Weapon{Name: "Twin Heavy Bio-Carbine", Range: 18, Attacks: 6, Rules: []string{}, Cost: 25},
		},
		{
			name: "melee",
			in:   "Razor Claws (A2) +10pts",
			want: Weapon{Name: "Razor Claws", Range: Melee, Attacks: 2, Rules: []string{}, Cost: 10},
		},
		{
			name: "unpriced",
			in:   "Rifle (24”, A1)",
			want: Weapon{Name: "Rifle", Range: 24, Attacks: 1, Rules: []string{}},
		},
		{
			name: "plain rule",
			in:   "Gravity Pistol (12”, A1, Rending) +5pts",
			want: Weapon{Name: "Gravity Pistol", Range: 12, Attacks: 1, Rules: []string{"Rending"}, Cost: 5},
		},
		{
			name: "named-value rule",
			in:   "Fusion Pistol (12”, A1, AP(2)) +5pts",
			want: Weapon{Name: "Fusion Pistol", Range: 12, Attacks: 1, Rules: []string{"AP"}, Values: map[string]int{"ap": 2}, Cost: 5},
		},
		{
			name: "many rules",
			in:   "BFG (48”, A12, AP(2), Blast(3), Deadly(6), Indirect, Rending) +100pts",
			want: Weapon{
				Name:    "BFG",
				Range:   48,
				Attacks: 12,
				Rules:   []string{"AP", "Blast", "Deadly", "Indirect", "Rending"},
				Values:  map[string]int{"ap": 2, "blast": 3, "deadly": 6},
				Cost:    100,
			},
		},
		{
			name: "melee with rules",
			in:   "Energy Fist (A2, AP(2))",
			want: Weapon{Name: "Energy Fist", Range: Melee, Attacks: 2, Rules: []string{"AP"}, Values: map[string]int{"ap": 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseWeapon(tt.in)
			if !ok {
				t.Fatalf("ParseWeapon(%q) did not match", tt.in)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWeapon(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseWeapon_notAWeapon(t *testing.T) {
	inputs := []string{
		"",
		"Jump Pack +10pts",
		"Bike (Fast, Impact(1)) +30pts",
		"Pistol (12”) +5pts",
		"Pistol (123”, A1)",
		"Pistol (12”, A1) Free",
		"Gun (0”, A1)",
		"Pistol (12”, A1) and CCW (A2) +5pts",
		"Rifle (24”, A1) x (A2)",
		"Rifle (24”, A1, AP(2) +5pts",
	}

	for _, in := range inputs {
		if w, ok := ParseWeapon(in); ok {
			t.Errorf("ParseWeapon(%q) matched %+v", in, w)
		}
	}
}

func TestWeapon_Value(t *testing.T) {
	w, _ := ParseWeapon("Plasma Rifle (24”, A1, AP(2))")
	if v, ok := w.Value("AP"); !ok || v != 2 {
		t.Errorf("Value(AP) = %d, %v", v, ok)
	}
	if _, ok := w.Value("Deadly"); ok {
		t.Error("Value(Deadly) reported present")
	}
	if !(Weapon{}).Range.IsMelee() {
		t.Error("zero range is not melee")
	}
}
