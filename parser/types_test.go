package parser

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestRange_yaml(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Ranged Range `yaml:"ranged"`
		Melee  Range `yaml:"melee"`
	}{Ranged: 24, Melee: Melee})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(out), "ranged: 24\nmelee: melee\n"; got != want {
		t.Errorf("yaml = %q, want %q", got, want)
	}

	var back struct {
		Ranged Range `yaml:"ranged"`
		Melee  Range `yaml:"melee"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back.Ranged != 24 || !back.Melee.IsMelee() {
		t.Errorf("unmarshal = %+v", back)
	}
}

func TestRange_json(t *testing.T) {
	w := Weapon{Name: "Claws", Range: Melee, Attacks: 2, Rules: []string{}}
	out, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `"range":"melee"`) {
		t.Errorf("json = %s", out)
	}

	var r Range
	if err := json.Unmarshal([]byte(`18`), &r); err != nil || r != 18 {
		t.Errorf("unmarshal 18 = %v, %v", r, err)
	}
	if err := json.Unmarshal([]byte(`"sideways"`), &r); err == nil {
		t.Error("expected error for bad range")
	}
}

func TestLimit_marshal(t *testing.T) {
	tests := []struct {
		limit Limit
		yaml  string
		json  string
	}{
		{Limit{Count: 2}, "2\n", "2"},
		{Limit{PerModel: true}, "models\n", `"models"`},
		{Limit{PerModel: true, Requirement: "Energy Fist"}, "models with Energy Fist\n", `"models with Energy Fist"`},
	}

	for _, tt := range tests {
		y, err := yaml.Marshal(tt.limit)
		if err != nil || string(y) != tt.yaml {
			t.Errorf("yaml.Marshal(%+v) = %q, %v", tt.limit, y, err)
		}
		j, err := json.Marshal(tt.limit)
		if err != nil || string(j) != tt.json {
			t.Errorf("json.Marshal(%+v) = %s, %v", tt.limit, j, err)
		}

		var fromYAML, fromJSON Limit
		if err := yaml.Unmarshal(y, &fromYAML); err != nil || !reflect.DeepEqual(fromYAML, tt.limit) {
			t.Errorf("yaml round trip of %+v = %+v, %v", tt.limit, fromYAML, err)
		}
		if err := json.Unmarshal(j, &fromJSON); err != nil || !reflect.DeepEqual(fromJSON, tt.limit) {
			t.Errorf("json round trip of %+v = %+v, %v", tt.limit, fromJSON, err)
		}
	}
}

func TestUpgradeGroup_yamlOmitsAbsentLimit(t *testing.T) {
	g, err := ParseUpgradeGroup("Replace any Razor Claws:")
	if err != nil {
		t.Fatal(err)
	}
	out, err := yaml.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "limit") {
		t.Errorf("yaml = %q, want no limit", out)
	}
}
