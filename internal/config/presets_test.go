package config

import (
	"os"
	"path/filepath"
	"testing"
)

const presetsYAML = `
levels:
  1:
    file: easy.csv
    threshold: 100
  7:
    file: hard.csv
    threshold: 900
    fall_speed: 4
    combat: true
`

func TestParsePresets(t *testing.T) {
	p, err := ParsePresets([]byte(presetsYAML))
	if nil != err {
		t.Fatal(err)
	}

	numbers := p.Numbers()
	if len(numbers) != 2 || numbers[0] != 1 || numbers[1] != 7 {
		t.Fatalf("numbers %v", numbers)
	}

	expected := map[int]Preset{
		1: {File: "easy.csv", Threshold: 100, FallSpeed: 2},
		7: {File: "hard.csv", Threshold: 900, FallSpeed: 4, Combat: true},
	}
	for n, e := range expected {
		preset, err := p.Get(n)
		if nil != err || preset != e {
			t.Log("level   ", n)
			t.Log("out     ", preset, err)
			t.Log("expected", e)
			t.Fail()
		}
	}

	if _, err := p.Get(2); nil == err {
		t.Error("missing level must fail")
	}
}

var badPresets = []string{
	"levels: {}",
	"levels:\n  1:\n    threshold: 5\n",
	"levels: [",
}

func TestParsePresetsErrors(t *testing.T) {
	for _, in := range badPresets {
		if _, err := ParsePresets([]byte(in)); nil == err {
			t.Errorf("%q parsed", in)
		}
	}
}

func TestLoadPresetsDefaults(t *testing.T) {
	p, err := LoadPresets(filepath.Join(t.TempDir(), "presets.yaml"))
	if nil != err {
		t.Fatal(err)
	}
	three, err := p.Get(3)
	if nil != err || !three.Combat || three.Threshold != 350 {
		t.Errorf("level 3 %+v %v", three, err)
	}

	file := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(file, []byte(presetsYAML), 0644); nil != err {
		t.Fatal(err)
	}
	p, err = LoadPresets(file)
	if nil != err || len(p.Levels) != 2 {
		t.Errorf("loaded %+v %v", p, err)
	}
}

func TestShippedPresetsMatchDefaults(t *testing.T) {
	p, err := LoadPresets(filepath.Join("..", "..", "levels", "presets.yaml"))
	if nil != err {
		t.Fatal(err)
	}
	defaults := DefaultPresets()
	for _, n := range defaults.Numbers() {
		got, err := p.Get(n)
		if nil != err {
			t.Fatal(err)
		}
		if got != defaults.Levels[n] {
			t.Logf("level %v", n)
			t.Logf("got      %+v", got)
			t.Logf("expected %+v", defaults.Levels[n])
			t.Fail()
		}
	}
}
