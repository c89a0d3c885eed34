package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset is everything about a level that is not its notes.
type Preset struct {
	File      string `yaml:"file"`
	Threshold int    `yaml:"threshold"`  // Score needed to clear the level
	FallSpeed int    `yaml:"fall_speed"` // Starting fall speed
	Combat    bool   `yaml:"combat"`     // Enemies steal notes
}

type Presets struct {
	Levels map[int]Preset `yaml:"levels"`
}

// DefaultPresets are used when no presets file exists.
func DefaultPresets() *Presets {
	return &Presets{Levels: map[int]Preset{
		1: {File: "level1.csv", Threshold: 150, FallSpeed: 2},
		2: {File: "level2.csv", Threshold: 400, FallSpeed: 2},
		3: {File: "level3.csv", Threshold: 350, FallSpeed: 2, Combat: true},
	}}
}

// LoadPresets reads a presets file, falling back to the defaults when the
// file does not exist.
func LoadPresets(file string) (*Presets, error) {
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultPresets(), nil
	} else if nil != err {
		return nil, fmt.Errorf("unable to read presets: %w", err)
	}
	return ParsePresets(data)
}

func ParsePresets(data []byte) (*Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); nil != err {
		return nil, fmt.Errorf("unable to parse presets: %w", err)
	}
	if len(p.Levels) == 0 {
		return nil, errors.New("presets define no levels")
	}
	for n, level := range p.Levels {
		if level.File == "" {
			return nil, fmt.Errorf("level %v has no file", n)
		}
		if level.FallSpeed < 1 {
			level.FallSpeed = 2
			p.Levels[n] = level
		}
	}
	return &p, nil
}

// Numbers returns the level numbers in order.
func (p *Presets) Numbers() []int {
	numbers := make([]int, 0, len(p.Levels))
	for n := range p.Levels {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

func (p *Presets) Get(number int) (Preset, error) {
	preset, ok := p.Levels[number]
	if !ok {
		return Preset{}, fmt.Errorf("no level %v", number)
	}
	return preset, nil
}
