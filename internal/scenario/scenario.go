// Package scenario loads YAML descriptions of a starting field and a list
// of piece placements, and replays them through the automaton.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is the YAML structure of a scenario file.
type Scenario struct {
	Name       string      `yaml:"name"`
	Size       Size        `yaml:"size"`
	Rows       []string    `yaml:"rows,omitempty"`
	Cells      []Cell      `yaml:"cells,omitempty"`
	Placements []Placement `yaml:"placements,omitempty"`
	MaxTicks   int         `yaml:"max_ticks,omitempty"`

	// SettleStart ticks the starting field to rest before the first
	// placement. Unset means true.
	SettleStart *bool   `yaml:"settle_start,omitempty"`
	Expect      *Expect `yaml:"expect,omitempty"`

	FilePath string `yaml:"-"`
}

// Size is the field size.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Cell is a single locked block.
type Cell struct {
	X int    `yaml:"x"`
	Y int    `yaml:"y"`
	C string `yaml:"c"`
}

// Placement drops one piece. Each placement is settled before the next.
type Placement struct {
	Shape     string `yaml:"shape"`
	Color     string `yaml:"color"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Turns     int    `yaml:"turns,omitempty"`
	Direction string `yaml:"direction,omitempty"` // cw (default) or ccw
	Masked    bool   `yaml:"masked,omitempty"`
}

// Expect holds optional assertions about the final field.
type Expect struct {
	ContentHeight *int     `yaml:"content_height,omitempty"`
	Filled        *int     `yaml:"filled,omitempty"`
	Rows          []string `yaml:"rows,omitempty"` // bottom-aligned, same alphabet as Scenario.Rows
}

func (s *Scenario) settlesStart() bool {
	return s.SettleStart == nil || *s.SettleStart
}

// DefaultMaxTicks bounds each placement when the file does not set max_ticks.
const DefaultMaxTicks = 1000

// Parse decodes a scenario from YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: yaml unmarshal: %w", err)
	}
	if s.MaxTicks <= 0 {
		s.MaxTicks = DefaultMaxTicks
	}
	if s.Size.W <= 0 || s.Size.H <= 0 {
		return nil, fmt.Errorf("scenario %q: size %dx%d must be positive", s.Name, s.Size.W, s.Size.H)
	}
	return &s, nil
}

// Load reads a scenario file. The name defaults to the file's base name.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	s.FilePath = path
	return s, nil
}

// LoadDir loads every .yaml and .yml file under root, sorted by name.
func LoadDir(root string) ([]*Scenario, error) {
	var out []*Scenario
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}
		s, err := Load(path)
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
