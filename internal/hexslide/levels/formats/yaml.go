// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name,omitempty"`
	Number        int               `yaml:"number"`
	Seed          uint64            `yaml:"seed"`
	Strategy      string            `yaml:"strategy,omitempty"`
	Shape         YAMLShape         `yaml:"shape"`
	Palette       []string          `yaml:"palette"`
	Pieces        []YAMLPiece       `yaml:"pieces"`
	Solution      []YAMLMove        `yaml:"solution,omitempty"`
	MoveLimit     int               `yaml:"move_limit"`
	RemovalTarget int               `yaml:"removal_target"`
	Removals      int               `yaml:"removals,omitempty"`
	Metadata      map[string]string `yaml:"metadata,omitempty"`
}

// YAMLShape is a grid template: '#' marks a cell, '.' a hole.
type YAMLShape struct {
	Name string   `yaml:"name,omitempty"`
	Rows []string `yaml:"rows"`
}

// YAMLPiece represents a single piece in YAML format.
type YAMLPiece struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Dir     string `yaml:"dir"`
	Color   int    `yaml:"color"`
	Special bool   `yaml:"special,omitempty"`
}

// YAMLMove represents one solution step in YAML format.
type YAMLMove struct {
	X   int    `yaml:"x"`
	Y   int    `yaml:"y"`
	Dir string `yaml:"dir"`
}

// Level represents a parsed level file.
type Level struct {
	ID       string
	Name     string
	Level    core.Level
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	shape, err := core.ShapeFromRows(yl.Shape.Name, yl.Shape.Rows)
	if err != nil {
		return Level{}, err
	}

	lvl := core.Level{
		Number:        yl.Number,
		Seed:          yl.Seed,
		Strategy:      core.Strategy(yl.Strategy),
		Shape:         shape,
		Palette:       yl.Palette,
		Pieces:        make([]core.Piece, 0, len(yl.Pieces)),
		Solution:      make([]core.Move, 0, len(yl.Solution)),
		MoveLimit:     yl.MoveLimit,
		RemovalTarget: yl.RemovalTarget,
		Removals:      yl.Removals,
	}

	for i, p := range yl.Pieces {
		d, ok := core.ParseDir(p.Dir)
		if !ok {
			return Level{}, fmt.Errorf("piece %d: unknown direction %q", i, p.Dir)
		}
		if p.Color < 0 || (len(yl.Palette) > 0 && p.Color >= len(yl.Palette)) {
			return Level{}, fmt.Errorf("piece %d: colour %d outside palette", i, p.Color)
		}
		lvl.Pieces = append(lvl.Pieces, core.Piece{
			Pos:     core.C(p.X, p.Y),
			Dir:     d,
			Color:   p.Color,
			Special: p.Special,
		})
	}

	for i, m := range yl.Solution {
		d, ok := core.ParseDir(m.Dir)
		if !ok {
			return Level{}, fmt.Errorf("move %d: unknown direction %q", i, m.Dir)
		}
		lvl.Solution = append(lvl.Solution, core.Move{Pos: core.C(m.X, m.Y), Dir: d})
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Level:    lvl,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML encodes a level in the file format read by ParseYAML.
func MarshalYAML(l Level) ([]byte, error) {
	lvl := l.Level
	yl := YAMLLevel{
		ID:            l.ID,
		Name:          l.Name,
		Number:        lvl.Number,
		Seed:          lvl.Seed,
		Strategy:      string(lvl.Strategy),
		Shape:         YAMLShape{Name: lvl.Shape.Name, Rows: lvl.Shape.Rows()},
		Palette:       lvl.Palette,
		Pieces:        make([]YAMLPiece, 0, len(lvl.Pieces)),
		Solution:      make([]YAMLMove, 0, len(lvl.Solution)),
		MoveLimit:     lvl.MoveLimit,
		RemovalTarget: lvl.RemovalTarget,
		Removals:      lvl.Removals,
		Metadata:      l.Metadata,
	}
	for _, p := range lvl.Pieces {
		yl.Pieces = append(yl.Pieces, YAMLPiece{
			X:       p.Pos.X,
			Y:       p.Pos.Y,
			Dir:     p.Dir.String(),
			Color:   p.Color,
			Special: p.Special,
		})
	}
	for _, m := range lvl.Solution {
		yl.Solution = append(yl.Solution, YAMLMove{X: m.Pos.X, Y: m.Pos.Y, Dir: m.Dir.String()})
	}

	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// ParseShapeYAML parses a standalone shape file.
func ParseShapeYAML(data []byte) (core.Shape, error) {
	var ys YAMLShape
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return core.Shape{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return core.ShapeFromRows(ys.Name, ys.Rows)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
