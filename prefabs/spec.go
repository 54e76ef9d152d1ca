package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec lays out the showcase widgets.
type SceneSpec struct {
	Name string `yaml:"name"`
	// Appear names the preset played on every node when the scene loads.
	Appear string `yaml:"appear"`
	// Stagger delays each node's appear by its index times this many seconds.
	Stagger float64    `yaml:"stagger"`
	Nodes   []NodeSpec `yaml:"nodes"`
}

type NodeSpec struct {
	Name      string     `yaml:"name"`
	Label     string     `yaml:"label"`
	X         float64    `yaml:"x"`
	Y         float64    `yaml:"y"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Fill      *YAMLColor `yaml:"fill"`
	TextColor *YAMLColor `yaml:"text_color"`
	Script    string     `yaml:"script"`
	Attention string     `yaml:"attention"`
	// HostUnits drives the node through a degree/byte-alpha sprite adapter.
	HostUnits bool `yaml:"host_units"`
}

func LoadScene(name string) (SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](scenePath(name))
	if err != nil {
		return SceneSpec{}, err
	}
	if spec.Name == "" {
		spec.Name = name
	}
	seen := make(map[string]struct{}, len(spec.Nodes))
	for i, n := range spec.Nodes {
		if n.Name == "" {
			return SceneSpec{}, fmt.Errorf("prefabs: scene %s: node %d has no name", name, i)
		}
		if _, dup := seen[n.Name]; dup {
			return SceneSpec{}, fmt.Errorf("prefabs: scene %s: duplicate node %q", name, n.Name)
		}
		seen[n.Name] = struct{}{}
		if n.Width <= 0 || n.Height <= 0 {
			return SceneSpec{}, fmt.Errorf("prefabs: scene %s: node %q needs a positive size", name, n.Name)
		}
	}
	return spec, nil
}

func scenePath(name string) string {
	return "scenes/" + strings.TrimSuffix(name, ".yaml") + ".yaml"
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns c as color.RGBA, or fallback when c is unset.
func (c *YAMLColor) RGBA8(fallback color.RGBA) color.RGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
