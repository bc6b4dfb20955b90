package palette

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlPalette is the on-disk YAML layout:
//
//	name: Pico
//	description: sixteen colors
//	colors:
//	  - "#000000"
//	  - {name: Red, color: "#FF004D"}
type yamlPalette struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Colors      []yamlSwatch `yaml:"colors"`
}

type yamlSwatch struct {
	Name  string `yaml:"name,omitempty"`
	Color string `yaml:"color"`
}

func (s *yamlSwatch) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		s.Color = value.Value
		return nil
	case yaml.MappingNode:
		type plain yamlSwatch
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*s = yamlSwatch(p)
		return nil
	}
	return fmt.Errorf("line %d: swatch must be a color string or a name/color map", value.Line)
}

// ParseYAML reads a YAML palette.
func ParseYAML(r io.Reader) (*Palette, error) {
	var doc yamlPalette
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return &Palette{}, nil
		}
		return nil, fmt.Errorf("decode palette: %w", err)
	}
	p := &Palette{Name: doc.Name, Description: doc.Description}
	for i, s := range doc.Colors {
		col, err := ParseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		p.Swatches = append(p.Swatches, Swatch{Name: s.Name, Color: col})
	}
	return p, nil
}

// WriteYAML writes p as YAML. Unnamed swatches are written as plain
// strings.
func WriteYAML(w io.Writer, p *Palette) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	addScalar := func(key, value string) {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value})
	}
	addScalar("name", p.Name)
	if p.Description != "" {
		addScalar("description", p.Description)
	}
	colors := &yaml.Node{Kind: yaml.SequenceNode}
	for _, s := range p.Swatches {
		hex := &yaml.Node{Kind: yaml.ScalarNode, Value: hexString(s), Style: yaml.DoubleQuotedStyle}
		if s.Name == "" {
			colors.Content = append(colors.Content, hex)
			continue
		}
		colors.Content = append(colors.Content, &yaml.Node{
			Kind:  yaml.MappingNode,
			Style: yaml.FlowStyle,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: "name"},
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Name},
				{Kind: yaml.ScalarNode, Value: "color"},
				hex,
			},
		})
	}
	root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "colors"}, colors)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func hexString(s Swatch) string {
	c := s.Color
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
