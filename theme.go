package backdrop

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

type ColorTableIndex int

const (
	ColorBackground ColorTableIndex = iota
	ColorSurface
	ColorAccent
	ColorAccentAlt
	ColorPrimary
	ColorShadow

	ColorTableSize
)

var colorTableNames = [ColorTableSize]string{
	ColorBackground: "background",
	ColorSurface:    "surface",
	ColorAccent:     "accent",
	ColorAccentAlt:  "accent-alt",
	ColorPrimary:    "primary",
	ColorShadow:     "shadow",
}

func (ci ColorTableIndex) String() string {
	if ci < 0 || ci >= ColorTableSize {
		return fmt.Sprintf("ColorTableIndex(%d)", int(ci))
	}
	return colorTableNames[ci]
}

// Theme is a table of colors used by every layer.
type Theme [ColorTableSize]color.NRGBA

func (t Theme) Color(ci ColorTableIndex) color.NRGBA {
	return t[ci]
}

// ParseTheme reads yaml map of color name to css color string.
// Missing entries keep default theme color.
// Unknown names are an error so typos don't go unnoticed.
func ParseTheme(yamlBytes []byte) (Theme, error) {
	theme := defaultTheme

	var tableMap map[string]string
	if err := yaml.Unmarshal(yamlBytes, &tableMap); err != nil {
		return theme, fmt.Errorf("failed to parse theme: %w", err)
	}

	stringToIndex := make(map[string]ColorTableIndex)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = i
	}

	for name, value := range tableMap {
		index, ok := stringToIndex[name]
		if !ok {
			return theme, fmt.Errorf("unknown theme color %q", name)
		}
		clr, err := ParseColorString(value)
		if err != nil {
			return theme, fmt.Errorf("theme color %q: %w", name, err)
		}
		theme[index] = clr
	}

	return theme, nil
}

func LoadTheme(path string) (Theme, error) {
	yamlBytes, err := os.ReadFile(path)
	if err != nil {
		return defaultTheme, fmt.Errorf("failed to read theme: %w", err)
	}
	return ParseTheme(yamlBytes)
}

func (t Theme) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	// keep table order instead of map order
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		node.Content = append(
			node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: i.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Value: ColorToString(t[i]), Style: yaml.DoubleQuotedStyle},
		)
	}

	return node, nil
}
