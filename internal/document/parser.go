package document

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a JSON or YAML theme file from disk.
func Load(path string) (theme.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Document{}, tonalerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML theme document. The order in which colors are
// declared under "color" is preserved.
func Parse(data []byte, source string) (theme.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return theme.Document{}, tonalerrors.NewParseError(source, extractLine(err), err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return theme.NewDocument(nil), nil
	}
	if node.Kind != yaml.MappingNode {
		return theme.Document{}, tonalerrors.NewParseError(source, node.Line, fmt.Errorf("top level must be a mapping, got %s", kindName(node.Kind)))
	}

	var values map[string]any
	if err := node.Decode(&values); err != nil {
		return theme.Document{}, tonalerrors.NewParseError(source, extractLine(err), err)
	}

	return theme.NewDocument(values, declaredColors(node)...), nil
}

func declaredColors(mapping *yaml.Node) []string {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if key.Value != theme.ColorKey || value.Kind != yaml.MappingNode {
			continue
		}
		names := make([]string, 0, len(value.Content)/2)
		for j := 0; j+1 < len(value.Content); j += 2 {
			names = append(names, value.Content[j].Value)
		}
		return names
	}
	return nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "an unknown node"
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
