package parse

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/cookpipe/core"
)

// Model decodes a recipe model written as YAML or JSON. Block kinds are
// given by name ("text", "ingredient", "cookware"); unknown names decode
// to core.BlockUnknown and are skipped at render time.
type Model struct{}

// NewModel creates a Model parser.
func NewModel() *Model {
	return &Model{}
}

// Parse decodes source into a Recipe. JSON is accepted as YAML.
func (p *Model) Parse(source string) (*core.Recipe, error) {
	var r core.Recipe
	if err := yaml.Unmarshal([]byte(source), &r); err != nil {
		return nil, fmt.Errorf("decoding recipe model: %w", err)
	}
	return &r, nil
}

// ForSource picks the parser for a source path by its extension.
func ForSource(path string) (core.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cook", ".cooklang":
		return NewCooklang(), nil
	case ".yaml", ".yml", ".json":
		return NewModel(), nil
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedSource, path)
	}
}
