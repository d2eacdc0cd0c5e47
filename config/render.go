package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// RenderDefaultYAML returns a commented cookpipe.yaml holding every
// option at its default value. Dotted keys are grouped into sections.
func RenderDefaultYAML() (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	groups := make(map[string]*yaml.Node)

	for _, o := range GetConfigOptions() {
		parent, leaf := root, o.Key
		if group, key, ok := strings.Cut(o.Key, "."); ok {
			m, exists := groups[group]
			if !exists {
				m = &yaml.Node{Kind: yaml.MappingNode}
				root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: group}, m)
				groups[group] = m
			}
			parent, leaf = m, key
		}

		var val yaml.Node
		if err := val.Encode(o.Default); err != nil {
			return "", fmt.Errorf("encoding default for %s: %w", o.Key, err)
		}
		parent.Content = append(parent.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: leaf, HeadComment: o.Comment},
			&val,
		)
	}

	out, err := yaml.Marshal(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}})
	if err != nil {
		return "", fmt.Errorf("marshaling default config: %w", err)
	}
	return string(out), nil
}

// RenderEffectiveYAML returns the merged settings currently held by v.
func RenderEffectiveYAML(v *viper.Viper) (string, error) {
	out, err := yaml.Marshal(v.AllSettings())
	if err != nil {
		return "", fmt.Errorf("marshaling settings: %w", err)
	}
	return string(out), nil
}
