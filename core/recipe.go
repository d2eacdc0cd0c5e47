// Package core — recipe model.
// These types are produced by a Parser and treated as immutable by every
// downstream stage.
package core

import (
	"fmt"
	"strings"
)

// MetaImage is the reserved metadata key whose values are image markdown.
const MetaImage = "image"

// Recipe is the aggregate root handed to the section renderer.
type Recipe struct {
	Ingredients []Ingredient `yaml:"ingredients" json:"ingredients"`
	Cookware    []Cookware   `yaml:"cookware" json:"cookware"`
	Steps       []Step       `yaml:"steps" json:"steps"`
	Metadata    []Metadata   `yaml:"metadata" json:"metadata"`
}

// Ingredient is a named ingredient with an optional amount.
// Quantity > 0 signals that Amount and Units were given explicitly.
type Ingredient struct {
	Name     string  `yaml:"name" json:"name"`
	Amount   float64 `yaml:"amount" json:"amount"`
	Units    string  `yaml:"units" json:"units"`
	Quantity float64 `yaml:"quantity" json:"quantity"`
}

// Cookware is a piece of equipment referenced by the recipe.
type Cookware struct {
	Name string `yaml:"name" json:"name"`
}

// Step is one instruction, made of line blocks in rendering order.
type Step struct {
	Line []LineBlock `yaml:"line" json:"line"`
}

// Metadata is a single key/value pair in declared order.
type Metadata struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// BlockKind tags the variant held by a LineBlock.
type BlockKind int

const (
	// BlockUnknown is the zero kind. Renderers skip it.
	BlockUnknown BlockKind = iota
	// BlockText is a plain text span.
	BlockText
	// BlockIngredient references an Ingredient.
	BlockIngredient
	// BlockCookware references a Cookware item.
	BlockCookware
)

var blockKindNames = map[BlockKind]string{
	BlockText:       "text",
	BlockIngredient: "ingredient",
	BlockCookware:   "cookware",
}

// String returns the lowercase name of the kind.
func (k BlockKind) String() string {
	if name, ok := blockKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind by name. Unrecognised names decode to
// BlockUnknown rather than failing, so one odd block cannot sink a recipe.
func (k *BlockKind) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for kind, n := range blockKindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	*k = BlockUnknown
	return nil
}

// LineBlock is a tagged union over text, ingredient and cookware.
// Only the field matching Kind is meaningful.
type LineBlock struct {
	Kind       BlockKind   `yaml:"kind" json:"kind"`
	Text       string      `yaml:"text,omitempty" json:"text,omitempty"`
	Ingredient *Ingredient `yaml:"ingredient,omitempty" json:"ingredient,omitempty"`
	Cookware   *Cookware   `yaml:"cookware,omitempty" json:"cookware,omitempty"`
}

// TextBlock builds a text line block.
func TextBlock(s string) LineBlock {
	return LineBlock{Kind: BlockText, Text: s}
}

// IngredientBlock builds an ingredient line block.
func IngredientBlock(i Ingredient) LineBlock {
	return LineBlock{Kind: BlockIngredient, Ingredient: &i}
}

// CookwareBlock builds a cookware line block.
func CookwareBlock(c Cookware) LineBlock {
	return LineBlock{Kind: BlockCookware, Cookware: &c}
}

// MetadataValues returns the values stored under key, in declared order.
func (r *Recipe) MetadataValues(key string) []string {
	var out []string
	for _, m := range r.Metadata {
		if m.Key == key {
			out = append(out, m.Value)
		}
	}
	return out
}
