package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/cookpipe/core"
)

func TestCooklangBasic(t *testing.T) {
	src := `>> servings: 4
>> image: ![stack](stack.jpg)
Mix @flour{2%cups} and @salt in a #bowl.
Fry in the #frying pan{}.
`
	r, err := NewCooklang().Parse(src)
	require.NoError(t, err)

	assert.Equal(t, []core.Metadata{
		{Key: "servings", Value: "4"},
		{Key: "image", Value: "![stack](stack.jpg)"},
	}, r.Metadata)

	assert.Equal(t, []core.Ingredient{
		{Name: "flour", Amount: 2, Units: "cups", Quantity: 2},
		{Name: "salt"},
	}, r.Ingredients)
	assert.Equal(t, []core.Cookware{{Name: "bowl"}, {Name: "frying pan"}}, r.Cookware)

	require.Len(t, r.Steps, 2)
	assert.Equal(t, []core.LineBlock{
		core.TextBlock("Mix"),
		core.IngredientBlock(core.Ingredient{Name: "flour", Amount: 2, Units: "cups", Quantity: 2}),
		core.TextBlock("and"),
		core.IngredientBlock(core.Ingredient{Name: "salt"}),
		core.TextBlock("in a"),
		core.CookwareBlock(core.Cookware{Name: "bowl"}),
		core.TextBlock("."),
	}, r.Steps[0].Line)
}

func TestCooklangComments(t *testing.T) {
	src := "Boil @water{1%l} -- until hot\n[- resting\nis optional -]Serve."
	r, err := NewCooklang().Parse(src)
	require.NoError(t, err)

	require.Len(t, r.Steps, 2)
	assert.Len(t, r.Steps[0].Line, 2)
	assert.Equal(t, []core.LineBlock{core.TextBlock("Serve.")}, r.Steps[1].Line)
}

func TestCooklangDashesOutsideComments(t *testing.T) {
	src := ">> image: ![pasta](img/pasta--final.jpg)\n" +
		">> source: example -- kept\n" +
		"-- a whole-line comment\n" +
		"Use a non--stick #pan. -- trailing note\n"
	r, err := NewCooklang().Parse(src)
	require.NoError(t, err)

	assert.Equal(t, []string{"![pasta](img/pasta--final.jpg)"}, r.MetadataValues(core.MetaImage))
	assert.Equal(t, []string{"example -- kept"}, r.MetadataValues("source"))

	require.Len(t, r.Steps, 1)
	assert.Equal(t, []core.LineBlock{
		core.TextBlock("Use a non--stick"),
		core.CookwareBlock(core.Cookware{Name: "pan"}),
		core.TextBlock("."),
	}, r.Steps[0].Line)
}

func TestCooklangAmounts(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want core.Ingredient
	}{
		{"multi word", "@olive oil{2%tbsp}", core.Ingredient{Name: "olive oil", Amount: 2, Units: "tbsp", Quantity: 2}},
		{"fraction", "@milk{1/2%cup}", core.Ingredient{Name: "milk", Amount: 0.5, Units: "cup", Quantity: 0.5}},
		{"mixed number", "@flour{1 1/2%cups}", core.Ingredient{Name: "flour", Amount: 1.5, Units: "cups", Quantity: 1.5}},
		{"no units", "@eggs{3}", core.Ingredient{Name: "eggs", Amount: 3, Quantity: 3}},
		{"empty body", "@pepper{}", core.Ingredient{Name: "pepper"}},
		{"free text", "@salt{a pinch}", core.Ingredient{Name: "salt", Units: "a pinch"}},
		{"zero", "@water{0%ml}", core.Ingredient{Name: "water", Units: "ml"}},
		{"bad fraction", "@sugar{1/0%g}", core.Ingredient{Name: "sugar", Units: "1/0 g"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewCooklang().Parse(tt.src)
			require.NoError(t, err)
			require.Len(t, r.Ingredients, 1)
			assert.Equal(t, tt.want, r.Ingredients[0])
		})
	}
}

func TestCooklangTimers(t *testing.T) {
	r, err := NewCooklang().Parse("Bake for ~{10%minutes} then ~rest.")
	require.NoError(t, err)

	require.Len(t, r.Steps, 1)
	assert.Equal(t, []core.LineBlock{
		core.TextBlock("Bake for"),
		core.TextBlock("10 minutes"),
		core.TextBlock("then"),
		core.TextBlock("~rest"),
		core.TextBlock("."),
	}, r.Steps[0].Line)
}

func TestCooklangDeduplicates(t *testing.T) {
	r, err := NewCooklang().Parse("Add @salt.\nAdd more @salt{1%tsp} to the #pot.\nStir the #pot.")
	require.NoError(t, err)

	assert.Equal(t, []core.Ingredient{{Name: "salt"}}, r.Ingredients)
	assert.Equal(t, []core.Cookware{{Name: "pot"}}, r.Cookware)
	assert.Len(t, r.Steps, 3)
}

func TestCooklangEmptyAndMalformed(t *testing.T) {
	r, err := NewCooklang().Parse("")
	require.NoError(t, err)
	assert.Empty(t, r.Steps)

	r, err = NewCooklang().Parse(">> no separator\n@ alone")
	require.NoError(t, err)
	assert.Empty(t, r.Metadata)
	assert.Empty(t, r.Ingredients)
	require.Len(t, r.Steps, 1)
	assert.Equal(t, []core.LineBlock{core.TextBlock("@ alone")}, r.Steps[0].Line)
}

func TestModelYAML(t *testing.T) {
	src := `
ingredients:
  - name: flour
    amount: 2
    units: cups
    quantity: 2
cookware:
  - name: bowl
steps:
  - line:
      - kind: text
        text: Mix
      - kind: ingredient
        ingredient: {name: flour, amount: 2, units: cups, quantity: 2}
      - kind: sparkle
        text: ignored
      - kind: cookware
        cookware: {name: bowl}
metadata:
  - key: image
    value: "![x](x.jpg)"
`
	r, err := NewModel().Parse(src)
	require.NoError(t, err)

	assert.Equal(t, []core.Ingredient{{Name: "flour", Amount: 2, Units: "cups", Quantity: 2}}, r.Ingredients)
	assert.Equal(t, []core.Cookware{{Name: "bowl"}}, r.Cookware)
	require.Len(t, r.Steps, 1)
	line := r.Steps[0].Line
	require.Len(t, line, 4)
	assert.Equal(t, core.BlockText, line[0].Kind)
	assert.Equal(t, core.BlockIngredient, line[1].Kind)
	assert.Equal(t, "flour", line[1].Ingredient.Name)
	assert.Equal(t, core.BlockUnknown, line[2].Kind)
	assert.Equal(t, core.BlockCookware, line[3].Kind)
	assert.Equal(t, []string{"![x](x.jpg)"}, r.MetadataValues(core.MetaImage))
}

func TestModelJSON(t *testing.T) {
	src := `{"ingredients":[{"name":"salt"}],"steps":[{"line":[{"kind":"text","text":"Season"},{"kind":"ingredient","ingredient":{"name":"salt"}}]}]}`
	r, err := NewModel().Parse(src)
	require.NoError(t, err)

	assert.Equal(t, []core.Ingredient{{Name: "salt"}}, r.Ingredients)
	require.Len(t, r.Steps, 1)
	assert.Equal(t, core.TextBlock("Season"), r.Steps[0].Line[0])
}

func TestModelInvalid(t *testing.T) {
	_, err := NewModel().Parse("steps: [unterminated")
	assert.ErrorContains(t, err, "decoding recipe model")
}

func TestForSource(t *testing.T) {
	tests := []struct {
		path string
		want core.Parser
	}{
		{"soup.cook", &Cooklang{}},
		{"dir/Soup.COOKLANG", &Cooklang{}},
		{"soup.yaml", &Model{}},
		{"soup.yml", &Model{}},
		{"soup.json", &Model{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := ForSource(tt.path)
			require.NoError(t, err)
			assert.IsType(t, tt.want, p)
		})
	}

	_, err := ForSource("soup.txt")
	assert.ErrorIs(t, err, core.ErrUnsupportedSource)
}
