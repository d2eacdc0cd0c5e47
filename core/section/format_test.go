package section

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/cookpipe/core"
)

func TestFormatIngredient(t *testing.T) {
	tests := []struct {
		name string
		in   core.Ingredient
		want string
	}{
		{"with quantity", core.Ingredient{Name: "flour", Amount: 2, Units: "cups", Quantity: 2}, "**2cups flour**"},
		{"fractional amount", core.Ingredient{Name: "sugar", Amount: 0.5, Units: "cup", Quantity: 0.5}, "**0.5cup sugar**"},
		{"dimensionless", core.Ingredient{Name: "eggs", Amount: 3, Quantity: 3}, "**3 eggs**"},
		{"zero quantity", core.Ingredient{Name: "salt", Amount: 1, Units: "pinch"}, "**salt**"},
		{"negative quantity", core.Ingredient{Name: "pepper", Quantity: -1}, "**pepper**"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIngredient(tt.in))
		})
	}
}

func TestFormatCookware(t *testing.T) {
	assert.Equal(t, "pot", FormatCookware(core.Cookware{Name: "pot"}))
	assert.Equal(t, "frying pan", FormatCookware(core.Cookware{Name: "frying pan"}))
}

func TestFormatStep(t *testing.T) {
	step := core.Step{Line: []core.LineBlock{
		core.TextBlock("Add"),
		core.IngredientBlock(core.Ingredient{Name: "flour", Amount: 2, Units: "cups", Quantity: 2}),
		core.TextBlock("and"),
		core.IngredientBlock(core.Ingredient{Name: "salt"}),
		core.TextBlock("to the"),
		core.CookwareBlock(core.Cookware{Name: "bowl"}),
	}}
	assert.Equal(t, " Add  **2cups flour**  and  **salt**  to the  *bowl* ", FormatStep(step))
}

func TestFormatStepSkipsUnknownBlocks(t *testing.T) {
	step := core.Step{Line: []core.LineBlock{
		core.TextBlock("Stir"),
		{Kind: core.BlockUnknown, Text: "ignored"},
		{Kind: core.BlockIngredient}, // no payload
		{Kind: core.BlockKind(99)},
		core.TextBlock("well"),
	}}
	assert.Equal(t, " Stir  well ", FormatStep(step))
}

func TestFormatStepEmpty(t *testing.T) {
	assert.Equal(t, "", FormatStep(core.Step{}))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2", FormatAmount(2))
	assert.Equal(t, "0.25", FormatAmount(0.25))
	assert.Equal(t, "1.5", FormatAmount(1.5))
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "## Steps", Heading(2, "Steps"))
	assert.Equal(t, "# Steps", Heading(0, "Steps"))
	assert.Equal(t, "###### Steps", Heading(9, "Steps"))
}
