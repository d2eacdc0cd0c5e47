package section

import (
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/cookpipe/core"
)

// FormatIngredient renders an ingredient entry. With an explicit quantity
// the amount and units are run together before the name ("2cups flour");
// otherwise only the name is shown. Both forms are bold.
func FormatIngredient(i core.Ingredient) string {
	if i.Quantity > 0 {
		return "**" + FormatAmount(i.Amount) + i.Units + " " + i.Name + "**"
	}
	return "**" + i.Name + "**"
}

// FormatCookware renders a cookware entry as its plain name.
func FormatCookware(c core.Cookware) string {
	return c.Name
}

// FormatStep concatenates the step's blocks, each padded by one space on
// both sides. Blocks of an unknown kind are skipped.
func FormatStep(s core.Step) string {
	var b strings.Builder
	for _, block := range s.Line {
		text, ok := FormatBlock(block)
		if !ok {
			continue
		}
		b.WriteString(" " + text + " ")
	}
	return b.String()
}

// FormatBlock renders a single line block. ok is false for blocks that
// carry an unknown kind or lack the payload their kind requires.
func FormatBlock(block core.LineBlock) (text string, ok bool) {
	switch block.Kind {
	case core.BlockText:
		return block.Text, true
	case core.BlockIngredient:
		if block.Ingredient == nil {
			return "", false
		}
		return FormatIngredient(*block.Ingredient), true
	case core.BlockCookware:
		if block.Cookware == nil {
			return "", false
		}
		return "*" + block.Cookware.Name + "*", true
	default:
		return "", false
	}
}

// FormatAmount prints an amount in its shortest decimal form: 2, 0.5, 1.25.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// Heading renders a markdown ATX heading at level, clamped to 1..6.
func Heading(level int, title string) string {
	level = max(1, min(level, 6))
	return strings.Repeat("#", level) + " " + title
}
