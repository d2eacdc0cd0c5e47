// Package parse implements the Parser interface for the recipe formats
// cookpipe reads: Cooklang source and a YAML/JSON dump of the recipe model.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/cookpipe/core"
)

var (
	blockCommentRegex = regexp.MustCompile(`(?s)\[-.*?(?:-\]|$)`)

	// tokenRegex matches @ingredient, #cookware and ~timer references.
	// Multi-word names need a {} body; single words end at whitespace or
	// punctuation.
	tokenRegex = regexp.MustCompile(`([@#~])(?:([^@#~{}\n]*?)\{([^}]*)\}|([^\s@#~{}.,;:!?()]+))`)
)

// Cooklang parses Cooklang recipe source.
//
// Every non-empty line is one step. Lines starting with ">>" are metadata.
// "--" at the start of a line or after whitespace starts a line comment,
// and "[- ... -]" is a block comment. Metadata values are never cut.
type Cooklang struct{}

// NewCooklang creates a Cooklang parser.
func NewCooklang() *Cooklang {
	return &Cooklang{}
}

// Parse builds a Recipe from source. It never rejects input: anything it
// cannot read as a reference is kept as step text.
func (p *Cooklang) Parse(source string) (*core.Recipe, error) {
	source = blockCommentRegex.ReplaceAllString(source, "")

	r := &core.Recipe{}
	seenIngr := make(map[string]bool)
	seenCookw := make(map[string]bool)

	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">>") {
			if meta, ok := parseMetadata(line); ok {
				r.Metadata = append(r.Metadata, meta)
			}
			continue
		}

		line = strings.TrimSpace(stripLineComment(line))
		if line == "" {
			continue
		}

		step := parseStep(line)
		for _, block := range step.Line {
			switch block.Kind {
			case core.BlockIngredient:
				if !seenIngr[block.Ingredient.Name] {
					seenIngr[block.Ingredient.Name] = true
					r.Ingredients = append(r.Ingredients, *block.Ingredient)
				}
			case core.BlockCookware:
				if !seenCookw[block.Cookware.Name] {
					seenCookw[block.Cookware.Name] = true
					r.Cookware = append(r.Cookware, *block.Cookware)
				}
			}
		}
		if len(step.Line) > 0 {
			r.Steps = append(r.Steps, step)
		}
	}
	return r, nil
}

// stripLineComment cuts line at the first "--" that starts the line or
// follows whitespace, so "pasta--final.jpg" survives.
func stripLineComment(line string) string {
	for i := 0; i+1 < len(line); i++ {
		if line[i] != '-' || line[i+1] != '-' {
			continue
		}
		if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
			return line[:i]
		}
	}
	return line
}

// parseMetadata reads ">> key: value".
func parseMetadata(line string) (core.Metadata, bool) {
	key, value, ok := strings.Cut(strings.TrimPrefix(line, ">>"), ":")
	if !ok {
		return core.Metadata{}, false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return core.Metadata{}, false
	}
	return core.Metadata{Key: key, Value: strings.TrimSpace(value)}, true
}

func parseStep(line string) core.Step {
	var step core.Step
	addText := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			step.Line = append(step.Line, core.TextBlock(s))
		}
	}

	last := 0
	for _, m := range tokenRegex.FindAllStringSubmatchIndex(line, -1) {
		addText(line[last:m[0]])
		last = m[1]

		sigil := line[m[2]:m[3]]
		var name, body string
		braced := m[6] >= 0
		if braced {
			name = strings.TrimSpace(line[m[4]:m[5]])
			body = line[m[6]:m[7]]
		} else {
			name = line[m[8]:m[9]]
		}

		switch sigil {
		case "@":
			if name == "" {
				addText(line[m[0]:m[1]])
				continue
			}
			step.Line = append(step.Line, core.IngredientBlock(parseIngredient(name, body)))
		case "#":
			if name == "" {
				addText(line[m[0]:m[1]])
				continue
			}
			step.Line = append(step.Line, core.CookwareBlock(core.Cookware{Name: name}))
		case "~":
			if !braced {
				addText(line[m[0]:m[1]])
				continue
			}
			addText(timerText(body))
		}
	}
	addText(line[last:])
	return step
}

// parseIngredient reads the "amount%units" body of an ingredient.
func parseIngredient(name, body string) core.Ingredient {
	ingr := core.Ingredient{Name: name}
	amountStr, units, _ := strings.Cut(body, "%")
	amountStr = strings.TrimSpace(amountStr)
	units = strings.TrimSpace(units)
	if amountStr == "" {
		return ingr
	}
	amount, ok := parseAmount(amountStr)
	if !ok {
		// Free-text amounts such as "a pinch" have no numeric quantity.
		ingr.Units = strings.TrimSpace(amountStr + " " + units)
		return ingr
	}
	ingr.Amount = amount
	ingr.Units = units
	if amount > 0 {
		ingr.Quantity = amount
	}
	return ingr
}

// parseAmount accepts decimals ("1.5"), fractions ("1/2") and mixed
// numbers ("1 1/2").
func parseAmount(s string) (float64, bool) {
	var total float64
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, false
	}
	for _, f := range fields {
		if num, den, isFrac := strings.Cut(f, "/"); isFrac {
			n, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
			d, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
			if err1 != nil || err2 != nil || d == 0 {
				return 0, false
			}
			total += n / d
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, false
		}
		total += v
	}
	return total, true
}

// timerText renders a timer body ("10%minutes") as step text.
func timerText(body string) string {
	amount, units, _ := strings.Cut(body, "%")
	return strings.TrimSpace(strings.TrimSpace(amount) + " " + strings.TrimSpace(units))
}
