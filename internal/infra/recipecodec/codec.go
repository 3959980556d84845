// Package recipecodec converts recipe collections to and from the
// line-oriented recipe file format:
//
//	[Recept]
//	<name>
//	[Ingredienser]
//	<amount>;<measure>;<name>
//	[Instruktioner]
//	<instruction>
//
// Parsing is strict: the first malformed line aborts the whole parse.
package recipecodec

import (
	"fmt"
	"strings"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
)

// Section marker tokens. These are fixed literals of the file format, not
// user-configurable.
const (
	MarkerRecipe       = "[Recept]"
	MarkerIngredients  = "[Ingredienser]"
	MarkerInstructions = "[Instruktioner]"
)

type parseState int

const (
	// stateIndefinite is the initial state, before any marker has been seen.
	stateIndefinite parseState = iota
	// stateNew expects exactly one recipe-name line.
	stateNew
	// stateIngredient expects zero or more amount;measure;name lines.
	stateIngredient
	// stateInstruction expects zero or more free-text instruction lines.
	stateInstruction
)

// Parse reads the full text of a recipe file into a collection, sorted
// case-insensitively by recipe name. Every line is trimmed before
// interpretation and blank lines are skipped in every state. On a malformed
// line Parse returns a KindFormat error and no recipes.
func Parse(text string) ([]domain.Recipe, error) {
	var recipes []domain.Recipe

	state := stateIndefinite
	nameSeen := false

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lineNo := i + 1

		// Markers switch state regardless of the current one.
		switch line {
		case MarkerRecipe:
			state = stateNew
			nameSeen = false
			continue
		case MarkerIngredients:
			state = stateIngredient
			continue
		case MarkerInstructions:
			state = stateInstruction
			continue
		}

		switch state {
		case stateIndefinite:
			return nil, parseErr(lineNo, "content before first %s marker", MarkerRecipe)

		case stateNew:
			if nameSeen {
				return nil, parseErr(lineNo, "second name line in a %s section", MarkerRecipe)
			}
			recipes = append(recipes, domain.Recipe{Name: line})
			nameSeen = true

		case stateIngredient:
			if len(recipes) == 0 {
				return nil, parseErr(lineNo, "ingredient line with no recipe started")
			}
			parts := strings.Split(line, ";")
			if len(parts) != 3 {
				return nil, parseErr(lineNo, "ingredient line needs 3 fields, got %d", len(parts))
			}
			if strings.TrimSpace(parts[2]) == "" {
				return nil, parseErr(lineNo, "ingredient name is empty")
			}
			last := len(recipes) - 1
			recipes[last].Ingredients = append(recipes[last].Ingredients, domain.Ingredient{
				Amount:  parts[0],
				Measure: parts[1],
				Name:    parts[2],
			})

		case stateInstruction:
			if len(recipes) == 0 {
				return nil, parseErr(lineNo, "instruction line with no recipe started")
			}
			last := len(recipes) - 1
			recipes[last].Instructions = append(recipes[last].Instructions, line)
		}
	}

	domain.SortByName(recipes)
	return recipes, nil
}

// Serialize writes recipes in the order given, one block per recipe.
// It never re-sorts and cannot fail: field values are free text and are not
// re-validated at write time.
func Serialize(recipes []domain.Recipe) string {
	var b strings.Builder

	for _, r := range recipes {
		b.WriteString(MarkerRecipe)
		b.WriteByte('\n')
		b.WriteString(r.Name)
		b.WriteByte('\n')

		b.WriteString(MarkerIngredients)
		b.WriteByte('\n')
		for _, ing := range r.Ingredients {
			b.WriteString(ing.Amount)
			b.WriteByte(';')
			b.WriteString(ing.Measure)
			b.WriteByte(';')
			b.WriteString(ing.Name)
			b.WriteByte('\n')
		}

		b.WriteString(MarkerInstructions)
		b.WriteByte('\n')
		for _, ins := range r.Instructions {
			b.WriteString(ins)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func parseErr(lineNo int, format string, args ...any) error {
	return &domain.OpError{
		Op:   "recipecodec.parse",
		Kind: domain.KindFormat,
		Err:  fmt.Errorf("line %d: %s", lineNo, fmt.Sprintf(format, args...)),
	}
}
