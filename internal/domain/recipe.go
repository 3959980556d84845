package domain

import (
	"sort"
	"strings"
)

// Ingredient is one entry in a recipe's ingredient list.
// All fields are free text; Name is never empty for a parsed ingredient.
type Ingredient struct {
	Amount  string
	Measure string
	Name    string
}

// Equal reports structural equality.
func (i Ingredient) Equal(other Ingredient) bool {
	return i == other
}

// Recipe is the core entity: a named, ordered list of ingredients and
// instruction lines. Order is meaningful — instructions are followed in the
// order they are read.
type Recipe struct {
	Name         string
	Ingredients  []Ingredient
	Instructions []string
}

// Clone returns a deep copy. Mutating the copy (or its slices) never affects
// the original.
func (r Recipe) Clone() Recipe {
	out := Recipe{Name: r.Name}
	if r.Ingredients != nil {
		out.Ingredients = make([]Ingredient, len(r.Ingredients))
		copy(out.Ingredients, r.Ingredients)
	}
	if r.Instructions != nil {
		out.Instructions = make([]string, len(r.Instructions))
		copy(out.Instructions, r.Instructions)
	}
	return out
}

// Equal reports field-for-field structural equality, including order of
// ingredients and instructions.
func (r Recipe) Equal(other Recipe) bool {
	if r.Name != other.Name {
		return false
	}
	if len(r.Ingredients) != len(other.Ingredients) {
		return false
	}
	for i := range r.Ingredients {
		if r.Ingredients[i] != other.Ingredients[i] {
			return false
		}
	}
	if len(r.Instructions) != len(other.Instructions) {
		return false
	}
	for i := range r.Instructions {
		if r.Instructions[i] != other.Instructions[i] {
			return false
		}
	}
	return true
}

// Less orders recipes case-insensitively by name. Two recipes may share a
// name; Less treats them as equivalent and a stable sort keeps their order.
func (r Recipe) Less(other Recipe) bool {
	return strings.ToLower(r.Name) < strings.ToLower(other.Name)
}

// SortByName sorts recipes in place, stable, case-insensitively by name.
func SortByName(recipes []Recipe) {
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].Less(recipes[j])
	})
}
