package models

import "gorm.io/datatypes"

// RecipeIngredient is one component of a drink recipe. The parts
// quantity is only exposed through the long representation.
type RecipeIngredient struct {
	Color string `json:"color"`
	Name  string `json:"name"`
	Parts int    `json:"parts"`
}

// Drink represents a menu item with a graphic recipe
type Drink struct {
	ID     uint                                  `json:"id" db:"id" gorm:"primaryKey"`
	Title  string                                `json:"title" db:"title" gorm:"type:text;not null;unique"`
	Recipe datatypes.JSONSlice[RecipeIngredient] `json:"recipe" db:"recipe"`
}

// ShortIngredient hides everything but the color from unprivileged callers.
type ShortIngredient struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// DrinkShort is the public representation of a drink.
type DrinkShort struct {
	ID     uint              `json:"id"`
	Title  string            `json:"title"`
	Recipe []ShortIngredient `json:"recipe"`
}

// DrinkLong is the permissioned representation including the full recipe.
type DrinkLong struct {
	ID     uint               `json:"id"`
	Title  string             `json:"title"`
	Recipe []RecipeIngredient `json:"recipe"`
}

// Short returns the public projection of the drink.
func (d Drink) Short() DrinkShort {
	recipe := make([]ShortIngredient, 0, len(d.Recipe))
	for _, ingredient := range d.Recipe {
		recipe = append(recipe, ShortIngredient{Color: ingredient.Color, Parts: ingredient.Parts})
	}
	return DrinkShort{ID: d.ID, Title: d.Title, Recipe: recipe}
}

// Long returns the full projection of the drink.
func (d Drink) Long() DrinkLong {
	return DrinkLong{ID: d.ID, Title: d.Title, Recipe: append([]RecipeIngredient(nil), d.Recipe...)}
}
