package domain

import (
	"Dinner-For-Five/entities"
	"errors"
)

const (
	// SortOrderStep spaces sort orders so items can later be slotted in between.
	SortOrderStep = 1000
)

var (
	MessageSuccessGetRecipes     = "success get recipes"
	MessageSuccessCreateRecipe   = "recipe created successfully"
	MessageSuccessDeleteRecipe   = "recipe deleted successfully"
	MessageSuccessReorderRecipes = "recipes reordered successfully"
	MessageSuccessSeedRecipes    = "recipes seeded successfully"
	MessageSkippedSeedRecipes    = "recipes already present, seed skipped"

	MessageFailedGetRecipes     = "failed to get recipes"
	MessageFailedCreateRecipe   = "failed to create recipe"
	MessageFailedDeleteRecipe   = "failed to delete recipe"
	MessageFailedReorderRecipes = "failed to reorder recipes"
	MessageFailedSeedRecipes    = "failed to seed recipes"
	MessageRecipeNotFound       = "Recipe not found"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrReorderFailed  = errors.New("reorder failed")
)

type (
	// CreateRecipeRequest carries the client supplied fields. Generated fields
	// (id, createdAt, sortOrder) are never read from the request.
	CreateRecipeRequest struct {
		Category     string            `json:"category"`
		Name         string            `json:"name"`
		Time         entities.Freeform `json:"time"`
		Ingredients  entities.Freeform `json:"ingredients"`
		Instructions entities.Freeform `json:"instructions"`
	}

	ReorderItem struct {
		ID        string `json:"id"`
		SortOrder int    `json:"sortOrder"`
	}

	SeedResponse struct {
		Seeded  bool `json:"seeded,omitempty"`
		Skipped bool `json:"skipped,omitempty"`
		Count   int  `json:"count"`
	}
)
