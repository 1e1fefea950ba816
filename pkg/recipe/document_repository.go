package recipe

import (
	"Dinner-For-Five/entities"
	"Dinner-For-Five/internal/utils/storage"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/gofiber/fiber/v2/log"
)

// documentRecipeRepository keeps the whole collection as one JSON array.
// Every call reads the document and mutations overwrite it. There is no
// locking, so concurrent writers can clobber each other.
type documentRecipeRepository struct {
	doc storage.Document
}

func NewDocumentRecipeRepository(doc storage.Document) RecipeRepository {
	return &documentRecipeRepository{doc: doc}
}

func (r *documentRecipeRepository) load(ctx context.Context) ([]*entities.Recipe, error) {
	data, err := r.doc.Read(ctx)
	if errors.Is(err, storage.ErrDocumentNotFound) {
		if err := r.save(ctx, nil); err != nil {
			return nil, err
		}
		return []*entities.Recipe{}, nil
	}
	if err != nil {
		return nil, err
	}

	recipes := make([]*entities.Recipe, 0)
	if err := json.Unmarshal(data, &recipes); err != nil {
		log.Warnf("recipe document %s is not a JSON array, treating as empty: %v", r.doc.Location(), err)
		return []*entities.Recipe{}, nil
	}
	// null elements carry no recipe
	return slices.DeleteFunc(recipes, func(recipe *entities.Recipe) bool {
		return recipe == nil
	}), nil
}

func (r *documentRecipeRepository) save(ctx context.Context, recipes []*entities.Recipe) error {
	if recipes == nil {
		recipes = []*entities.Recipe{}
	}
	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recipes: %w", err)
	}
	return r.doc.Write(ctx, data)
}

func (r *documentRecipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	recipes, err := r.load(ctx)
	if err != nil {
		log.Warnf("recipe document %s unreadable, listing as empty: %v", r.doc.Location(), err)
		return []*entities.Recipe{}, nil
	}
	slices.SortStableFunc(recipes, func(a, b *entities.Recipe) int {
		if c := cmp.Compare(a.SortOrder, b.SortOrder); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return recipes, nil
}

func (r *documentRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.CreateRecipes(ctx, []*entities.Recipe{recipe})
}

func (r *documentRecipeRepository) CreateRecipes(ctx context.Context, recipes []*entities.Recipe) error {
	existing, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, recipe := range recipes {
		recipe.Stamp()
	}
	return r.save(ctx, append(existing, recipes...))
}

func (r *documentRecipeRepository) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	recipes, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	before := len(recipes)
	recipes = slices.DeleteFunc(recipes, func(recipe *entities.Recipe) bool {
		return recipe.ID == id
	})
	if len(recipes) == before {
		return false, nil
	}
	return true, r.save(ctx, recipes)
}

func (r *documentRecipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	recipes, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(recipes)), nil
}

func (r *documentRecipeRepository) CountRecipesByCategory(ctx context.Context, category string) (int64, error) {
	recipes, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	for _, recipe := range recipes {
		if recipe.Category == category {
			count++
		}
	}
	return count, nil
}

func (r *documentRecipeRepository) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	recipes, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, recipe := range recipes {
		if recipe.ID == id {
			recipe.SortOrder = sortOrder
			return r.save(ctx, recipes)
		}
	}
	return nil
}
