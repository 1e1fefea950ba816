package recipe

import (
	"Dinner-For-Five/domain"
	"Dinner-For-Five/entities"
	"context"
	"errors"
	"fmt"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		ReorderRecipes(ctx context.Context, items []domain.ReorderItem) error
		SeedRecipes(ctx context.Context, defaults []*entities.Recipe) (domain.SeedResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	observe("list", err)
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error) {
	recipe, err := s.createRecipe(ctx, req)
	observe("create", err)
	return recipe, err
}

func (s *recipeService) createRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error) {
	inCategory, err := s.recipeRepository.CountRecipesByCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	recipe := &entities.Recipe{
		Category:     req.Category,
		Name:         req.Name,
		Time:         req.Time,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		SortOrder:    int(inCategory)*domain.SortOrderStep + domain.SortOrderStep,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	found, err := s.recipeRepository.DeleteRecipe(ctx, id)
	if err != nil {
		observe("delete", err)
		return err
	}
	if !found {
		recipeOperationsTotal.WithLabelValues("delete", outcomeNotFound).Inc()
		return domain.ErrRecipeNotFound
	}
	observe("delete", nil)
	return nil
}

// ReorderRecipes issues every update even when an earlier one fails. Updates
// that succeeded are kept.
func (s *recipeService) ReorderRecipes(ctx context.Context, items []domain.ReorderItem) error {
	var errs []error
	for _, item := range items {
		if err := s.recipeRepository.UpdateSortOrder(ctx, item.ID, item.SortOrder); err != nil {
			errs = append(errs, fmt.Errorf("recipe %s: %w", item.ID, err))
		}
	}

	if len(errs) > 0 {
		err := fmt.Errorf("%w: %w", domain.ErrReorderFailed, errors.Join(errs...))
		observe("reorder", err)
		return err
	}
	observe("reorder", nil)
	return nil
}

func (s *recipeService) SeedRecipes(ctx context.Context, defaults []*entities.Recipe) (domain.SeedResponse, error) {
	existing, err := s.recipeRepository.CountRecipes(ctx)
	if err != nil {
		observe("seed", err)
		return domain.SeedResponse{}, err
	}
	if existing > 0 {
		recipeOperationsTotal.WithLabelValues("seed", outcomeSkipped).Inc()
		return domain.SeedResponse{Skipped: true, Count: int(existing)}, nil
	}

	recipes := make([]*entities.Recipe, 0, len(defaults))
	for i, d := range defaults {
		if d == nil {
			continue
		}
		recipes = append(recipes, &entities.Recipe{
			Category:     d.Category,
			Name:         d.Name,
			Time:         d.Time,
			Ingredients:  d.Ingredients,
			Instructions: d.Instructions,
			SortOrder:    (i + 1) * domain.SortOrderStep,
		})
	}

	if err := s.recipeRepository.CreateRecipes(ctx, recipes); err != nil {
		observe("seed", err)
		return domain.SeedResponse{}, err
	}
	observe("seed", nil)
	recipesSeededTotal.Add(float64(len(recipes)))
	return domain.SeedResponse{Seeded: true, Count: len(recipes)}, nil
}
