package recipe

import (
	"Dinner-For-Five/entities"
	"context"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		CreateRecipes(ctx context.Context, recipes []*entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) (bool, error)
		CountRecipes(ctx context.Context) (int64, error)
		CountRecipesByCategory(ctx context.Context, category string) (int64, error)
		UpdateSortOrder(ctx context.Context, id string, sortOrder int) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	recipes := make([]*entities.Recipe, 0)
	if err := r.db.WithContext(ctx).
		Order("sort_order asc").
		Order("created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) CreateRecipes(ctx context.Context, recipes []*entities.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&recipes).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) CountRecipesByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("category = ?", category).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("sort_order", sortOrder).Error
}
