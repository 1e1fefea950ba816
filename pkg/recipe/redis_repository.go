package recipe

import (
	"Dinner-For-Five/entities"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"
)

// redisRecipeRepository stores each recipe as JSON in one hash and keeps a
// set of ids per category so category counts do not scan the hash.
type redisRecipeRepository struct {
	rdb    *redis.Client
	prefix string
}

type RedisRepositoryOption func(*redisRecipeRepository)

func WithRedisPrefix(prefix string) RedisRepositoryOption {
	return func(r *redisRecipeRepository) {
		if p := strings.Trim(prefix, ":"); p != "" {
			r.prefix = p
		}
	}
}

func NewRedisRecipeRepository(rdb *redis.Client, opts ...RedisRepositoryOption) RecipeRepository {
	r := &redisRecipeRepository{
		rdb:    rdb,
		prefix: "recipes",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *redisRecipeRepository) dataKey() string {
	return r.prefix + ":data"
}

func (r *redisRecipeRepository) categoryKey(category string) string {
	return r.prefix + ":category:" + category
}

func (r *redisRecipeRepository) get(ctx context.Context, id string) (*entities.Recipe, error) {
	raw, err := r.rdb.HGet(ctx, r.dataKey(), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var recipe entities.Recipe
	if err := json.Unmarshal(raw, &recipe); err != nil {
		return nil, fmt.Errorf("decode recipe %s: %w", id, err)
	}
	return &recipe, nil
}

func (r *redisRecipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	values, err := r.rdb.HVals(ctx, r.dataKey()).Result()
	if err != nil {
		return nil, err
	}

	recipes := make([]*entities.Recipe, 0, len(values))
	for _, v := range values {
		var recipe entities.Recipe
		if err := json.Unmarshal([]byte(v), &recipe); err != nil {
			return nil, fmt.Errorf("decode recipe: %w", err)
		}
		recipes = append(recipes, &recipe)
	}

	slices.SortFunc(recipes, func(a, b *entities.Recipe) int {
		if c := cmp.Compare(a.SortOrder, b.SortOrder); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return recipes, nil
}

func (r *redisRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.CreateRecipes(ctx, []*entities.Recipe{recipe})
}

func (r *redisRecipeRepository) CreateRecipes(ctx context.Context, recipes []*entities.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	pipe := r.rdb.Pipeline()
	for _, recipe := range recipes {
		recipe.Stamp()
		raw, err := json.Marshal(recipe)
		if err != nil {
			return fmt.Errorf("encode recipe %s: %w", recipe.ID, err)
		}
		pipe.HSet(ctx, r.dataKey(), recipe.ID, raw)
		pipe.SAdd(ctx, r.categoryKey(recipe.Category), recipe.ID)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisRecipeRepository) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	recipe, err := r.get(ctx, id)
	if err != nil {
		return false, err
	}
	if recipe == nil {
		return false, nil
	}

	pipe := r.rdb.Pipeline()
	deleted := pipe.HDel(ctx, r.dataKey(), id)
	pipe.SRem(ctx, r.categoryKey(recipe.Category), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return deleted.Val() > 0, nil
}

func (r *redisRecipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	return r.rdb.HLen(ctx, r.dataKey()).Result()
}

func (r *redisRecipeRepository) CountRecipesByCategory(ctx context.Context, category string) (int64, error) {
	return r.rdb.SCard(ctx, r.categoryKey(category)).Result()
}

func (r *redisRecipeRepository) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	recipe, err := r.get(ctx, id)
	if err != nil || recipe == nil {
		return err
	}
	recipe.SortOrder = sortOrder
	raw, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("encode recipe %s: %w", id, err)
	}
	return r.rdb.HSet(ctx, r.dataKey(), id, raw).Err()
}
