package recipe

import (
	"Dinner-For-Five/entities"
	"Dinner-For-Five/internal/utils/storage"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRepository_CreatesMissingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	repo := NewDocumentRecipeRepository(storage.NewLocalDocument(path))

	recipes, err := repo.GetRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestDocumentRepository_CorruptDocumentListsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	repo := NewDocumentRecipeRepository(storage.NewLocalDocument(path))

	recipes, err := repo.GetRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestDocumentRepository_NullEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"b","category":"mains","sortOrder":2000},null,{"id":"a","category":"mains","sortOrder":1000},null]`), 0644))
	repo := NewDocumentRecipeRepository(storage.NewLocalDocument(path))
	ctx := context.Background()

	recipes, err := repo.GetRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "a", recipes[0].ID)
	assert.Equal(t, "b", recipes[1].ID)

	count, err := repo.CountRecipesByCategory(ctx, "mains")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, repo.UpdateSortOrder(ctx, "a", 3000))

	found, err := repo.DeleteRecipe(ctx, "b")
	require.NoError(t, err)
	assert.True(t, found)

	recipes, err = repo.GetRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "a", recipes[0].ID)
	assert.Equal(t, 3000, recipes[0].SortOrder)
}

func TestDocumentRepository_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	ctx := context.Background()

	first := NewDocumentRecipeRepository(storage.NewLocalDocument(path))
	require.NoError(t, first.CreateRecipe(ctx, &entities.Recipe{Category: "mains", Name: "chili", SortOrder: 1000}))

	second := NewDocumentRecipeRepository(storage.NewLocalDocument(path))
	recipes, err := second.GetRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "chili", recipes[0].Name)
	assert.NotEmpty(t, recipes[0].ID)
}

type unreadableDocument struct {
	writes int
}

func (d *unreadableDocument) Read(ctx context.Context) ([]byte, error) {
	return nil, errors.New("bucket unreachable")
}

func (d *unreadableDocument) Write(ctx context.Context, data []byte) error {
	d.writes++
	return nil
}

func (d *unreadableDocument) Location() string { return "unreadable" }

func TestDocumentRepository_UnreadableDocument(t *testing.T) {
	doc := &unreadableDocument{}
	repo := NewDocumentRecipeRepository(doc)
	ctx := context.Background()

	recipes, err := repo.GetRecipes(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	err = repo.CreateRecipe(ctx, &entities.Recipe{Name: "soup"})
	assert.Error(t, err)

	_, err = repo.DeleteRecipe(ctx, "any")
	assert.Error(t, err)

	assert.Zero(t, doc.writes)
}
