package recipe

import (
	"Dinner-For-Five/entities"
	"Dinner-For-Five/internal/utils/storage"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteRepository(t *testing.T) RecipeRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "recipes.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Recipe{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewRecipeRepository(db)
}

func newDocumentRepository(t *testing.T) RecipeRepository {
	t.Helper()
	return NewDocumentRecipeRepository(storage.NewLocalDocument(filepath.Join(t.TempDir(), "recipes.json")))
}

func newRedisRepository(t *testing.T) RecipeRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisRecipeRepository(rdb, WithRedisPrefix("test:recipes"))
}

// forEachBackend runs fn once per repository implementation.
func forEachBackend(t *testing.T, fn func(t *testing.T, repo RecipeRepository)) {
	backends := map[string]func(*testing.T) RecipeRepository{
		"sqlite":   newSQLiteRepository,
		"document": newDocumentRepository,
		"redis":    newRedisRepository,
	}
	for name, newRepo := range backends {
		t.Run(name, func(t *testing.T) {
			fn(t, newRepo(t))
		})
	}
}
