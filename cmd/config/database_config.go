package config

import (
	"Dinner-For-Five/domain"
	"Dinner-For-Five/internal/utils"
	"Dinner-For-Five/internal/utils/storage"
	"Dinner-For-Five/pkg/recipe"
	"context"
	"fmt"
	"io"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store is an opened recipe backend. DB is set only for relational backends.
type Store struct {
	Repository recipe.RecipeRepository
	DB         *gorm.DB
	closer     io.Closer
}

func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func postgresDSN(cfg *utils.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)
}

func ConnectDB(cfg *utils.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreBackend {
	case utils.BackendPostgres:
		dialector = postgres.Open(postgresDSN(cfg))
	case utils.BackendSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %q is not relational", domain.ErrUnknownBackend, cfg.StoreBackend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

func ConnectRedis(ctx context.Context, cfg *utils.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return rdb, nil
}

// OpenStore builds the recipe repository for the configured backend.
func OpenStore(ctx context.Context, cfg *utils.Config) (*Store, error) {
	switch cfg.StoreBackend {
	case utils.BackendFile:
		log.Infof("using recipe document %s", cfg.DataFile)
		return &Store{
			Repository: recipe.NewDocumentRecipeRepository(storage.NewLocalDocument(cfg.DataFile)),
		}, nil

	case utils.BackendS3:
		client, err := storage.NewAwsS3Client(ctx, storage.AwsS3Config{
			Bucket:    cfg.AWSS3Bucket,
			Region:    cfg.AWSS3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
			Endpoint:  cfg.AWSS3Endpoint,
		})
		if err != nil {
			return nil, err
		}
		doc := storage.NewAwsS3Document(client, cfg.AWSS3Bucket, cfg.AWSS3ObjectKey)
		log.Infof("using recipe document %s", doc.Location())
		return &Store{Repository: recipe.NewDocumentRecipeRepository(doc)}, nil

	case utils.BackendPostgres, utils.BackendSQLite:
		db, err := ConnectDB(cfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		log.Infof("using %s recipe table", cfg.StoreBackend)
		return &Store{
			Repository: recipe.NewRecipeRepository(db),
			DB:         db,
			closer:     sqlDB,
		}, nil

	case utils.BackendRedis:
		rdb, err := ConnectRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Infof("using redis recipe store at %s", cfg.RedisAddr)
		return &Store{
			Repository: recipe.NewRedisRecipeRepository(rdb, recipe.WithRedisPrefix(cfg.RedisPrefix)),
			closer:     rdb,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, cfg.StoreBackend)
}
