package config

import (
	"Dinner-For-Five/internal/api/handlers"
	"Dinner-For-Five/internal/api/routes"
	"Dinner-For-Five/internal/middleware"
	"Dinner-For-Five/internal/utils"
	"Dinner-For-Five/pkg/recipe"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// NewApp wires the recipe routes over repo. The returned cleanup closes the
// request log file.
func NewApp(cfg *utils.Config, repo recipe.RecipeRepository) (*fiber.App, func() error, error) {
	app := fiber.New(fiber.Config{
		AppName: "Dinner for 5",
	})
	middlewares := middleware.NewMiddleware()

	// setting up logging and limiter
	var (
		output  io.Writer = os.Stdout
		cleanup           = func() error { return nil }
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, os.ModePerm); err != nil {
			return nil, nil, fmt.Errorf("error creating logs directory: %w", err)
		}
		file, err := os.OpenFile(
			filepath.Join(cfg.LogDir, "app.log"),
			os.O_RDWR|os.O_CREATE|os.O_APPEND,
			0666,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening log file: %w", err)
		}
		output = io.MultiWriter(os.Stdout, file)
		cleanup = file.Close
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     output,
	}))

	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Second,
		}))
	}

	// Service
	recipeService := recipe.NewRecipeService(repo)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
		PublicDir:     cfg.PublicDir,
	}
	routesConfig.Setup()
	return app, cleanup, nil
}
