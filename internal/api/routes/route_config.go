package routes

import (
	"Dinner-For-Five/internal/api/handlers"
	"Dinner-For-Five/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
	PublicDir     string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.Recipes()
	c.GuestRoute()
	c.Static()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Patch("/reorder", c.RecipeHandler.ReorderRecipes)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}

	c.App.Post("/api/seed", c.RecipeHandler.SeedRecipes)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (c *Config) Static() {
	if c.PublicDir == "" {
		return
	}
	c.App.Static("/", c.PublicDir)
}
