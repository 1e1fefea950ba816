package handlers

import (
	"Dinner-For-Five/domain"
	"Dinner-For-Five/entities"
	"Dinner-For-Five/internal/api/presenters"
	"Dinner-For-Five/pkg/recipe"
	"errors"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		ReorderRecipes(c *fiber.Ctx) error
		SeedRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.OkResponse(c)
}

func (h *recipeHandler) ReorderRecipes(c *fiber.Ctx) error {
	var req []domain.ReorderItem

	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.recipeService.ReorderRecipes(c.Context(), req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedReorderRecipes, err)
	}

	return presenters.OkResponse(c)
}

func (h *recipeHandler) SeedRecipes(c *fiber.Ctx) error {
	var req []*entities.Recipe

	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.SeedRecipes(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSeedRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
