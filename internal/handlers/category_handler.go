package handlers

import (
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/response"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body", nil))
	}
	if err := validation.Struct(&req); err != nil {
		return response.Fail(c, err)
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "Category created successfully", category)
}

func (h *CategoryHandler) FindAll(c *fiber.Ctx) error {
	categories, err := h.categoryService.FindAll()
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, err)
	}

	category, err := h.categoryService.FindOne(id)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Category found successfully", category)
}

func (h *CategoryHandler) FindBySlug(c *fiber.Ctx) error {
	category, err := h.categoryService.FindBySlug(c.Params("slug"))
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Category found successfully", category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, err)
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body", nil))
	}
	if err := validation.Struct(&req); err != nil {
		return response.Fail(c, err)
	}

	category, err := h.categoryService.Update(id, &req)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Category updated successfully", category)
}

func (h *CategoryHandler) Remove(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, err)
	}

	if err := h.categoryService.Remove(id); err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Category deleted successfully", nil)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.Validation("Validation failed", map[string]string{
			"id": "must be a valid UUID",
		})
	}
	return id, nil
}
