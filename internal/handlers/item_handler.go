package handlers

import (
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/response"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body", nil))
	}
	if err := validation.Struct(&req); err != nil {
		return response.Fail(c, err)
	}

	item, err := h.itemService.Create(&req)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "Item created successfully", item)
}

func (h *ItemHandler) FindAll(c *fiber.Ctx) error {
	items, err := h.itemService.FindAll()
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Items retrieved successfully", items)
}

func (h *ItemHandler) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, err)
	}

	item, err := h.itemService.FindOne(id)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Item found successfully", item)
}

func (h *ItemHandler) FindBySlug(c *fiber.Ctx) error {
	item, err := h.itemService.FindBySlug(c.Params("slug"))
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Item found successfully", item)
}

func (h *ItemHandler) FindByCategory(c *fiber.Ctx) error {
	items, err := h.itemService.FindByCategory(c.Params("categoryId"))
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Items retrieved successfully", items)
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, err)
	}

	var req dto.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body", nil))
	}
	if err := validation.Struct(&req); err != nil {
		return response.Fail(c, err)
	}

	item, err := h.itemService.Update(id, &req)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Item updated successfully", item)
}

func (h *ItemHandler) Remove(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, err)
	}

	if err := h.itemService.Remove(id); err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Item deleted successfully", nil)
}
