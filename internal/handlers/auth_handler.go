package handlers

import (
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/response"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body", nil))
	}
	if err := validation.Struct(&req); err != nil {
		return response.Fail(c, err)
	}

	pair, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "User registered successfully", pair)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body", nil))
	}
	if err := validation.Struct(&req); err != nil {
		return response.Fail(c, err)
	}

	pair, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Login successful", pair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body", nil))
	}
	if err := validation.Struct(&req); err != nil {
		return response.Fail(c, err)
	}

	pair, err := h.authService.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Token refreshed successfully", pair)
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Fail(c, apperr.Unauthorized("Unauthorized"))
	}

	profile, err := h.authService.GetProfile(userID)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Profile retrieved successfully", profile)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Fail(c, apperr.Unauthorized("Unauthorized"))
	}

	if err := h.authService.Logout(c.Context(), userID); err != nil {
		return response.Fail(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Logged out successfully", nil)
}
