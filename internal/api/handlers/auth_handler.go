// Package handlers contains the handlers for the API
package handlers

import (
	"errors"
	"net/http"

	"github.com/arvyah/wellnessapi/internal/service"
	"github.com/arvyah/wellnessapi/pkg/utils/response"
	"github.com/arvyah/wellnessapi/pkg/utils/zaplogger"
	"github.com/labstack/echo/v4"
)

// AuthHandler is the handler for registration and login
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler for the auth API
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register registers a new user
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if req.Email == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`email` is required")
	}
	if req.Password == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`password` is required")
	}

	err := h.service.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			return response.ErrorResponse(c, http.StatusBadRequest, "ConflictException", "User already exists")
		}
		zaplogger.Error("register failed", zaplogger.Fields{"operation": "register", "email": req.Email, "error": err.Error()})
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Server error while registering: "+err.Error())
	}

	return response.MessageResponse(c, http.StatusCreated, "Registered successfully")
}

// Login verifies credentials and returns a bearer token
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if req.Email == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`email` is required")
	}
	if req.Password == "" {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`password` is required")
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ErrorResponse(c, http.StatusBadRequest, "NotFoundException", "User not found")
		}
		if errors.Is(err, service.ErrUnauthorized) {
			return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", "Invalid password")
		}
		zaplogger.Error("login failed", zaplogger.Fields{"operation": "login", "email": req.Email, "error": err.Error()})
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Server error while logging in: "+err.Error())
	}

	return response.SuccessResponse(c, http.StatusOK, tokenResponse{Token: token})
}
