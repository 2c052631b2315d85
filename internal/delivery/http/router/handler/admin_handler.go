package handler

import (
	"log/slog"
	"net/http"

	"posterstore/internal/delivery/http/response"
	"posterstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for catalog management handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePoster handles the poster creation request.
func (h *AdminHandler) CreatePoster(c echo.Context) error {
	var input *usecase.PosterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid poster input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	poster, err := h.uc.CreatePoster(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, poster, "Poster created successfully")
}

// UpdatePoster handles the poster update request.
func (h *AdminHandler) UpdatePoster(c echo.Context) error {
	var input *usecase.PosterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid poster input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	poster, err := h.uc.UpdatePoster(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poster, "Poster updated successfully")
}

// DeletePoster handles the poster deletion request.
func (h *AdminHandler) DeletePoster(c echo.Context) error {
	if err := h.uc.DeletePoster(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Poster deleted successfully")
}
