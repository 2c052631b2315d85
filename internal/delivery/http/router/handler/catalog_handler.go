// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"posterstore/internal/delivery/http/response"
	"posterstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPosters handles the catalog listing request, optionally filtered by
// the category query parameter.
func (h *CatalogHandler) ListPosters(c echo.Context) error {
	posters, err := h.uc.ListPosters(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posters, "Posters retrieved successfully")
}

// GetPoster handles the single poster detail request.
func (h *CatalogHandler) GetPoster(c echo.Context) error {
	poster, err := h.uc.GetPoster(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poster, "Poster retrieved successfully")
}

// ListFavorites handles the favorites listing request.
func (h *CatalogHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.uc.ListFavorites(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// ToggleFavorite flips the favorite state for a poster.
func (h *CatalogHandler) ToggleFavorite(c echo.Context) error {
	favorited, err := h.uc.ToggleFavorite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favorited}, "Favorite toggled successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
