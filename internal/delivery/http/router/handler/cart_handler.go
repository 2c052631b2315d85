package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"posterstore/internal/delivery/http/response"
	"posterstore/internal/domain/service"
	"posterstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	bus    service.CartEventBus
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, bus service.CartEventBus, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		bus:    bus,
		logger: logger,
	}
}

// addItemInput is the body for adding a poster to the cart.
type addItemInput struct {
	PosterID string `json:"posterId" validate:"required"`
}

// setQuantityInput is the body for changing a line quantity.
type setQuantityInput struct {
	Quantity int `json:"quantity"`
}

// GetCart handles the cart retrieval request.
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.uc.GetCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart retrieved successfully")
}

// AddItem handles the add-to-cart request.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input *addItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.AddToCart(c.Request().Context(), input.PosterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added to cart")
}

// SetQuantity handles the quantity change request for a cart line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var input *setQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	view, err := h.uc.SetQuantity(c.Request().Context(), c.Param("id"), input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart updated successfully")
}

// RemoveItem handles the line removal request.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.uc.RemoveItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed from cart")
}

// StreamEvents pushes cart-changed notifications over server-sent events so
// the storefront badge can stay current without polling.
func (h *CartHandler) StreamEvents(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	events, cancel := h.bus.Subscribe()
	defer cancel()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Warn("Failed to encode cart event", "error", err)

				continue
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
