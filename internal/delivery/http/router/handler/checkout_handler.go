package handler

import (
	"log/slog"
	"net/http"

	"posterstore/internal/delivery/http/response"
	"posterstore/internal/domain/entity"
	"posterstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for checkout handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// placeOrderInput is the body for starting a checkout.
type placeOrderInput struct {
	ShippingMethod string `json:"shippingMethod" validate:"required"`
}

// Quote handles the shipping quote request for the current cart.
func (h *CheckoutHandler) Quote(c echo.Context) error {
	method := entity.ShippingMethod(c.QueryParam("method"))
	if method == "" {
		method = entity.ShippingStandard
	}

	quote, err := h.uc.Quote(c.Request().Context(), method)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "Quote calculated successfully")
}

// PlaceOrder handles the order placement request. The order confirms
// asynchronously; the response only acknowledges that processing started.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var input *placeOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	status, err := h.uc.PlaceOrder(c.Request().Context(), entity.ShippingMethod(input.ShippingMethod))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, status, "Order processing started")
}

// State handles the checkout state polling request.
func (h *CheckoutHandler) State(c echo.Context) error {
	status, err := h.uc.Status(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "Checkout state retrieved successfully")
}
