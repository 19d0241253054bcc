package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PromotionHandler holds dependencies for promotion handlers.
type PromotionHandler struct {
	uc usecase.CatalogUsecase
}

// NewPromotionHandler is the constructor for PromotionHandler, injected by Fx.
func NewPromotionHandler(uc usecase.CatalogUsecase) *PromotionHandler {
	return &PromotionHandler{uc: uc}
}

// ListActivePromotions returns the promotions visible to the public page.
func (h *PromotionHandler) ListActivePromotions(c echo.Context) error {
	promotions, err := h.uc.ListActivePromotions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotions, "")
}

// ListPromotions returns every promotion, for the admin panel.
func (h *PromotionHandler) ListPromotions(c echo.Context) error {
	promotions, err := h.uc.ListPromotions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotions, "")
}

// CreatePromotion adds a promotion.
func (h *PromotionHandler) CreatePromotion(c echo.Context) error {
	var input usecase.PromotionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	promotion, err := h.uc.CreatePromotion(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, promotion, "Promotion created")
}

// UpdatePromotion replaces a promotion's fields.
func (h *PromotionHandler) UpdatePromotion(c echo.Context) error {
	var input usecase.PromotionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdatePromotion(c.Request().Context(), c.Param("id"), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Promotion updated")
}

// DeletePromotion removes a promotion.
func (h *PromotionHandler) DeletePromotion(c echo.Context) error {
	if err := h.uc.DeletePromotion(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Promotion deleted")
}
