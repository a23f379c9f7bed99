package handler

import (
	"log/slog"
	"net/http"

	"mesto/internal/delivery/http/middleware"
	"mesto/internal/delivery/http/response"
	"mesto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	CardUC usecase.CardUsecase
	Logger *slog.Logger
}

// CardHandler holds dependencies for card-related handlers.
type CardHandler struct {
	cardUC usecase.CardUsecase
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler.
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{
		cardUC: params.CardUC,
		logger: params.Logger,
	}
}

// CreateCardRequest represents the request body for card creation.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}

// ListCards handles the request to list every card, newest first.
func (h *CardHandler) ListCards(c echo.Context) error {
	cards, err := h.cardUC.ListCards(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cards)
}

// CreateCard handles the card creation request. The owner is always
// the authenticated caller.
func (h *CardHandler) CreateCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authorization required")
	}

	var req CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INCORRECT_REQUEST", "Invalid card input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	card, err := h.cardUC.CreateCard(c.Request().Context(), userID, &usecase.CreateCardInput{
		Name: req.Name,
		Link: req.Link,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, card)
}

// DeleteCard handles the card deletion request. Only the owner may
// delete; the deleted card is echoed back.
func (h *CardHandler) DeleteCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authorization required")
	}

	card, err := h.cardUC.DeleteCard(c.Request().Context(), userID, c.Param("cardId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card)
}

// LikeCard handles the like request. Liking an already-liked card is a
// no-op and still succeeds.
func (h *CardHandler) LikeCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authorization required")
	}

	card, err := h.cardUC.LikeCard(c.Request().Context(), userID, c.Param("cardId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card)
}

// UnlikeCard handles the unlike request, the idempotent inverse of
// LikeCard.
func (h *CardHandler) UnlikeCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authorization required")
	}

	card, err := h.cardUC.UnlikeCard(c.Request().Context(), userID, c.Param("cardId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card)
}
