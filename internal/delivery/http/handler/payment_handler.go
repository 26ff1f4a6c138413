package handler

import (
	"errors"

	"work-wizard/internal/delivery/http/middleware"
	"work-wizard/internal/pkg/response"
	"work-wizard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PaymentHandler struct {
	uc usecase.PaymentUsecase
}

type checkoutRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type verifyRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/checkout", h.Checkout)
	r.Post("/verify", h.Verify)
}

func (h *PaymentHandler) Checkout(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req checkoutRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	order, err := h.uc.Checkout(c.Context(), caller, req.Amount, req.Currency)
	if err != nil {
		return mapPaymentError(err)
	}
	return response.Success(c, fiber.StatusCreated, "order created", order)
}

func (h *PaymentHandler) Verify(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req verifyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	expiresAt, err := h.uc.Verify(c.Context(), caller, usecase.VerifyPaymentInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		return mapPaymentError(err)
	}
	return response.Success(c, fiber.StatusOK, "payment verified", fiber.Map{
		"subscription": expiresAt,
	})
}

func mapPaymentError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrPaymentVerification):
		return middleware.NewAppError(fiber.StatusBadRequest, "Payment verification failed", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
