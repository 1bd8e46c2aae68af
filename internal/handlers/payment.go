package handlers

import (
	"context"
	"math"

	"github.com/danielgtaylor/huma/v2"
	"github.com/medicare-camp/camp-api/internal/payments"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	provider payments.Provider
	logger   *zap.Logger
}

func NewPaymentHandler(provider payments.Provider, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{provider: provider, logger: logger}
}

type CreatePaymentIntentRequest struct {
	Body struct {
		CampFee float64 `json:"campFee" required:"true" minimum:"0" doc:"Camp fee in the platform currency"`
	}
}

type CreatePaymentIntentResponse struct {
	Body struct {
		ClientSecret string `json:"clientSecret"`
	}
}

func (h *PaymentHandler) HandleCreatePaymentIntent(ctx context.Context, input *CreatePaymentIntentRequest) (*CreatePaymentIntentResponse, error) {
	if h.provider == nil {
		return nil, huma.Error503ServiceUnavailable("Payment provider is not configured")
	}
	if input.Body.CampFee < 0 {
		return nil, huma.Error422UnprocessableEntity("campFee must not be negative")
	}

	// Fees are stored as decimal currency; the processor wants the smallest
	// unit.
	amount := int64(math.Round(input.Body.CampFee * 100))

	clientSecret, err := h.provider.CreateIntent(ctx, amount)
	if err != nil {
		h.logger.Error("payment intent creation failed", zap.Error(err))
		return nil, huma.Error502BadGateway("Failed to create payment intent")
	}

	res := &CreatePaymentIntentResponse{}
	res.Body.ClientSecret = clientSecret
	return res, nil
}
