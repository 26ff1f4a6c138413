package usecase

import (
	"context"
	"errors"
	"time"

	"work-wizard/internal/domain/user"
	"work-wizard/internal/infrastructure/payment"
)

var ErrPaymentVerification = errors.New("payment verification failed")

// subscriptionPeriod is the validity window granted per verified payment.
const subscriptionPeriod = 30 * 24 * time.Hour

type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

type PaymentUsecase interface {
	Checkout(ctx context.Context, caller Caller, amount int64, currency string) (payment.Order, error)

	// Verify checks the gateway signature and, on success, extends the
	// caller's subscription to now plus the subscription period.
	Verify(ctx context.Context, caller Caller, in VerifyPaymentInput) (time.Time, error)
}

type Payments struct {
	gateway payment.Gateway
	users   user.Repository

	now func() time.Time
}

func NewPaymentUsecase(gateway payment.Gateway, users user.Repository) *Payments {
	return &Payments{gateway: gateway, users: users, now: time.Now}
}

func (p *Payments) Checkout(ctx context.Context, caller Caller, amount int64, currency string) (payment.Order, error) {
	if amount <= 0 {
		return payment.Order{}, ErrPaymentVerification
	}
	if currency == "" {
		currency = "INR"
	}
	return p.gateway.CreateOrder(amount, currency), nil
}

func (p *Payments) Verify(ctx context.Context, caller Caller, in VerifyPaymentInput) (time.Time, error) {
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		return time.Time{}, ErrPaymentVerification
	}
	if !p.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		return time.Time{}, ErrPaymentVerification
	}

	expiresAt := p.now().Add(subscriptionPeriod)
	if err := p.users.SetSubscription(ctx, caller.ID, expiresAt); err != nil {
		return time.Time{}, ErrInternal
	}
	return expiresAt, nil
}

var _ PaymentUsecase = (*Payments)(nil)
