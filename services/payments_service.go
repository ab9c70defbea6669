package services

import (
	"asiapay/entity"
	"context"
)

type Payments interface {
	NewPaymentForm(ctx context.Context, order *entity.PaymentOrder) (*entity.PaymentForm, error)
	Notify(ctx context.Context, data []byte) (*entity.NotificationRecord, error)
}
