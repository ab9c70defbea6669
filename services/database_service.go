package services

import (
	"asiapay/entity"
	"context"
)

type Database interface {
	WriteLogMessage(ctx context.Context, data Data) error

	GetPaymentOrder(ctx context.Context, orderRef string) (*entity.PaymentOrder, error)
	SavePaymentOrder(ctx context.Context, order *entity.PaymentOrder) error

	SaveNotification(ctx context.Context, record *entity.NotificationRecord) error
}

type Data interface {
	DataType() string
}
