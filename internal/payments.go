package internal

import (
	"asiapay/config"
	"asiapay/entity"
	"asiapay/services"
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Payments issues payment forms for the Asiapay payment page and processes
// the datafeed notifications the gateway posts back. Every call works on its
// own builder or verifier; only configuration and collaborators are shared.
type Payments struct {
	conf     *config.Config
	database services.Database
	logger   services.LogHandler
}

func NewPayments(conf *config.Config) *Payments {
	return &Payments{
		conf:   conf,
		logger: NewLogger("payments", conf.IsDebug, nil),
	}
}

func (p *Payments) SetDatabase(database services.Database) {
	p.database = database
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
	if p.conf.DisablePayment {
		p.logger.Warn("service disabled")
	} else {
		p.logger.Info("service enabled")
	}
	if p.conf.Merchant.Secret == "" {
		p.logger.Warn("merchant secret is not set; payment forms are sent without secure hash and every datafeed is rejected")
	}
}

// NewPaymentForm builds the payment form for an order and records the order as open.
func (p *Payments) NewPaymentForm(ctx context.Context, order *entity.PaymentOrder) (*entity.PaymentForm, error) {
	merchant := p.conf.Merchant
	if merchant.Id == "" || merchant.PaymentUrl == "" {
		return nil, fmt.Errorf("merchant not configured")
	}

	if p.database != nil {
		stored, err := p.database.GetPaymentOrder(ctx, order.OrderRef)
		if err != nil && !errors.Is(err, ErrOrderNotFound) {
			p.logger.Error("get payment order", err)
			return nil, err
		}
		if stored != nil && stored.IsCompleted {
			paymentFormsTotal.WithLabelValues("invalid").Inc()
			return nil, fmt.Errorf("%w: %s (%s)", ErrOrderCompleted, stored.OrderRef, stored.Result)
		}
	}

	builder := NewPaymentRequestBuilder(merchant.PaymentUrl, merchant.Secret)
	builder.SetMerchantID(merchant.Id)
	builder.SetOrderRef(order.OrderRef)
	builder.SetLang(merchant.Lang)
	builder.SetPayType(merchant.PayType)
	builder.SetPayMethod(valueOr(order.PayMethod, merchant.PayMethod))
	builder.SetRemark(order.Description)
	builder.SetReturnUrls(merchant.SuccessUrl, merchant.CancelUrl, merchant.FailUrl)

	if err := builder.SetCurrency(valueOr(order.Currency, merchant.Currency)); err != nil {
		paymentFormsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if err := builder.SetAmountString(order.Amount); err != nil {
		paymentFormsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	request := builder.Request()
	order.Currency = request.CurrCode
	order.Amount = request.AmountString()
	order.PayMethod = request.PayMethod
	order.TimeOpened = time.Now()

	result := "ok"
	if p.conf.DisablePayment {
		order.IsCompleted = true
		order.Result = "payment disabled"
		order.TimeClosed = order.TimeOpened
		result = "disabled"
		p.logger.Info(fmt.Sprintf("payment disabled: order %s closed without payment", order.OrderRef))
	}

	if p.database != nil {
		if err := p.database.SavePaymentOrder(ctx, order); err != nil {
			p.logger.Error("save payment order", err)
			return nil, err
		}
	}

	form := builder.Build()
	paymentFormsTotal.WithLabelValues(result).Inc()
	p.logger.Info(fmt.Sprintf("payment form: order %s; amount %s %s", order.OrderRef, order.Amount, entity.CurrencySymbol(order.Currency)))
	return form, nil
}

// Notify processes a datafeed body (application/x-www-form-urlencoded).
// The returned record is nil only when the body cannot be parsed; otherwise the
// error is the verification outcome.
func (p *Payments) Notify(ctx context.Context, data []byte) (*entity.NotificationRecord, error) {
	params, err := url.ParseQuery(string(data))
	if err != nil {
		datafeedTotal.WithLabelValues(entity.NotificationRejected, "bad_request").Inc()
		p.logger.Debug(string(data))
		return nil, fmt.Errorf("parse query: %w", err)
	}

	notification := entity.NewNotification(params)
	datafeed := NewDatafeed(p.conf.Merchant.Secret, notification)
	result := datafeed.Accept()

	record := &entity.NotificationRecord{
		RequestId:    GetRequestID(ctx),
		Notification: notification,
		Status:       entity.NotificationAccepted,
		Time:         time.Now(),
	}
	if result != nil {
		record.Status = entity.NotificationRejected
		record.Reason = result.Error()
	}
	datafeedTotal.WithLabelValues(record.Status, reasonLabel(result)).Inc()

	p.logger.Info(fmt.Sprintf("datafeed: order %s; pay ref %s; prc %s/%s; success code %s; amount %s %s; %s",
		notification.Ref, secret(notification.PayRef), notification.Prc, notification.Src,
		notification.SuccessCode, notification.Amt, entity.CurrencySymbol(notification.Cur), record.Status))

	if p.database != nil {
		if err := p.database.SaveNotification(ctx, record); err != nil {
			p.logger.Error("save notification", err)
		}
		if errors.Is(result, ErrHashMismatch) {
			p.logger.Warn(fmt.Sprintf("datafeed for order %s failed integrity check; order left open", notification.Ref))
		} else {
			p.closeOrder(ctx, &notification, result)
		}
	}

	return record, result
}

// closeOrder completes the payment order referenced by a verified datafeed.
func (p *Payments) closeOrder(ctx context.Context, notification *entity.Notification, result error) {
	if notification.Ref == "" {
		p.logger.Warn("datafeed without order reference")
		return
	}
	order, err := p.database.GetPaymentOrder(ctx, notification.Ref)
	if err != nil {
		p.logger.Error("get payment order", err)
		return
	}
	if order.IsCompleted {
		p.logger.Warn(fmt.Sprintf("order %s is already completed: %s", order.OrderRef, order.Result))
		return
	}

	order.IsCompleted = true
	order.IsAccepted = result == nil
	order.PayRef = notification.PayRef
	order.TimeClosed = time.Now()
	if result != nil {
		order.Result = result.Error()
	} else {
		order.Result = entity.NotificationAccepted
	}

	if err = p.database.SavePaymentOrder(ctx, order); err != nil {
		p.logger.Error("save payment order", err)
	}
}

func reasonLabel(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrHashMismatch):
		return "hash_mismatch"
	case errors.Is(err, ErrTransactionRejected):
		return "rejected"
	case errors.Is(err, ErrTransactionFailed):
		return "failed"
	case errors.Is(err, ErrMediumRiskTransaction):
		return "medium_risk"
	case errors.Is(err, ErrHighRiskTransaction):
		return "high_risk"
	}
	return "unknown"
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func secret(some string) string {
	if len(some) > 5 {
		return fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		return "?"
	}
	return "***"
}
