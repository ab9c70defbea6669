package internal

import (
	"asiapay/config"
	"asiapay/entity"
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	conf := &config.Config{}
	conf.Merchant.Id = "M1"
	conf.Merchant.Secret = testSecret
	conf.Merchant.PaymentUrl = testPaymentUrl
	conf.Merchant.Currency = "PHP"
	conf.Merchant.Lang = "E"
	conf.Merchant.PayMethod = "ALL"
	conf.Merchant.PayType = "N"
	conf.Merchant.SuccessUrl = "https://shop/ok"
	conf.Merchant.CancelUrl = "https://shop/cancel"
	conf.Merchant.FailUrl = "https://shop/fail"
	return conf
}

func newTestPayments(conf *config.Config, db *mockDatabase) *Payments {
	p := NewPayments(conf)
	p.SetLogger(nopLogger{})
	if db != nil {
		p.SetDatabase(db)
	}
	return p
}

func datafeedBody(n entity.Notification) []byte {
	values := url.Values{}
	values.Set(entity.FeedSrc, n.Src)
	values.Set(entity.FeedPrc, n.Prc)
	values.Set(entity.FeedSuccessCode, n.SuccessCode)
	values.Set(entity.FeedRef, n.Ref)
	values.Set(entity.FeedPayRef, n.PayRef)
	values.Set(entity.FeedCur, n.Cur)
	values.Set(entity.FeedAmt, n.Amt)
	values.Set(entity.FeedPayerAuth, n.PayerAuth)
	values.Set(entity.FeedAlertCode, n.AlertCode)
	values.Set(entity.FeedSecureHash, n.SecureHash)
	return []byte(values.Encode())
}

func TestNewPaymentForm(t *testing.T) {
	db := newMockDatabase()
	p := newTestPayments(testConfig(), db)

	order := &entity.PaymentOrder{OrderRef: "ORD100", Amount: "250", Description: "tickets"}
	form, err := p.NewPaymentForm(context.Background(), order)
	require.NoError(t, err)

	values := form.Values()
	assert.Equal(t, testPaymentUrl, form.Action)
	assert.Equal(t, "M1", values.Get("merchantId"))
	assert.Equal(t, "ORD100", values.Get("orderRef"))
	assert.Equal(t, "608", values.Get("currCode"))
	assert.Equal(t, "250.00", values.Get("amount"))
	assert.Equal(t, "tickets", values.Get("remark"))
	assert.Equal(t, "https://shop/ok", values.Get("successUrl"))
	assert.Equal(t, sha1Hex("M1|ORD100|608|250.00|N|s3cr3t"), form.SecureHash)

	saved := db.order("ORD100")
	require.NotNil(t, saved)
	assert.Equal(t, "250.00", saved.Amount)
	assert.Equal(t, "608", saved.Currency)
	assert.False(t, saved.IsCompleted)
	assert.False(t, saved.TimeOpened.IsZero())
}

func TestNewPaymentFormOrderCurrency(t *testing.T) {
	p := newTestPayments(testConfig(), nil)

	form, err := p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "A1", Amount: "10", Currency: "USD", PayMethod: "CC"})
	require.NoError(t, err)
	assert.Equal(t, "840", form.Values().Get("currCode"))
	assert.Equal(t, "CC", form.Values().Get("payMethod"))
}

func TestNewPaymentFormInvalid(t *testing.T) {
	p := newTestPayments(testConfig(), newMockDatabase())

	_, err := p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "A1", Amount: "-1"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "A1", Amount: "1", Currency: "XYZ"})
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	conf := testConfig()
	conf.Merchant.Id = ""
	_, err = newTestPayments(conf, nil).NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "A1", Amount: "1"})
	assert.Error(t, err)
}

func TestNewPaymentFormSaveError(t *testing.T) {
	db := newMockDatabase()
	db.saveOrderErr = errors.New("connection refused")
	p := newTestPayments(testConfig(), db)

	_, err := p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "A1", Amount: "1"})
	assert.ErrorIs(t, err, db.saveOrderErr)
}

func TestNewPaymentFormWithoutSecret(t *testing.T) {
	conf := testConfig()
	conf.Merchant.Secret = ""
	p := newTestPayments(conf, nil)

	form, err := p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "A1", Amount: "1"})
	require.NoError(t, err)
	assert.Empty(t, form.SecureHash)
}

func TestNewPaymentFormPaymentDisabled(t *testing.T) {
	conf := testConfig()
	conf.DisablePayment = true
	db := newMockDatabase()
	p := newTestPayments(conf, db)

	_, err := p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "A1", Amount: "1"})
	require.NoError(t, err)

	saved := db.order("A1")
	require.NotNil(t, saved)
	assert.True(t, saved.IsCompleted)
	assert.Equal(t, "payment disabled", saved.Result)
}

func TestNotifyAccepted(t *testing.T) {
	db := newMockDatabase()
	p := newTestPayments(testConfig(), db)
	ctx := WithRequestID(context.Background())

	_, err := p.NewPaymentForm(ctx, &entity.PaymentOrder{OrderRef: "ORD100", Amount: "250.00"})
	require.NoError(t, err)

	record, err := p.Notify(ctx, datafeedBody(acceptedNotification()))
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationAccepted, record.Status)
	assert.Empty(t, record.Reason)
	assert.Equal(t, GetRequestID(ctx), record.RequestId)
	require.Len(t, db.notifications, 1)

	order := db.order("ORD100")
	assert.True(t, order.IsCompleted)
	assert.True(t, order.IsAccepted)
	assert.Equal(t, "1234567", order.PayRef)
	assert.Equal(t, entity.NotificationAccepted, order.Result)
}

func TestNotifyRejected(t *testing.T) {
	db := newMockDatabase()
	p := newTestPayments(testConfig(), db)

	_, err := p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "ORD100", Amount: "250.00"})
	require.NoError(t, err)

	n := acceptedNotification()
	n.Prc = "1"
	n.SuccessCode = "1"
	record, err := p.Notify(context.Background(), datafeedBody(signedNotification(n)))
	require.ErrorIs(t, err, ErrTransactionRejected)
	assert.Equal(t, entity.NotificationRejected, record.Status)
	assert.Contains(t, record.Reason, "Rejected by Payment Bank")

	order := db.order("ORD100")
	assert.True(t, order.IsCompleted)
	assert.False(t, order.IsAccepted)
	assert.Contains(t, order.Result, "Rejected by Payment Bank")
}

func TestNotifyHashMismatchLeavesOrderOpen(t *testing.T) {
	db := newMockDatabase()
	p := newTestPayments(testConfig(), db)

	_, err := p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "ORD100", Amount: "250.00"})
	require.NoError(t, err)

	n := acceptedNotification()
	n.Amt = "1.00"
	record, err := p.Notify(context.Background(), datafeedBody(n))
	require.ErrorIs(t, err, ErrHashMismatch)
	assert.Equal(t, entity.NotificationRejected, record.Status)
	require.Len(t, db.notifications, 1)
	assert.False(t, db.order("ORD100").IsCompleted)
}

func TestNotifyCompletedOrderUnchanged(t *testing.T) {
	db := newMockDatabase()
	p := newTestPayments(testConfig(), db)
	require.NoError(t, db.SavePaymentOrder(context.Background(), &entity.PaymentOrder{
		OrderRef:    "ORD100",
		IsCompleted: true,
		IsAccepted:  true,
		Result:      entity.NotificationAccepted,
	}))

	n := acceptedNotification()
	n.SuccessCode = "1"
	_, err := p.Notify(context.Background(), datafeedBody(signedNotification(n)))
	require.ErrorIs(t, err, ErrTransactionFailed)
	assert.True(t, db.order("ORD100").IsAccepted)
}

func TestNotifyWithoutDatabase(t *testing.T) {
	p := newTestPayments(testConfig(), nil)

	record, err := p.Notify(context.Background(), datafeedBody(acceptedNotification()))
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationAccepted, record.Status)
}

func TestNotifyBadBody(t *testing.T) {
	p := newTestPayments(testConfig(), newMockDatabase())

	record, err := p.Notify(context.Background(), []byte("%zz"))
	assert.Error(t, err)
	assert.Nil(t, record)
}

func TestReasonLabel(t *testing.T) {
	assert.Equal(t, "none", reasonLabel(nil))
	assert.Equal(t, "hash_mismatch", reasonLabel(ErrHashMismatch))
	assert.Equal(t, "rejected", reasonLabel(&RejectedError{Code: "1", Reason: "x"}))
	assert.Equal(t, "failed", reasonLabel(ErrTransactionFailed))
	assert.Equal(t, "medium_risk", reasonLabel(ErrMediumRiskTransaction))
	assert.Equal(t, "high_risk", reasonLabel(ErrHighRiskTransaction))
	assert.Equal(t, "unknown", reasonLabel(errors.New("other")))
}

func TestSecret(t *testing.T) {
	assert.Equal(t, "12345***", secret("1234567"))
	assert.Equal(t, "***", secret("123"))
	assert.Equal(t, "?", secret(""))
}

func TestNewPaymentFormCompletedOrder(t *testing.T) {
	db := newMockDatabase()
	p := newTestPayments(testConfig(), db)
	ctx := context.Background()

	_, err := p.NewPaymentForm(ctx, &entity.PaymentOrder{OrderRef: "ORD100", Amount: "250.00"})
	require.NoError(t, err)
	_, err = p.Notify(ctx, datafeedBody(acceptedNotification()))
	require.NoError(t, err)

	_, err = p.NewPaymentForm(ctx, &entity.PaymentOrder{OrderRef: "ORD100", Amount: "1"})
	require.ErrorIs(t, err, ErrOrderCompleted)

	order := db.order("ORD100")
	assert.True(t, order.IsCompleted)
	assert.True(t, order.IsAccepted)
	assert.Equal(t, "1234567", order.PayRef)
	assert.Equal(t, "250.00", order.Amount)
}

func TestNewPaymentFormReissuesOpenOrder(t *testing.T) {
	db := newMockDatabase()
	p := newTestPayments(testConfig(), db)

	_, err := p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "ORD100", Amount: "250.00"})
	require.NoError(t, err)
	_, err = p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "ORD100", Amount: "300.00"})
	require.NoError(t, err)
	assert.Equal(t, "300.00", db.order("ORD100").Amount)
}

func TestNotifyWithoutSecretRejected(t *testing.T) {
	conf := testConfig()
	conf.Merchant.Secret = ""
	db := newMockDatabase()
	p := newTestPayments(conf, db)

	_, err := p.NewPaymentForm(context.Background(), &entity.PaymentOrder{OrderRef: "ORD100", Amount: "250.00"})
	require.NoError(t, err)

	n := acceptedNotification()
	n.SecureHash = SecureHash("", n.Src, n.Prc, n.SuccessCode, n.Ref, n.PayRef, n.Cur, n.Amt, n.PayerAuth)
	record, err := p.Notify(context.Background(), datafeedBody(n))
	require.ErrorIs(t, err, ErrHashMismatch)
	assert.Equal(t, entity.NotificationRejected, record.Status)
	assert.False(t, db.order("ORD100").IsCompleted)
}
