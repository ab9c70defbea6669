package entity

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// PaymentRequest represents the parameters posted to the Asiapay payment page.
// Every recognized parameter has its own field; there is no way to carry an unknown one.
type PaymentRequest struct {
	MerchantId string `json:"merchantId"`
	// Merchant's order reference number
	OrderRef string `json:"orderRef"`
	// Language of the payment page: "E" = English
	Lang string `json:"lang"`
	// Multi-Currency Processing Service mode
	MpsMode string `json:"mpsMode"`
	// "N" = normal payment (sale), "H" = hold payment (authorize only)
	PayType string `json:"payType"`
	// "ALL", "CC", "BancNet", "PAYCASH"
	PayMethod string `json:"payMethod"`
	// ISO 4217 numeric currency code
	CurrCode string `json:"currCode"`
	// nil until set; posted as an empty value in that case
	Amount *decimal.Decimal `json:"amount"`
	// "T" = installment payment, "F" = single payment
	InstallmentService string `json:"installment_service"`
	// Installment period in months
	InstallmentPeriod int `json:"installment_period"`
	// Free text, not displayed on the payment page
	Remark     string `json:"remark"`
	CancelUrl  string `json:"cancelUrl"`
	FailUrl    string `json:"failUrl"`
	SuccessUrl string `json:"successUrl"`
}

// NewPaymentRequest returns a request with the gateway defaults applied.
func NewPaymentRequest() PaymentRequest {
	return PaymentRequest{
		Lang:               "E",
		MpsMode:            "NIL",
		PayType:            "N",
		PayMethod:          "ALL",
		CurrCode:           "608",
		InstallmentService: "F",
	}
}

// FormatAmount renders an amount the way the gateway expects it.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// AmountString returns the amount in wire format, empty while it is unset.
func (r PaymentRequest) AmountString() string {
	if r.Amount == nil {
		return ""
	}
	return FormatAmount(*r.Amount)
}

// Fields lists the request parameters in the order they are posted.
func (r PaymentRequest) Fields() []FormField {
	return []FormField{
		{FieldMerchantId, r.MerchantId},
		{FieldOrderRef, r.OrderRef},
		{FieldLang, r.Lang},
		{FieldMpsMode, r.MpsMode},
		{FieldPayType, r.PayType},
		{FieldPayMethod, r.PayMethod},
		{FieldCurrCode, r.CurrCode},
		{FieldAmount, r.AmountString()},
		{FieldInstallmentService, r.InstallmentService},
		{FieldInstallmentPeriod, strconv.Itoa(r.InstallmentPeriod)},
		{FieldRemark, r.Remark},
		{FieldCancelUrl, r.CancelUrl},
		{FieldFailUrl, r.FailUrl},
		{FieldSuccessUrl, r.SuccessUrl},
	}
}
