package internal

import (
	"asiapay/entity"
	"fmt"
	"html/template"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var paymentFormTemplate = template.Must(template.New("payment").Parse(`<form action="{{.Action}}" method="post" id="{{.Id}}" name="{{.Id}}">
{{- if .SecureHash}}
<input type="hidden" name="secureHash" value="{{.SecureHash}}">
{{- end}}
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
</form>
<script type="text/javascript">document.getElementById({{.Id}}).submit()</script>
`))

// PaymentRequestBuilder collects payment page parameters and produces the
// form the customer's browser posts to the gateway. A builder serves one payment.
type PaymentRequestBuilder struct {
	url     string
	secret  string
	request entity.PaymentRequest
}

func NewPaymentRequestBuilder(url, secret string) *PaymentRequestBuilder {
	return &PaymentRequestBuilder{
		url:     url,
		secret:  secret,
		request: entity.NewPaymentRequest(),
	}
}

func (b *PaymentRequestBuilder) SetUrl(url string) {
	b.url = url
}

func (b *PaymentRequestBuilder) SetHashSecret(secret string) {
	b.secret = secret
}

func (b *PaymentRequestBuilder) SetMerchantID(id string) {
	b.request.MerchantId = id
}

func (b *PaymentRequestBuilder) SetOrderRef(ref string) {
	b.request.OrderRef = ref
}

func (b *PaymentRequestBuilder) SetLang(lang string) {
	b.request.Lang = lang
}

func (b *PaymentRequestBuilder) SetMpsMode(mode string) {
	b.request.MpsMode = mode
}

// SetPayMethod sets the payment method: ALL, CC, BancNet, PAYCASH.
func (b *PaymentRequestBuilder) SetPayMethod(method string) {
	b.request.PayMethod = method
}

// SetPayType sets the payment type: N - normal payment (sale), H - hold payment (authorize).
func (b *PaymentRequestBuilder) SetPayType(payType string) {
	b.request.PayType = payType
}

func (b *PaymentRequestBuilder) SetRemark(remark string) {
	b.request.Remark = remark
}

// SetCurrency accepts a numeric ISO code ("608") or a known symbol ("PHP").
func (b *PaymentRequestBuilder) SetCurrency(currency string) error {
	code, ok := entity.CurrencyCode(currency)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	b.request.CurrCode = code
	return nil
}

func (b *PaymentRequestBuilder) SetAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	// posted with two fraction digits; anything finer would be rounded
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%w: %s has more than two fraction digits", ErrInvalidAmount, amount.String())
	}
	b.request.Amount = &amount
	return nil
}

func (b *PaymentRequestBuilder) SetAmountString(amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return b.SetAmount(value)
}

// SetInstallment enables installment payment over the given number of months; zero disables it.
func (b *PaymentRequestBuilder) SetInstallment(months int) error {
	if months < 0 {
		return fmt.Errorf("%w: installment period %d", ErrInvalidValue, months)
	}
	b.request.InstallmentPeriod = months
	if months > 0 {
		b.request.InstallmentService = "T"
	} else {
		b.request.InstallmentService = "F"
	}
	return nil
}

func (b *PaymentRequestBuilder) SetReturnUrls(success, cancelled, failed string) {
	b.request.SuccessUrl = success
	b.request.CancelUrl = cancelled
	b.request.FailUrl = failed
}

// SetField sets a parameter by its gateway name. Unknown names are rejected with ErrUnknownField.
func (b *PaymentRequestBuilder) SetField(name, value string) error {
	switch name {
	case entity.FieldMerchantId:
		b.request.MerchantId = value
	case entity.FieldOrderRef:
		b.request.OrderRef = value
	case entity.FieldLang:
		b.request.Lang = value
	case entity.FieldMpsMode:
		b.request.MpsMode = value
	case entity.FieldPayType:
		b.request.PayType = value
	case entity.FieldPayMethod:
		b.request.PayMethod = value
	case entity.FieldCurrCode:
		return b.SetCurrency(value)
	case entity.FieldAmount:
		return b.SetAmountString(value)
	case entity.FieldInstallmentService:
		if value != "T" && value != "F" {
			return fmt.Errorf("%w: %s %q", ErrInvalidValue, name, value)
		}
		b.request.InstallmentService = value
	case entity.FieldInstallmentPeriod:
		months, err := strconv.Atoi(value)
		if err != nil || months < 0 {
			return fmt.Errorf("%w: %s %q", ErrInvalidValue, name, value)
		}
		b.request.InstallmentPeriod = months
	case entity.FieldRemark:
		b.request.Remark = value
	case entity.FieldCancelUrl:
		b.request.CancelUrl = value
	case entity.FieldFailUrl:
		b.request.FailUrl = value
	case entity.FieldSuccessUrl:
		b.request.SuccessUrl = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// SetFields applies SetField to every entry in name order. Either all entries
// are applied or, on the first error, none of them.
func (b *PaymentRequestBuilder) SetFields(fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	next := *b
	for _, name := range names {
		if err := next.SetField(name, fields[name]); err != nil {
			return err
		}
	}
	*b = next
	return nil
}

func (b *PaymentRequestBuilder) Request() entity.PaymentRequest {
	return b.request
}

// SecureHash signs merchantId|orderRef|currCode|amount|payType with the secret.
func (b *PaymentRequestBuilder) SecureHash() string {
	return SecureHash(b.secret,
		b.request.MerchantId,
		b.request.OrderRef,
		b.request.CurrCode,
		b.request.AmountString(),
		b.request.PayType,
	)
}

// Build returns the payment form. The secure hash is attached only when a secret is configured.
func (b *PaymentRequestBuilder) Build() *entity.PaymentForm {
	form := &entity.PaymentForm{
		Id:     fmt.Sprintf("form-%d", time.Now().Unix()),
		Action: b.url,
		Fields: b.request.Fields(),
	}
	if b.secret != "" {
		form.SecureHash = b.SecureHash()
	}
	return form
}

// Render writes the auto-submitting HTML form.
func (b *PaymentRequestBuilder) Render(w io.Writer) error {
	return RenderPaymentForm(w, b.Build())
}

func RenderPaymentForm(w io.Writer, form *entity.PaymentForm) error {
	return paymentFormTemplate.Execute(w, form)
}
