package entity

import "net/url"

// FormField is a single hidden input of the payment form.
type FormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PaymentForm is the payload the customer's browser posts to the payment page.
type PaymentForm struct {
	Id         string      `json:"id"`
	Action     string      `json:"action"`
	Fields     []FormField `json:"fields"`
	SecureHash string      `json:"secure_hash,omitempty"`
}

// Values returns the form as a POST body. The secure hash is included only if present.
func (f *PaymentForm) Values() url.Values {
	values := url.Values{}
	for _, field := range f.Fields {
		values.Set(field.Name, field.Value)
	}
	if f.SecureHash != "" {
		values.Set(FieldSecureHash, f.SecureHash)
	}
	return values
}
