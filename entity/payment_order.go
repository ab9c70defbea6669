package entity

import "time"

// PaymentOrder tracks a payment form issued to a customer until the datafeed closes it.
type PaymentOrder struct {
	OrderRef    string    `json:"order_ref" bson:"order_ref"`
	Amount      string    `json:"amount" bson:"amount"`
	Currency    string    `json:"currency" bson:"currency"`
	Description string    `json:"description" bson:"description"`
	PayMethod   string    `json:"pay_method" bson:"pay_method"`
	PayRef      string    `json:"pay_ref" bson:"pay_ref"`
	IsCompleted bool      `json:"is_completed" bson:"is_completed"`
	IsAccepted  bool      `json:"is_accepted" bson:"is_accepted"`
	Result      string    `json:"result" bson:"result"`
	TimeOpened  time.Time `json:"time_opened" bson:"time_opened"`
	TimeClosed  time.Time `json:"time_closed" bson:"time_closed"`
}
