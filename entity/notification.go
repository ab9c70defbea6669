package entity

import "net/url"

// Notification holds the datafeed fields posted back by the gateway after a payment.
// Absent fields are empty strings.
type Notification struct {
	// Return bank host status code (secondary)
	Src string `json:"src" bson:"src"`
	// Return bank host status code (primary), "0" = success
	Prc string `json:"prc" bson:"prc"`
	// "0" = succeeded, "1" = failure, others = error
	SuccessCode string `json:"successcode" bson:"successcode"`
	// Merchant's order reference number
	Ref string `json:"Ref" bson:"ref"`
	// Payment reference number assigned by the gateway
	PayRef    string `json:"PayRef" bson:"pay_ref"`
	Cur       string `json:"Cur" bson:"cur"`
	Amt       string `json:"Amt" bson:"amt"`
	PayerAuth string `json:"payerAuth" bson:"payer_auth"`
	// Risk alert code; first letter "O" = medium risk, "R" = high risk
	AlertCode  string `json:"AlertCode" bson:"alert_code"`
	SecureHash string `json:"secureHash" bson:"secure_hash"`

	Ord                string `json:"Ord" bson:"ord"`
	Holder             string `json:"Holder" bson:"holder"`
	Remark             string `json:"remark" bson:"remark"`
	AuthId             string `json:"AuthId" bson:"auth_id"`
	Eci                string `json:"eci" bson:"eci"`
	SourceIp           string `json:"sourceIp" bson:"source_ip"`
	IpCountry          string `json:"ipCountry" bson:"ip_country"`
	PayMethod          string `json:"payMethod" bson:"pay_method"`
	CardIssuingCountry string `json:"cardIssuingCountry" bson:"card_issuing_country"`
	ChannelType        string `json:"channelType" bson:"channel_type"`
	TxTime             string `json:"TxTime" bson:"tx_time"`
}

// NewNotification reads datafeed fields from a parsed form body.
func NewNotification(values url.Values) Notification {
	return Notification{
		Src:                values.Get(FeedSrc),
		Prc:                values.Get(FeedPrc),
		SuccessCode:        values.Get(FeedSuccessCode),
		Ref:                values.Get(FeedRef),
		PayRef:             values.Get(FeedPayRef),
		Cur:                values.Get(FeedCur),
		Amt:                values.Get(FeedAmt),
		PayerAuth:          values.Get(FeedPayerAuth),
		AlertCode:          values.Get(FeedAlertCode),
		SecureHash:         values.Get(FeedSecureHash),
		Ord:                values.Get(FeedOrd),
		Holder:             values.Get(FeedHolder),
		Remark:             values.Get(FeedRemark),
		AuthId:             values.Get(FeedAuthId),
		Eci:                values.Get(FeedEci),
		SourceIp:           values.Get(FeedSourceIp),
		IpCountry:          values.Get(FeedIpCountry),
		PayMethod:          values.Get(FeedPayMethod),
		CardIssuingCountry: values.Get(FeedCardIssuingCountry),
		ChannelType:        values.Get(FeedChannelType),
		TxTime:             values.Get(FeedTxTime),
	}
}
