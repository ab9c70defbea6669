// Package entity defines data models for the Asiapay merchant service.
package entity

// Payment page parameter names. The gateway matches them case-sensitively.
const (
	FieldMerchantId         = "merchantId"
	FieldOrderRef           = "orderRef"
	FieldLang               = "lang"
	FieldMpsMode            = "mpsMode"
	FieldPayType            = "payType"
	FieldPayMethod          = "payMethod"
	FieldCurrCode           = "currCode"
	FieldAmount             = "amount"
	FieldInstallmentService = "installment_service"
	FieldInstallmentPeriod  = "installment_period"
	FieldRemark             = "remark"
	FieldCancelUrl          = "cancelUrl"
	FieldFailUrl            = "failUrl"
	FieldSuccessUrl         = "successUrl"
	FieldSecureHash         = "secureHash"
)

// Datafeed parameter names posted back by the gateway.
const (
	FeedSrc                = "src"
	FeedPrc                = "prc"
	FeedSuccessCode        = "successcode"
	FeedRef                = "Ref"
	FeedPayRef             = "PayRef"
	FeedCur                = "Cur"
	FeedAmt                = "Amt"
	FeedPayerAuth          = "payerAuth"
	FeedAlertCode          = "AlertCode"
	FeedSecureHash         = "secureHash"
	FeedOrd                = "Ord"
	FeedHolder             = "Holder"
	FeedRemark             = "remark"
	FeedAuthId             = "AuthId"
	FeedEci                = "eci"
	FeedSourceIp           = "sourceIp"
	FeedIpCountry          = "ipCountry"
	FeedPayMethod          = "payMethod"
	FeedCardIssuingCountry = "cardIssuingCountry"
	FeedChannelType        = "channelType"
	FeedTxTime             = "TxTime"
)
