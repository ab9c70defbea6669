package internal

import (
	"asiapay/entity"
	"fmt"
	"strconv"
)

// unknownCode stands in for a status code missing from the datafeed.
const unknownCode = "XX"

// prcReasons maps the primary bank host status code to a rejection reason.
var prcReasons = map[string]string{
	"1":  "Rejected by Payment Bank",
	"3":  "Rejected due to Payer Authentication Failure (3D)",
	"-1": "Rejected due to Input Parameters Incorrect",
	"-2": "Rejected due to Server Access Error",
	"-8": "Rejected due to PesoPay Internal/Fraud Prevention Checking",
	"-9": "Rejected by Host Access Error",
}

const prcUnknownReason = "Rejected with unknown processing code"

// RejectionReason returns the reason for a processing code, or a generic one for unknown codes.
func RejectionReason(prc string) string {
	if reason, ok := prcReasons[prc]; ok {
		return reason
	}
	return prcUnknownReason
}

// Datafeed verifies one payment result notification posted by the gateway.
// Callers should use Accept, which runs the checks in the required order.
type Datafeed struct {
	secret       string
	notification entity.Notification
}

func NewDatafeed(secret string, notification entity.Notification) *Datafeed {
	return &Datafeed{
		secret:       secret,
		notification: notification,
	}
}

// SecureHash computes the expected hash over src|prc|successcode|Ref|PayRef|Cur|Amt|payerAuth.
func (d *Datafeed) SecureHash() string {
	n := d.notification
	return SecureHash(d.secret, n.Src, n.Prc, n.SuccessCode, n.Ref, n.PayRef, n.Cur, n.Amt, n.PayerAuth)
}

// Verify checks the integrity of the datafeed against its secureHash field.
// Without a secret the hash can be forged by anyone, so nothing verifies.
func (d *Datafeed) Verify() error {
	if d.secret == "" {
		return fmt.Errorf("%w: merchant secret is not set", ErrHashMismatch)
	}
	if !hashEqual(d.SecureHash(), d.notification.SecureHash) {
		return ErrHashMismatch
	}
	return nil
}

// CheckProcessingCode checks the primary bank host status code.
func (d *Datafeed) CheckProcessingCode() error {
	prc := orUnknown(d.notification.Prc)
	if isZeroCode(prc) {
		return nil
	}
	return &RejectedError{Code: prc, Reason: RejectionReason(prc)}
}

// CheckSuccessCode checks the result code: 0 - succeeded, 1 - failure, others - error.
func (d *Datafeed) CheckSuccessCode() error {
	code := orUnknown(d.notification.SuccessCode)
	if isZeroCode(code) {
		return nil
	}
	return fmt.Errorf("%w: successcode %s", ErrTransactionFailed, code)
}

// CheckAlertRiskLevel inspects the first letter of the alert code.
func (d *Datafeed) CheckAlertRiskLevel() error {
	alertCode := d.notification.AlertCode
	if alertCode == "" {
		return nil
	}
	switch alertCode[0] {
	case 'O':
		return fmt.Errorf("%w: alert code %s", ErrMediumRiskTransaction, alertCode)
	case 'R':
		return fmt.Errorf("%w: alert code %s", ErrHighRiskTransaction, alertCode)
	}
	return nil
}

// Accept runs all checks and returns the first failure. Nil means the transaction is accepted.
func (d *Datafeed) Accept() error {
	checks := []func() error{
		d.Verify,
		d.CheckProcessingCode,
		d.CheckSuccessCode,
		d.CheckAlertRiskLevel,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func orUnknown(code string) string {
	if code == "" {
		return unknownCode
	}
	return code
}

func isZeroCode(code string) bool {
	value, err := strconv.Atoi(code)
	return err == nil && value == 0
}
