package entity

import "strconv"

// currencies maps ISO 4217 numeric codes accepted by the gateway to their symbols.
var currencies = map[string]string{
	"608": "PHP",
	"840": "USD",
	"344": "HKD",
	"702": "SGD",
	"156": "CNY",
	"392": "JPY",
	"901": "TWD",
	"036": "AUD",
	"978": "EUR",
	"826": "GBP",
	"124": "CAD",
	"446": "MOP",
	"764": "THB",
	"458": "MYR",
	"360": "IDR",
	"410": "KRW",
}

// CurrencyCode resolves a currency symbol ("PHP") or numeric code ("608") to the numeric code.
// Numeric input is returned as is, even if it is not in the table.
func CurrencyCode(codeOrSymbol string) (string, bool) {
	if isNumeric(codeOrSymbol) {
		return codeOrSymbol, true
	}
	for code, symbol := range currencies {
		if symbol == codeOrSymbol {
			return code, true
		}
	}
	return "", false
}

// CurrencySymbol returns the symbol for a numeric code, or the code itself if unknown.
func CurrencySymbol(code string) string {
	if symbol, ok := currencies[code]; ok {
		return symbol
	}
	return code
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 16)
	return err == nil
}
