package internal

import (
	"crypto/subtle"
	"strings"

	"gitee.com/golang-module/dongle"
)

const hashDelimiter = "|"

// SecureHash joins values and the secret with "|" and returns the lowercase
// hex SHA-1 digest. Field order is part of the gateway contract.
func SecureHash(secret string, values ...string) string {
	parts := make([]string, 0, len(values)+1)
	parts = append(parts, values...)
	parts = append(parts, secret)
	return dongle.Encrypt.FromString(strings.Join(parts, hashDelimiter)).BySha1().ToHexString()
}

// hashEqual compares two hashes in constant time.
func hashEqual(expected, received string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(received)) == 1
}
