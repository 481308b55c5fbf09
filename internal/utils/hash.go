package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintLen is the number of hex characters kept by Fingerprint.
const fingerprintLen = 16

// Fingerprint returns a short keyed HMAC-SHA256 digest of data, hex
// encoded. It lets log entries correlate requests for the same phone
// number without writing the number itself.
//
// Example usage:
//
//	log.Str("phone_fp", utils.Fingerprint(phone, signKey))
func Fingerprint(data, key string) string {
	return HashString(data, key)[:fingerprintLen]
}

// HashString computes an HMAC-SHA256 signature over data using key and
// returns it hex encoded.
func HashString(data string, key string) string {
	hasher := hmac.New(sha256.New, []byte(key))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
