// Package service provides short-link creation and resolution.
package service

import (
	"crypto/rand"
	"math/big"
)

// ShortIDLength is the fixed length of every generated id. It must stay
// stable for compatibility with persisted rows.
const ShortIDLength = 6

// ShortIDAlphabet is the 62-symbol alphanumeric alphabet ids draw from.
const ShortIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var alphabetSize = big.NewInt(int64(len(ShortIDAlphabet)))

// NewShortID draws a six-character id, each character uniform over the
// alphabet, from the crypto/rand source. Uniqueness is not guaranteed
// here; the store constraint is the arbiter.
func NewShortID() (string, error) {
	id := make([]byte, ShortIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		id[i] = ShortIDAlphabet[n.Int64()]
	}
	return string(id), nil
}
