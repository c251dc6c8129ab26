// Package shortlink turns recipe ids into short base36 tokens and back.
package shortlink

import (
	"errors"
	"strconv"
)

// MaxTokenLength is the length of the largest uint64 in base36.
const MaxTokenLength = 13

var ErrInvalidToken = errors.New("invalid short link token")

func Encode(id uint64) string {
	return strconv.FormatUint(id, 36)
}

func Decode(token string) (uint64, error) {
	if token == "" || len(token) > MaxTokenLength {
		return 0, ErrInvalidToken
	}
	for _, r := range token {
		if !isAlnum(r) {
			return 0, ErrInvalidToken
		}
	}

	id, err := strconv.ParseUint(token, 36, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
