package security

import (
	"crypto/rand"
	"errors"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the
// requested length. Bias is avoided by rejection sampling: random bytes past
// the largest multiple of the alphabet size are discarded.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := byte(256 - 256%len(alphabet))
	value := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(value) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}
		for _, b := range buffer {
			if limit != 0 && b >= limit {
				continue
			}
			value = append(value, alphabet[int(b)%len(alphabet)])
			if len(value) == length {
				break
			}
		}
	}

	return string(value), nil
}
