package utility

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP returns a random numeric code of the given length, using
// crypto/rand so codes are not guessable.
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate OTP digit: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
