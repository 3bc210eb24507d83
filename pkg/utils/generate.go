package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP creates a numeric one-time code of the given length. Each code
// is independently random per verification; codes are never derived from a
// shared secret or the clock.
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	otp := make([]byte, length)
	for i := range otp {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate OTP digit: %w", err)
		}
		otp[i] = byte('0' + n.Int64())
	}

	return string(otp), nil
}
