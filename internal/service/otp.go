package service

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	otpMin  = 100000
	otpSpan = 900000
)

// GenerateOTP returns a 6-digit code drawn uniformly from
// [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}
