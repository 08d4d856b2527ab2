package security

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// One-time codes are sampled uniformly from [100000, 999999], so the text
// form is always six digits with no leading zero.
const (
	otpMin   = 100000
	otpRange = 900000
)

// GenerateOTP returns a 6-digit numeric one-time code drawn from a secure
// random source.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(otpMin+n.Int64(), 10), nil
}
