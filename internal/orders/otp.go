package orders

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// OTPValidity is how long a freshly issued code stays usable.
const OTPValidity = 15 * time.Minute

var otpMax = big.NewInt(1000000)

// GenerateOTP returns a uniformly random 6-digit numeric code with leading
// zeros preserved.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
