// Package authsvc - registration, email verification and login.
package authsvc

import (
	"time"

	"github.com/InderX84/FarmX/internal/common"
)

// OTP policy.
const (
	OTPLength      = 6
	OTPTTL         = 10 * time.Minute
	OTPMaxAttempts = 5
	OTPResendWait  = time.Minute
)

var errAlreadyVerified = common.NewError(common.ErrCodeBusinessState,
	"Email is already verified", common.StatusBadRequest, nil)

// CheckVerification decides the outcome of a verify request. A verified
// account rejects the code outright; no session is opened and no attempt is
// consumed.
func CheckVerification(verified bool, stored string, expiresAt int64, attempts int, submitted string, now time.Time) error {
	if verified {
		return errAlreadyVerified
	}
	return CheckOTP(stored, expiresAt, attempts, submitted, now)
}

// CheckOTP validates a submitted verification code against stored state.
// A mismatch is reported before expiry, so a wrong code always counts as an
// attempt. Attempt counting happens in the caller; this only decides the
// outcome.
func CheckOTP(stored string, expiresAt int64, attempts int, submitted string, now time.Time) error {
	if attempts >= OTPMaxAttempts {
		return common.ErrOTPAttempts
	}
	if stored == "" || stored != submitted {
		return common.ErrOTPInvalid
	}
	if expiresAt == 0 || now.UnixMilli() > expiresAt {
		return common.ErrOTPExpired
	}
	return nil
}

// CanResendOTP reports whether enough time has passed since the last code was
// sent to allow another one.
func CanResendOTP(lastRequest int64, now time.Time) bool {
	if lastRequest == 0 {
		return true
	}
	return now.UnixMilli()-lastRequest >= OTPResendWait.Milliseconds()
}
