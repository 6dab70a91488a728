package authsvc

import (
	"errors"
	"testing"
	"time"

	"github.com/InderX84/FarmX/internal/common"
)

func TestCheckOTP(t *testing.T) {
	now := time.Now()
	valid := now.Add(5 * time.Minute).UnixMilli()
	expired := now.Add(-time.Minute).UnixMilli()

	tests := []struct {
		name      string
		stored    string
		expiresAt int64
		attempts  int
		submitted string
		want      error
	}{
		{"correct code", "123456", valid, 0, "123456", nil},
		{"wrong code", "123456", valid, 0, "654321", common.ErrOTPInvalid},
		{"expired code", "123456", expired, 0, "123456", common.ErrOTPExpired},
		{"no code stored", "", valid, 0, "123456", common.ErrOTPInvalid},
		{"too many attempts", "123456", valid, OTPMaxAttempts, "123456", common.ErrOTPAttempts},
		{"attempts checked before expiry", "123456", expired, OTPMaxAttempts, "123456", common.ErrOTPAttempts},
		{"wrong code wins over expiry", "123456", expired, 0, "654321", common.ErrOTPInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOTP(tt.stored, tt.expiresAt, tt.attempts, tt.submitted, now)
			if !errors.Is(err, tt.want) {
				t.Errorf("CheckOTP() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCheckVerification(t *testing.T) {
	now := time.Now()
	valid := now.Add(5 * time.Minute).UnixMilli()

	t.Run("already verified rejects even the correct code", func(t *testing.T) {
		err := CheckVerification(true, "123456", valid, 0, "123456", now)
		if !errors.Is(err, errAlreadyVerified) {
			t.Fatalf("CheckVerification() = %v, want already-verified error", err)
		}
		var customErr *common.Error
		if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusBadRequest {
			t.Errorf("expected a 400 response, got %v", err)
		}
	})

	t.Run("already verified does not count as a failed attempt", func(t *testing.T) {
		err := CheckVerification(true, "123456", valid, 0, "000000", now)
		if errors.Is(err, common.ErrOTPInvalid) {
			t.Errorf("CheckVerification() = %v, must not report an invalid code", err)
		}
	})

	t.Run("unverified delegates to the code check", func(t *testing.T) {
		if err := CheckVerification(false, "123456", valid, 0, "123456", now); err != nil {
			t.Errorf("CheckVerification() = %v, want nil", err)
		}
		if err := CheckVerification(false, "123456", valid, 0, "654321", now); !errors.Is(err, common.ErrOTPInvalid) {
			t.Errorf("CheckVerification() = %v, want %v", err, common.ErrOTPInvalid)
		}
	})
}

func TestCanResendOTP(t *testing.T) {
	now := time.Now()

	if !CanResendOTP(0, now) {
		t.Error("expected resend allowed when no previous request")
	}
	if CanResendOTP(now.Add(-30*time.Second).UnixMilli(), now) {
		t.Error("expected resend blocked 30s after previous request")
	}
	if !CanResendOTP(now.Add(-61*time.Second).UnixMilli(), now) {
		t.Error("expected resend allowed 61s after previous request")
	}
}
