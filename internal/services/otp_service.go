package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/thoughtcode-25/DIGI-FARM/internal/notify"
	"github.com/thoughtcode-25/DIGI-FARM/internal/security"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/logger"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/utils"
)

type otpEntry struct {
	code      string
	expiresAt time.Time
	attempts  int
}

// OTPService issues and verifies one-time codes for phone verification.
// Codes are short-lived, so they live in memory only.
type OTPService struct {
	notifiers   []notify.Notifier
	clock       clockwork.Clock
	length      int
	expiry      time.Duration
	maxAttempts int

	mu      sync.Mutex
	pending map[string]*otpEntry // keyed by phone number
}

func NewOTPService(notifiers []notify.Notifier, clock clockwork.Clock, length int, expiry time.Duration, maxAttempts int) *OTPService {
	return &OTPService{
		notifiers:   notifiers,
		clock:       clock,
		length:      length,
		expiry:      expiry,
		maxAttempts: maxAttempts,
		pending:     make(map[string]*otpEntry),
	}
}

// SendOTP generates a fresh code for the phone number and delivers it over
// the notifier channels. A new request replaces any outstanding code.
func (s *OTPService) SendOTP(ctx context.Context, phone, purpose string) error {
	if !security.ValidatePhoneNumber(phone) {
		return errors.New(errors.ErrCodeValidation, "invalid phone number")
	}
	if purpose == "" {
		purpose = "verification"
	}

	code := utils.GenerateOTP(s.length)
	if code == "" {
		return errors.New(errors.ErrCodeInternalError, "failed to generate OTP")
	}

	s.mu.Lock()
	s.pending[phone] = &otpEntry{
		code:      code,
		expiresAt: s.clock.Now().Add(s.expiry),
	}
	s.mu.Unlock()

	message := fmt.Sprintf("Your OTP for farm %s is: %s. Valid for %d minutes. Do not share with anyone.",
		purpose, code, int(s.expiry.Minutes()))

	delivered := false
	for _, n := range s.notifiers {
		if err := n.Send(ctx, phone, message); err != nil {
			logger.Warn("OTP delivery failed", "channel", n.Name(), "error", err)
			continue
		}
		delivered = true
	}
	if !delivered && len(s.notifiers) > 0 {
		return errors.New(errors.ErrCodeProviderUnavailable, "failed to deliver OTP on any channel")
	}
	return nil
}

// VerifyOTP checks a submitted code. A code is consumed on success, on
// expiry, and after too many wrong attempts.
func (s *OTPService) VerifyOTP(phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[phone]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "no OTP outstanding for this phone number")
	}
	if s.clock.Now().After(entry.expiresAt) {
		delete(s.pending, phone)
		return errors.New(errors.ErrCodeValidation, "OTP has expired, request a new one")
	}
	if entry.code != code {
		entry.attempts++
		if entry.attempts >= s.maxAttempts {
			delete(s.pending, phone)
			return errors.New(errors.ErrCodeValidation, "too many wrong attempts, request a new OTP")
		}
		return errors.New(errors.ErrCodeValidation, "incorrect OTP")
	}

	delete(s.pending, phone)
	return nil
}
