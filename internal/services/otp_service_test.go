package services

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/thoughtcode-25/DIGI-FARM/internal/notify"
	apperrors "github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

type fakeNotifier struct {
	mu       sync.Mutex
	fail     bool
	messages []string
}

func (f *fakeNotifier) Name() string { return "fake" }

func (f *fakeNotifier) Send(_ context.Context, _, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("channel down")
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeNotifier) lastCode(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		t.Fatal("no message delivered")
	}
	code := regexp.MustCompile(`\d{6}`).FindString(f.messages[len(f.messages)-1])
	if code == "" {
		t.Fatalf("no code in message %q", f.messages[len(f.messages)-1])
	}
	return code
}

func newOTPFixture(t *testing.T) (*OTPService, *fakeNotifier, *clockwork.FakeClock) {
	t.Helper()
	clock := testClock(t)
	fake := &fakeNotifier{}
	svc := NewOTPService([]notify.Notifier{fake}, clock, 6, 10*time.Minute, 3)
	return svc, fake, clock
}

func TestOTPSendAndVerify(t *testing.T) {
	svc, fake, _ := newOTPFixture(t)

	if err := svc.SendOTP(context.Background(), "9876543210", "registration"); err != nil {
		t.Fatal(err)
	}

	code := fake.lastCode(t)
	if err := svc.VerifyOTP("9876543210", code); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}

	// a code is single-use
	err := svc.VerifyOTP("9876543210", code)
	if apperrors.CodeOf(err) != apperrors.ErrCodeNotFound {
		t.Errorf("reuse code = %s, want %s", apperrors.CodeOf(err), apperrors.ErrCodeNotFound)
	}
}

func TestOTPInvalidPhone(t *testing.T) {
	svc, _, _ := newOTPFixture(t)

	err := svc.SendOTP(context.Background(), "12345", "registration")
	if apperrors.CodeOf(err) != apperrors.ErrCodeValidation {
		t.Errorf("code = %s, want %s", apperrors.CodeOf(err), apperrors.ErrCodeValidation)
	}
}

func TestOTPExpiry(t *testing.T) {
	svc, fake, clk := newOTPFixture(t)

	if err := svc.SendOTP(context.Background(), "9876543210", "login"); err != nil {
		t.Fatal(err)
	}
	code := fake.lastCode(t)

	clk.Advance(11 * time.Minute)

	err := svc.VerifyOTP("9876543210", code)
	if apperrors.CodeOf(err) != apperrors.ErrCodeValidation {
		t.Errorf("expired code = %s, want %s", apperrors.CodeOf(err), apperrors.ErrCodeValidation)
	}
}

func TestOTPMaxAttempts(t *testing.T) {
	svc, fake, _ := newOTPFixture(t)

	if err := svc.SendOTP(context.Background(), "9876543210", "login"); err != nil {
		t.Fatal(err)
	}
	code := fake.lastCode(t)

	for i := 0; i < 3; i++ {
		if err := svc.VerifyOTP("9876543210", "000000"); err == nil {
			t.Fatal("wrong code accepted")
		}
	}

	// the code is burned even if the right one arrives now
	err := svc.VerifyOTP("9876543210", code)
	if apperrors.CodeOf(err) != apperrors.ErrCodeNotFound {
		t.Errorf("after max attempts code = %s, want %s", apperrors.CodeOf(err), apperrors.ErrCodeNotFound)
	}
}

func TestOTPResendReplaces(t *testing.T) {
	svc, fake, _ := newOTPFixture(t)

	if err := svc.SendOTP(context.Background(), "9876543210", "login"); err != nil {
		t.Fatal(err)
	}
	first := fake.lastCode(t)

	if err := svc.SendOTP(context.Background(), "9876543210", "login"); err != nil {
		t.Fatal(err)
	}
	second := fake.lastCode(t)

	if first != second {
		if err := svc.VerifyOTP("9876543210", first); err == nil {
			t.Error("stale code accepted after resend")
		}
	}
	// the fresh code may have been consumed by the check above when equal
	if first == second {
		if err := svc.VerifyOTP("9876543210", second); err != nil {
			t.Errorf("fresh code rejected: %v", err)
		}
	}
}

func TestOTPAllChannelsDown(t *testing.T) {
	clock := testClock(t)
	fake := &fakeNotifier{fail: true}
	svc := NewOTPService([]notify.Notifier{fake}, clock, 6, 10*time.Minute, 3)

	err := svc.SendOTP(context.Background(), "9876543210", "login")
	if apperrors.CodeOf(err) != apperrors.ErrCodeProviderUnavailable {
		t.Errorf("code = %s, want %s", apperrors.CodeOf(err), apperrors.ErrCodeProviderUnavailable)
	}
}
