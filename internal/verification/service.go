// internal/verification/service.go
package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/pkg/sms"
)

// Verification errors returned by VerifyCode
var (
	ErrCodeNotFound = errors.New("no verification code requested for this number")
	ErrCodeExpired  = errors.New("verification code expired")
	ErrCodeMismatch = errors.New("verification code does not match")
)

type pendingCode struct {
	code      string
	expiresAt time.Time
}

// Service issues and checks phone verification codes. Codes live in
// process memory only; a restart simply requires requesting a new
// code.
type Service struct {
	mu     sync.Mutex
	codes  map[string]pendingCode
	sender sms.Sender
	logger *logrus.Logger
	expiry time.Duration

	// now is swappable for tests
	now func() time.Time
}

// NewService creates a verification service
func NewService(sender sms.Sender, logger *logrus.Logger, expiry time.Duration) *Service {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &Service{
		codes:  make(map[string]pendingCode),
		sender: sender,
		logger: logger,
		expiry: expiry,
		now:    time.Now,
	}
}

// SendCode generates a fresh six-digit code for the phone number and
// delivers it by SMS. A new request replaces any earlier code for the
// same number.
func (s *Service) SendCode(ctx context.Context, phone string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	body := fmt.Sprintf("Dein Bestätigungscode lautet: %s", code)
	if err := s.sender.Send(ctx, phone, body); err != nil {
		return fmt.Errorf("failed to send verification sms: %w", err)
	}

	s.mu.Lock()
	s.codes[phone] = pendingCode{
		code:      code,
		expiresAt: s.now().Add(s.expiry),
	}
	s.mu.Unlock()

	s.logger.WithField("phone", phone).Info("Verification code sent")
	return nil
}

// VerifyCode checks the submitted code. A correct code is consumed;
// an expired code is evicted so it cannot be retried.
func (s *Service) VerifyCode(phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.codes[phone]
	if !ok {
		return ErrCodeNotFound
	}

	if s.now().After(pending.expiresAt) {
		delete(s.codes, phone)
		return ErrCodeExpired
	}

	if pending.code != code {
		return ErrCodeMismatch
	}

	delete(s.codes, phone)
	return nil
}

// generateCode returns a random six-digit code with leading zeros
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
