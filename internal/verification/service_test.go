// internal/verification/service_test.go
package verification

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSender captures sent messages instead of delivering them
type recordingSender struct {
	mu       sync.Mutex
	messages []string
	to       []string
}

func (s *recordingSender) Send(ctx context.Context, to, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.to = append(s.to, to)
	s.messages = append(s.messages, body)
	return nil
}

func (s *recordingSender) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages[len(s.messages)-1]
}

var codePattern = regexp.MustCompile(`\d{6}`)

func newTestService(t *testing.T) (*Service, *recordingSender) {
	t.Helper()
	sender := &recordingSender{}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(sender, logger, 15*time.Minute), sender
}

func sentCode(t *testing.T, sender *recordingSender) string {
	t.Helper()
	code := codePattern.FindString(sender.last())
	require.Len(t, code, 6)
	return code
}

func TestSendAndVerifyCode(t *testing.T) {
	svc, sender := newTestService(t)

	require.NoError(t, svc.SendCode(context.Background(), "+491511111111"))
	code := sentCode(t, sender)

	assert.NoError(t, svc.VerifyCode("+491511111111", code))
}

func TestVerifyCodeIsConsumedOnSuccess(t *testing.T) {
	svc, sender := newTestService(t)

	require.NoError(t, svc.SendCode(context.Background(), "+491511111111"))
	code := sentCode(t, sender)

	require.NoError(t, svc.VerifyCode("+491511111111", code))
	assert.ErrorIs(t, svc.VerifyCode("+491511111111", code), ErrCodeNotFound)
}

func TestVerifyCodeUnknownNumber(t *testing.T) {
	svc, _ := newTestService(t)
	assert.ErrorIs(t, svc.VerifyCode("+490000000000", "123456"), ErrCodeNotFound)
}

func TestVerifyCodeMismatchKeepsCode(t *testing.T) {
	svc, sender := newTestService(t)

	require.NoError(t, svc.SendCode(context.Background(), "+491511111111"))
	code := sentCode(t, sender)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	assert.ErrorIs(t, svc.VerifyCode("+491511111111", wrong), ErrCodeMismatch)
	// The right code still works after a failed attempt
	assert.NoError(t, svc.VerifyCode("+491511111111", code))
}

func TestVerifyCodeExpiredIsEvicted(t *testing.T) {
	svc, sender := newTestService(t)

	require.NoError(t, svc.SendCode(context.Background(), "+491511111111"))
	code := sentCode(t, sender)

	// Move the clock past the expiry
	svc.now = func() time.Time { return time.Now().Add(16 * time.Minute) }

	assert.ErrorIs(t, svc.VerifyCode("+491511111111", code), ErrCodeExpired)

	// The expired code was evicted, so a retry reports not found
	assert.ErrorIs(t, svc.VerifyCode("+491511111111", code), ErrCodeNotFound)
}

func TestNewCodeReplacesOldCode(t *testing.T) {
	svc, sender := newTestService(t)

	require.NoError(t, svc.SendCode(context.Background(), "+491511111111"))
	first := sentCode(t, sender)

	require.NoError(t, svc.SendCode(context.Background(), "+491511111111"))
	second := sentCode(t, sender)

	if first != second {
		assert.ErrorIs(t, svc.VerifyCode("+491511111111", first), ErrCodeMismatch)
	}
	assert.NoError(t, svc.VerifyCode("+491511111111", second))
}

func TestCodesAreIndependentPerNumber(t *testing.T) {
	svc, sender := newTestService(t)

	require.NoError(t, svc.SendCode(context.Background(), "+491511111111"))
	codeA := sentCode(t, sender)

	require.NoError(t, svc.SendCode(context.Background(), "+492222222222"))
	codeB := sentCode(t, sender)

	assert.NoError(t, svc.VerifyCode("+492222222222", codeB))
	assert.NoError(t, svc.VerifyCode("+491511111111", codeA))
}
