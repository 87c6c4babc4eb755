// Package codes implements the verification-code store: at most one
// outstanding 6-digit code per phone number, valid for a configured
// window and consumed on the first successful match.
package codes

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/shazhupan/activity-portal/internal/common"
)

// entry is the stored state for one phone number.
type entry struct {
	code      string
	expiresAt time.Time
}

type Store struct {
	mu       sync.Mutex
	entries  map[string]entry
	validity time.Duration
	sender   Sender

	// now is swapped out in expiry tests.
	now func() time.Time
}

func NewStore(validity time.Duration, sender Sender) *Store {
	return &Store{
		entries:  make(map[string]entry),
		validity: validity,
		sender:   sender,
		now:      time.Now,
	}
}

// Issue generates a fresh code for phone, replacing any outstanding one,
// and hands it to the sender for delivery. The code is also returned so
// the API layer can echo it in development mode.
func (s *Store) Issue(ctx context.Context, phone string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("generating code: %w", err)
	}

	s.mu.Lock()
	s.entries[phone] = entry{code: code, expiresAt: s.now().Add(s.validity)}
	s.mu.Unlock()

	if err := s.sender.Send(ctx, phone, code); err != nil {
		return "", fmt.Errorf("sending code: %w", err)
	}

	return code, nil
}

// Consume checks candidate against the outstanding code for phone.
// The entry is removed on success and on detected expiry. A mismatch
// leaves it in place so the caller may retry.
//
// Candidate format is a precondition: callers must reject anything that
// fails IsValidCode before getting here.
func (s *Store) Consume(ctx context.Context, phone, candidate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[phone]
	if !ok {
		return common.ErrCodeNotFound
	}

	if s.now().After(e.expiresAt) {
		delete(s.entries, phone)
		return common.ErrCodeExpired
	}

	if e.code != candidate {
		return common.ErrCodeMismatch
	}

	delete(s.entries, phone)
	return nil
}

// IsValidCode reports whether candidate is exactly six ASCII digits.
func IsValidCode(candidate string) bool {
	if len(candidate) != 6 {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		if candidate[i] < '0' || candidate[i] > '9' {
			return false
		}
	}
	return true
}

// generateCode returns a uniformly random code in [100000, 999999], so
// codes never carry a leading zero.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
