// internals/middlewares/auth/blacklist.go
package auth

import (
	"sync"
	"time"
)

// TokenBlacklist menyimpan access token yang sudah di-logout.
// In-memory, ikut reset saat proses restart (selaras dengan store demo).
type TokenBlacklist struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // token -> expiry
}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{tokens: make(map[string]time.Time)}
}

// Revoke memasukkan token ke blacklist sampai waktu kedaluwarsanya.
func (b *TokenBlacklist) Revoke(token string, expiresAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[token] = expiresAt
	// bersihkan entry yang sudah lewat sekalian
	now := time.Now()
	for tok, exp := range b.tokens {
		if exp.Before(now) {
			delete(b.tokens, tok)
		}
	}
}

func (b *TokenBlacklist) Contains(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	exp, ok := b.tokens[token]
	if !ok {
		return false
	}
	return exp.After(time.Now())
}
