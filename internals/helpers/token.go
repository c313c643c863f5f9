// helpers/token.go
package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenClaims adalah klaim yang dibaca klien dari access token.
// Klien TIDAK memverifikasi tanda tangan (kunci ada di server); klaim hanya
// dipakai untuk preflight: cek kadaluarsa sebelum request dan gating menu admin.
type TokenClaims struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// ParseClaims membaca payload JWT tanpa verifikasi tanda tangan.
func ParseClaims(raw string) (*TokenClaims, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if raw == "" {
		return nil, errors.New("token kosong")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, err
	}

	tc := &TokenClaims{}
	if v, ok := claims["user_id"].(string); ok {
		tc.UserID = v
	} else if v, ok := claims["sub"].(string); ok {
		tc.UserID = v
	}
	if v, ok := claims["role"].(string); ok {
		tc.Role = v
	}
	if exp, ok := claims["exp"].(float64); ok {
		tc.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return tc, nil
}

// IsExpired melaporkan apakah token sudah lewat masa berlakunya.
// Token tanpa klaim exp dianggap belum kadaluarsa.
func (c *TokenClaims) IsExpired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return now.After(c.ExpiresAt)
}

// IsAdmin melaporkan apakah pemegang token memiliki role admin.
func (c *TokenClaims) IsAdmin() bool {
	return c.Role == "admin"
}
