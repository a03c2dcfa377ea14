package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"blogapi/models"
)

// Claims is the token payload identifying the authenticated user.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256-signed token for the given user. A ttl of
// zero issues a token without an expiry claim.
func SignToken(secret string, ttl time.Duration, u *models.User) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	claims := &Claims{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// verifyToken validates the signature and structure of a token and
// extracts its claims.
func verifyToken(tokenStr, secret string) (*Claims, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}
	c, _ := tok.Claims.(*Claims)
	if c == nil || c.ID == "" || c.Username == "" {
		return nil, errors.New("invalid claims")
	}
	return c, nil
}

// Verifier validates bearer tokens, optionally memoizing successful
// verifications in a TTL-bounded LRU cache to skip repeated signature checks.
type Verifier struct {
	secret string
	cache  *lru.LRU[string, *Claims]
}

// NewVerifier builds a Verifier for the given secret. A cacheSize of
// zero disables the verification cache.
func NewVerifier(secret string, cacheSize int, cacheTTL time.Duration) *Verifier {
	v := &Verifier{secret: secret}
	if cacheSize > 0 {
		v.cache = lru.NewLRU[string, *Claims](cacheSize, nil, cacheTTL)
	}
	return v
}

// Verify validates a raw token string and returns its claims.
func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	if v.cache != nil {
		if c, ok := v.cache.Get(tokenStr); ok {
			return c, nil
		}
	}
	c, err := verifyToken(tokenStr, v.secret)
	if err != nil {
		return nil, err
	}
	if v.cache != nil {
		v.cache.Add(tokenStr, c)
	}
	return c, nil
}
