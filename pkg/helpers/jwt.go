package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single error returned for every verification
// failure. Callers cannot tell a bad signature from an expired or
// malformed token, and responses built on it must not either.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager issues and verifies the stateless identity tokens. Tokens
// are HS256-signed, carry whatever claims were submitted at issuance,
// and are valid purely by signature and expiry; nothing is stored
// server-side and nothing can be revoked.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl}
}

// Issue signs the claims verbatim, adding iat and an exp of now+TTL.
func (m *JWTManager) Issue(claims map[string]interface{}) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	now := time.Now()
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(m.TTL).Unix()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString(m.Secret)
}

// Verify checks signature and expiry and returns the embedded claims.
func (m *JWTManager) Verify(tokenStr string) (jwt.MapClaims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.Secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
