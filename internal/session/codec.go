package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("session: invalid token")

// Claims is the signed session payload: the user identifier plus the
// standard issued-at/expires-at claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Codec signs and verifies self-contained session tokens (HMAC-SHA256).
// The secret is injected at construction; there is no package-level key.
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// Encode produces a signed token for userID valid for ttl.
func (c *Codec) Encode(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID.String(),
	})

	return token.SignedString(c.secret)
}

// Decode verifies the signature and expiry and returns the user ID.
// The signing method is pinned to HS256; the token's own alg header is
// never trusted. Expired, tampered and malformed tokens all return an
// error, which callers treat as "no session".
func (c *Codec) Decode(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
