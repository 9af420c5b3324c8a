// Package session models the authenticated caller as an explicit value that
// is passed into every workflow operation.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
)

var ErrInvalidToken = errors.New("invalid token")

type Session struct {
	UserID    uint
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.UserID != 0 && now.Before(s.ExpiresAt)
}

// Require is the guard every identity-bound operation runs first.
func Require(s *Session) error {
	if !s.Valid(time.Now()) {
		return httperr.ErrBusiness("unauthenticated")
	}
	return nil
}

// Revoker keeps track of tokens invalidated before their expiry.
type Revoker interface {
	Revoke(ctx context.Context, s *Session) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

func (i *Issuer) Issue(userID uint) (string, *Session, error) {
	now := i.now()
	s := &Session{
		UserID:    userID,
		TokenID:   uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(i.ttl),
	}

	claims := jwt.MapClaims{
		"sub": s.UserID,
		"jti": s.TokenID,
		"iat": s.IssuedAt.Unix(),
		"exp": s.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, s, nil
}

func (i *Issuer) Parse(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok1 := claims["sub"].(float64)
	jti, ok2 := claims["jti"].(string)
	iat, ok3 := claims["iat"].(float64)
	exp, ok4 := claims["exp"].(float64)
	if !ok1 || !ok2 || !ok3 || !ok4 || sub <= 0 {
		return nil, ErrInvalidToken
	}

	return &Session{
		UserID:    uint(sub),
		TokenID:   jti,
		IssuedAt:  time.Unix(int64(iat), 0),
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
