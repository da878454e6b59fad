// Package scope issues and verifies the bearer tokens that identify a user.
package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "tour-booking-api"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is what a verified token tells about its holder.
type Claims struct {
	UserID   string
	IssuedAt time.Time
}

// Manager signs and verifies tokens.
type Manager interface {
	Sign(userID string) (string, error)
	Verify(token string) (Claims, error)
}

type manager struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

// New creates an HS256 Manager.
func New(secret string, expiresIn time.Duration) Manager {
	return &manager{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (m *manager) Sign(userID string) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiresIn)),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *manager) Verify(tokenString string) (Claims, error) {
	var rc jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &rc, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}
	if !token.Valid || rc.Subject == "" || rc.IssuedAt == nil {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		UserID:   rc.Subject,
		IssuedAt: rc.IssuedAt.Time,
	}, nil
}
