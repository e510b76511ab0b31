package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "hirely"

// SessionClaims is the payload of the session cookie. The token only points
// at a session row; revocation happens by deleting that row.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

func (c *TokenCodec) Sign(sessionID, accountID int64, email string, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		SessionID: strconv.FormatInt(sessionID, 10),
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, algorithm, issuer and expiry and returns the session id.
// Every failure is ErrUnauthenticated.
func (c *TokenCodec) Parse(token string) (int64, *SessionClaims, error) {
	if token == "" {
		return 0, nil, ErrUnauthenticated
	}
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, nil, errors.Join(ErrUnauthenticated, err)
	}
	sid, err := strconv.ParseInt(claims.SessionID, 10, 64)
	if err != nil || sid <= 0 {
		return 0, nil, ErrUnauthenticated
	}
	return sid, claims, nil
}
