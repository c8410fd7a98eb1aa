// Package auth issues and verifies access tokens and password hashes.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type Claims struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	LeadScope string `json:"leadScope"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs an HS256 token carrying the user's identity, role and scope.
func (t *Tokens) Issue(u *models.User) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)

	claims := Claims{
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		LeadScope: u.LeadScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse verifies the token and returns the actor it names. Any failure is
// reported as invalid_token.
func (t *Tokens) Parse(raw string) (access.Actor, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return access.Actor{}, httperr.ErrUnauthenticated("invalid_token")
	}

	actor := access.Actor{
		ID:        claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      access.Role(claims.Role),
		LeadScope: access.Scope(claims.LeadScope),
	}
	if actor.ID == "" || !actor.Role.Valid() || !actor.LeadScope.Valid() {
		return access.Actor{}, httperr.ErrUnauthenticated("invalid_token")
	}
	return actor, nil
}
