package utils // token helpers shared by the auth handler and middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken pairs a signed JWT with its expiry. Access tokens are the
// only token kind issued: the external auth provider owns long-lived
// sessions, so there is no refresh flow here.
type AccessToken struct {
	Token string    // serialized JWT
	Exp   time.Time // UTC expiration time
}

// NewAccessToken signs an HS256 JWT carrying the user id as subject, the
// user's role, expiry and issued-at. ttlMin is the lifetime in minutes.
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
