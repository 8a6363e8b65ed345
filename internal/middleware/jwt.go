package middleware

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plazacomercial/locales-service/internal/utils"
)

// TokenIssuer identifies the service that issues all access tokens.
const TokenIssuer = utils.OrganizationName

// ValidateToken checks the token's HMAC signature, expiry and issuer.
// Expired tokens surface as an error wrapping jwt.ErrTokenExpired.
func ValidateToken(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	},
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
