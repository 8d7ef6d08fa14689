package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AuthorClaim struct {
	ID string `json:"id"`
}

// SessionClaims is the token payload: {"author":{"id":...},"exp":...,"iat":...}.
type SessionClaims struct {
	Author AuthorClaim `json:"author"`
	jwt.RegisteredClaims
}

type TokenVerifier interface {
	ValidateToken(tokenString string) (string, error)
}

func (s *authService) IssueToken(authorID string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Author: AuthorClaim{ID: authorID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken returns the author id carried by a valid, unexpired token.
func (s *authService) ValidateToken(tokenString string) (string, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Author.ID == "" {
		return "", ErrInvalidToken
	}

	return claims.Author.ID, nil
}
