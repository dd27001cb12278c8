package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"driveacademy/config"

	"github.com/golang-jwt/jwt"
)

// Token audiences. Customer and staff tokens are not interchangeable.
const (
	AudienceCustomer = "customer"
	AudienceStaff    = "staff"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "driveacademy-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT with the given subject (customer or staff ID),
// audience and role. The token expires after the specified duration.
func GenerateToken(subject, audience, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"aud":  audience,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// TokenClaims holds the identity fields extracted from a validated token.
type TokenClaims struct {
	Subject  string
	Audience string
	Role     string
}

// ExtractClaimsFromToken validates a token string and returns its identity claims.
func ExtractClaimsFromToken(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	aud, _ := claims["aud"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{Subject: sub, Audience: aud, Role: role}, nil
}
