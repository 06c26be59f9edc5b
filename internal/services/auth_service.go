package services

import (
	"fmt"
	"log"
	"time"

	"paradise/internal/models"

	"github.com/dgrijalva/jwt-go"
)

// Canned identity returned by the simulated sign-on. There is no real
// identity provider behind it.
var simulatedIdentity = models.CustomerInfo{
	FirstName: "John",
	LastName:  "Doe",
	Email:     "john.doe@gmail.com",
	Phone:     "",
}

// AuthService simulates the single-sign-on path of checkout. SignIn waits a
// fixed delay standing in for the provider round trip, then yields a canned
// identity and a signed session token.
type AuthService struct {
	jwtSecret   []byte
	tokenDurat  time.Duration
	signInDelay time.Duration
}

// NewAuthService creates a new AuthService. signInDelay is the simulated
// provider round-trip time; tests pass zero.
func NewAuthService(jwtSecret string, signInDelay time.Duration) *AuthService {
	return &AuthService{
		jwtSecret:   []byte(jwtSecret),
		tokenDurat:  24 * time.Hour,
		signInDelay: signInDelay,
	}
}

// SignIn runs the simulated sign-on: a fixed wait, then the canned identity
// plus a session token. The simulation always succeeds; the error return
// exists so a real provider can slot in without changing callers.
func (s *AuthService) SignIn() (models.CustomerInfo, string, error) {
	time.Sleep(s.signInDelay)

	customer := simulatedIdentity

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"first_name": customer.FirstName,
		"last_name":  customer.LastName,
		"email":      customer.Email,
		"exp":        time.Now().Add(s.tokenDurat).Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return models.CustomerInfo{}, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return customer, tokenString, nil
}

// ValidateToken parses and validates a session token, returning the claims
// if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
