package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"paradise/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_SignIn(t *testing.T) {
	authService := services.NewAuthService(testJWTSecret, 0)

	customer, token, err := authService.SignIn()
	assert.NoError(t, err)

	// The simulated sign-on always yields the canned identity.
	assert.Equal(t, "John", customer.FirstName)
	assert.Equal(t, "Doe", customer.LastName)
	assert.Equal(t, "john.doe@gmail.com", customer.Email)
	assert.Empty(t, customer.Phone)
	assert.NotEmpty(t, token)

	// Validate the issued token carries the identity claims.
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "John", claims["first_name"])
	assert.Equal(t, "Doe", claims["last_name"])
	assert.Equal(t, "john.doe@gmail.com", claims["email"])
}

func TestAuthService_SignInDelay(t *testing.T) {
	delay := 50 * time.Millisecond
	authService := services.NewAuthService(testJWTSecret, delay)

	start := time.Now()
	_, _, err := authService.SignIn()
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(testJWTSecret, 0)

	_, tokenString, err := authService.SignIn()
	assert.NoError(t, err)

	// Test valid token
	claims, err := authService.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "john.doe@gmail.com", claims["email"])

	// Test garbage token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "john.doe@gmail.com",
		"exp":   jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test token signed with a different secret
	foreignToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "john.doe@gmail.com",
		"exp":   jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	foreignTokenString, _ := foreignToken.SignedString([]byte("another_secret"))
	_, err = authService.ValidateToken(foreignTokenString)
	assert.Error(t, err)
}
