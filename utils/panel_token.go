package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	PanelTokenSecret string
	PanelTokenTTL    time.Duration
)

func InitPanelToken() {
	// For tests, use a default secret if the environment doesn't set one
	if os.Getenv("GO_ENV") == "test" && os.Getenv("PANEL_TOKEN_SECRET") == "" {
		os.Setenv("PANEL_TOKEN_SECRET", "test_secret_key")
	}

	PanelTokenSecret = os.Getenv("PANEL_TOKEN_SECRET")
	if PanelTokenSecret == "" {
		log.Fatal("Panel token secret not set")
	}

	PanelTokenTTL = GetEnvAsDuration("PANEL_TOKEN_TTL", 2*time.Minute)
}

// GeneratePanelToken issues the short-lived token a panel window
// presents when attaching its socket.
func GeneratePanelToken() (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   "panel",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(PanelTokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(PanelTokenSecret))
}

// ValidatePanelToken checks the signature and expiry of a panel token.
func ValidatePanelToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(PanelTokenSecret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid panel token")
	}
	return nil
}
