package utils

import (
	"testing"
	"time"
)

func TestPanelToken(t *testing.T) {
	PanelTokenSecret = "unit-test-secret"
	PanelTokenTTL = 2 * time.Minute

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := GeneratePanelToken()
		if err != nil {
			t.Fatal("generate:", err)
		}
		if err := ValidatePanelToken(token); err != nil {
			t.Error("fresh token rejected:", err)
		}
	})

	t.Run("TamperedTokenRejected", func(t *testing.T) {
		token, err := GeneratePanelToken()
		if err != nil {
			t.Fatal("generate:", err)
		}
		if err := ValidatePanelToken(token + "x"); err == nil {
			t.Error("tampered token accepted")
		}
	})

	t.Run("EmptyTokenRejected", func(t *testing.T) {
		if err := ValidatePanelToken(""); err == nil {
			t.Error("empty token accepted")
		}
	})

	t.Run("WrongSecretRejected", func(t *testing.T) {
		token, err := GeneratePanelToken()
		if err != nil {
			t.Fatal("generate:", err)
		}
		PanelTokenSecret = "rotated-secret"
		defer func() { PanelTokenSecret = "unit-test-secret" }()
		if err := ValidatePanelToken(token); err == nil {
			t.Error("token signed with the old secret accepted")
		}
	})

	t.Run("ExpiredTokenRejected", func(t *testing.T) {
		PanelTokenTTL = -time.Minute
		defer func() { PanelTokenTTL = 2 * time.Minute }()

		token, err := GeneratePanelToken()
		if err != nil {
			t.Fatal("generate:", err)
		}
		if err := ValidatePanelToken(token); err == nil {
			t.Error("expired token accepted")
		}
	})
}
