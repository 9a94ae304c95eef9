package entities

import (
	"errors"
	"testing"
)

func TestParseCompositeToken(t *testing.T) {
	t.Run("splits on the first underscore only", func(t *testing.T) {
		tok, err := ParseCompositeToken("enr-1_modulo_2024_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.EnrollmentID != "enr-1" {
			t.Fatalf("unexpected enrollment id: %q", tok.EnrollmentID)
		}
		if tok.PeriodToken != "modulo_2024_1" {
			t.Fatalf("unexpected period token: %q", tok.PeriodToken)
		}
	})

	t.Run("numeric ids", func(t *testing.T) {
		tok, err := ParseCompositeToken("482_p7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.EnrollmentID != "482" || tok.PeriodToken != "p7" {
			t.Fatalf("unexpected token: %+v", tok)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		raw := CompositeToken{EnrollmentID: "enr-9", PeriodToken: "p_1"}.String()
		tok, err := ParseCompositeToken(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.EnrollmentID != "enr-9" || tok.PeriodToken != "p_1" {
			t.Fatalf("round trip mismatch: %+v", tok)
		}
	})

	t.Run("accepts enrollment-only tokens", func(t *testing.T) {
		tok, err := ParseCompositeToken("enr-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.EnrollmentID != "enr-7" || tok.PeriodToken != "" {
			t.Fatalf("unexpected token: %+v", tok)
		}
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "_period"} {
			if _, err := ParseCompositeToken(raw); !errors.Is(err, ErrInvalidCompositeToken) {
				t.Fatalf("expected ErrInvalidCompositeToken for %q, got %v", raw, err)
			}
		}
	})
}

func TestPublicLinkToken(t *testing.T) {
	raw := PublicLinkToken{ClientID: "cli-1", EnrollmentID: "enr-1"}.String()
	tok, err := ParsePublicLinkToken(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.ClientID != "cli-1" || tok.EnrollmentID != "enr-1" {
		t.Fatalf("round trip mismatch: %+v", tok)
	}
}

func TestPeriodScopedKey(t *testing.T) {
	if got := PeriodScopedKey(MetaKeyEnvelopeSent, "2024_1"); got != "enviar_envelope_2024_1" {
		t.Fatalf("unexpected key: %q", got)
	}
	if got := PeriodScopedKey(MetaKeyEnvelopeSent, ""); got != MetaKeyEnvelopeSent {
		t.Fatalf("expected unscoped key, got %q", got)
	}
}
