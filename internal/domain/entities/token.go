package entities

import (
	"errors"
	"strings"
)

var ErrInvalidCompositeToken = errors.New("invalid composite token")

// CompositeToken addresses one enrollment plus an optional period sub-process.
// Wire form: "{enrollmentID}" or "{enrollmentID}_{periodToken}". It replaces
// the ad hoc string splitting the provider's external_id used to receive.
type CompositeToken struct {
	EnrollmentID string
	PeriodToken  string
}

// ParseCompositeToken splits on the first underscore; everything after it is
// the period token, so period tokens may themselves contain underscores.
func ParseCompositeToken(raw string) (CompositeToken, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CompositeToken{}, ErrInvalidCompositeToken
	}
	id, period, _ := strings.Cut(raw, "_")
	if id == "" {
		return CompositeToken{}, ErrInvalidCompositeToken
	}
	return CompositeToken{EnrollmentID: id, PeriodToken: period}, nil
}

func (t CompositeToken) String() string {
	if t.PeriodToken == "" {
		return t.EnrollmentID
	}
	return t.EnrollmentID + "_" + t.PeriodToken
}

// PublicLinkToken is the "{clientID}_{enrollmentID}" form used in public
// proposal links.
type PublicLinkToken struct {
	ClientID     string
	EnrollmentID string
}

func ParsePublicLinkToken(raw string) (PublicLinkToken, error) {
	raw = strings.TrimSpace(raw)
	clientID, enrollmentID, ok := strings.Cut(raw, "_")
	if !ok || clientID == "" || enrollmentID == "" {
		return PublicLinkToken{}, ErrInvalidCompositeToken
	}
	return PublicLinkToken{ClientID: clientID, EnrollmentID: enrollmentID}, nil
}

func (t PublicLinkToken) String() string {
	return t.ClientID + "_" + t.EnrollmentID
}
