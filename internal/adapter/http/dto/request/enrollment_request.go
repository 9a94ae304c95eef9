package request

import (
	"encoding/json"
	"fmt"
	"strings"

	"escola_crm/internal/domain/entities"
)

// CreateEnrollmentRequest is the CRM-side proposal submission payload.
type CreateEnrollmentRequest struct {
	ClientID string  `json:"client_id" binding:"required"`
	CourseID string  `json:"course_id" binding:"required"`
	ClassID  string  `json:"class_id"`
	PeriodID string  `json:"period_id" binding:"required"`
	Discount float64 `json:"discount"`
}

type AddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

// ConfirmDataRequest is the step-1 payload. Besides the declared fields the
// form may carry configuration either nested under "config" or as flat
// top-level keys prefixed with "config_"; both are captured, flat keys
// last so they win on collision.
type ConfirmDataRequest struct {
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	CPF         string         `json:"cpf"`
	Phone       string         `json:"phone"`
	Nationality string         `json:"nationality"`
	IdentityDoc string         `json:"identity_doc"`
	BirthDate   string         `json:"birth_date"`
	Address     AddressRequest `json:"address"`
	Config      map[string]any `json:"config"`

	// FlatConfig holds the top-level "config_*" keys, stringified.
	FlatConfig map[string]string `json:"-"`
}

func (r *ConfirmDataRequest) UnmarshalJSON(data []byte) error {
	type alias ConfirmDataRequest
	var base alias
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if !strings.HasPrefix(key, entities.MetaConfigPrefix) {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			s = string(value)
		}
		if base.FlatConfig == nil {
			base.FlatConfig = map[string]string{}
		}
		base.FlatConfig[key] = s
	}

	*r = ConfirmDataRequest(base)
	return nil
}

func (a AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
	}
}

// RenderQuery carries the proposal render knobs accepted as query params.
type RenderQuery struct {
	Engine         string `form:"engine"`
	TTL            int    `form:"ttl"`
	Force          bool   `form:"force"`
	SkipExtraPages bool   `form:"skip_extra_pages"`
	Inline         bool   `form:"inline"`
	ExtraPages     string `form:"extra_pages"`
}

func (q RenderQuery) ToOptions() (entities.RenderOptions, error) {
	opts := entities.RenderOptions{
		Engine:          q.Engine,
		CacheTTLSeconds: q.TTL,
		Force:           q.Force,
		SkipExtraPages:  q.SkipExtraPages,
		NoStore:         q.Inline,
	}
	switch opts.Engine {
	case "", entities.EngineFast, entities.EngineBrowser:
	default:
		return entities.RenderOptions{}, fmt.Errorf("unknown engine %q", opts.Engine)
	}
	if q.ExtraPages != "" {
		opts.ExtraPages = []string{q.ExtraPages}
	}
	return opts, nil
}
