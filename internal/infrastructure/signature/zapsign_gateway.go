package signature

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase/interfaces"
)

var ErrMissingZapSignAPIToken = errors.New("missing ZAPSIGN_API_TOKEN")

const defaultRequestTimeout = 15 * time.Second

// ZapSignGateway submits signature envelopes to ZapSign.
//
// The provider call is the only short-timeout suspension point of the
// pipeline; everything downstream (webhook, downloads) runs on its own
// schedule.

type ZapSignGateway struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

var _ interfaces.ISignatureGateway = (*ZapSignGateway)(nil)

// NewZapSignGateway reads ZAPSIGN_BASE_URL (default production API) and
// requires ZAPSIGN_API_TOKEN.
func NewZapSignGateway() (*ZapSignGateway, error) {
	apiToken := strings.TrimSpace(os.Getenv("ZAPSIGN_API_TOKEN"))
	if apiToken == "" {
		log.Printf("[signature][gateway] missing ZAPSIGN_API_TOKEN")
		return nil, ErrMissingZapSignAPIToken
	}

	baseURL := strings.TrimRight(os.Getenv("ZAPSIGN_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = "https://api.zapsign.com.br/api/v1"
	}

	log.Printf("[signature][gateway] ZapSign client initialized base_url=%s", baseURL)
	return &ZapSignGateway{
		baseURL:  baseURL,
		apiToken: apiToken,
		client:   &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

func (g *ZapSignGateway) CreateEnvelope(ctx context.Context, envReq entities.EnvelopeRequest) (json.RawMessage, error) {
	body, err := json.Marshal(envReq)
	if err != nil {
		return nil, err
	}
	log.Printf("[signature][gateway] create start external_id=%s docs=%d signers=%d", envReq.ExternalID, len(envReq.Docs), len(envReq.Signers))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/docs", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiToken)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[signature][gateway] create transport failure external_id=%s err=%v", envReq.ExternalID, err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[signature][gateway] create rejected external_id=%s status=%d body=%s", envReq.ExternalID, resp.StatusCode, truncate(string(raw), 512))
		return nil, fmt.Errorf("signature provider status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	log.Printf("[signature][gateway] create success external_id=%s status=%d", envReq.ExternalID, resp.StatusCode)
	return raw, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
