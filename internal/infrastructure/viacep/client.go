// Package viacep implements address lookup against the ViaCEP public API.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/taskflow/backend/internal/domain/address"
	"github.com/taskflow/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const cepDigits = 8

// Client calls the ViaCEP HTTP API. It implements address.Provider:
// every failure, from malformed input to a dead upstream, resolves to
// a nil record so callers never see lookup errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a ViaCEP client from configuration
func NewClient(cfg *config.ViaCepConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("viacep"),
	}
}

// viaCepResponse mirrors the ViaCEP JSON payload. The API answers an
// unknown CEP with HTTP 200 and {"erro": true}.
type viaCepResponse struct {
	Cep         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	Uf          string `json:"uf"`
	Erro        bool   `json:"erro"`
}

// Lookup resolves a raw CEP to an address record. The raw value may
// carry a hyphen ("01001-000") or be bare digits; anything that does
// not normalize to exactly 8 digits resolves to absence without an
// outbound call.
func (c *Client) Lookup(ctx context.Context, rawPostalCode string) (*address.Record, error) {
	if len(rawPostalCode) < cepDigits || len(rawPostalCode) > cepDigits+1 {
		return nil, nil
	}

	cep := stripNonDigits(rawPostalCode)
	if len(cep) != cepDigits {
		return nil, nil
	}

	url := fmt.Sprintf("%s/%s/json", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn("failed to build lookup request", zap.String("cep", cep), zap.Error(err))
		return nil, nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("cep lookup failed", zap.String("cep", cep), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("cep lookup returned non-200 status",
			zap.String("cep", cep),
			zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var payload viaCepResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("failed to decode cep lookup response", zap.String("cep", cep), zap.Error(err))
		return nil, nil
	}

	if payload.Erro {
		return nil, nil
	}

	return &address.Record{
		PostalCode: payload.Cep,
		Street:     payload.Logradouro,
		Complement: payload.Complemento,
		District:   payload.Bairro,
		City:       payload.Localidade,
		State:      payload.Uf,
	}, nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Ensure Client implements address.Provider
var _ address.Provider = (*Client)(nil)
