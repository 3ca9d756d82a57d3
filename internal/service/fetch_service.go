package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"idvex/internal/config"
	"idvex/internal/domain"
	"idvex/internal/endpoint"
)

// FetchService retrieves result documents from the regional verification
// APIs, routing by the caller's access token.
type FetchService interface {
	FetchResult(ctx context.Context, token, requestID string) (any, error)
}

type fetchService struct {
	client          *http.Client
	baseURLOverride string
	pathTemplate    string
}

// NewFetchService creates a new FetchService implementation.
func NewFetchService(cfg config.UpstreamConfig) FetchService {
	return &fetchService{
		client:          &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second},
		baseURLOverride: cfg.BaseURL,
		pathTemplate:    cfg.ResultPathTemplate,
	}
}

func (s *fetchService) FetchResult(ctx context.Context, token, requestID string) (any, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, domain.ErrRequestIDRequired
	}

	base := s.baseURLOverride
	if base == "" {
		info, err := endpoint.Inspect(token)
		if err != nil {
			return nil, err
		}
		if !info.IsValid || info.BaseURL == "" {
			return nil, domain.ErrEndpointUnknown
		}
		base = info.BaseURL
	}

	reqURL := base + fmt.Sprintf(s.pathTemplate, url.PathEscape(requestID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: upstream returned %d", domain.ErrTokenInvalid, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		log.Printf("service.FetchService: upstream %s returned %d", base, resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamFailed, resp.StatusCode)
	}

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamFailed, err)
	}
	return doc, nil
}
