package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idvex/internal/domain"
	"idvex/internal/middleware"
	"idvex/internal/service"
)

func TestHealthEndpoint(t *testing.T) {
	r := gin.New()
	r.GET("/healthz", NewHealthHandler().Liveness)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, Version, body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestTokenInspectEndpoint(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"scp":    "workflow:api",
		"apiUrl": "https://weu-api.au10tixservices.com/API.WEU.PRD/",
	}).SignedString([]byte("test"))
	require.NoError(t, err)

	r := gin.New()
	r.POST("/token/inspect", NewTokenHandler().Inspect)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/token/inspect", strings.NewReader(`{"token": "`+token+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			APIType string `json:"apiType"`
			Region  string `json:"region"`
			BaseURL string `json:"baseUrl"`
			IsValid bool   `json:"isValid"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "workflow", resp.Data.APIType)
	assert.Equal(t, "WEU", resp.Data.Region)
	assert.Equal(t, "https://weu-api.au10tixservices.com", resp.Data.BaseURL)
	assert.True(t, resp.Data.IsValid)
}

func TestTokenInspectEndpointFromHeader(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"scp": "bos",
	}).SignedString([]byte("test"))
	require.NoError(t, err)

	r := gin.New()
	r.POST("/token/inspect", NewTokenHandler().Inspect)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/token/inspect", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenInspectEndpointMissingToken(t *testing.T) {
	r := gin.New()
	r.POST("/token/inspect", NewTokenHandler().Inspect)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/token/inspect", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "TOKEN_REQUIRED", resp.Error.Code)
}

func TestTokenInspectEndpointMalformedToken(t *testing.T) {
	r := gin.New()
	r.POST("/token/inspect", NewTokenHandler().Inspect)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/token/inspect", strings.NewReader(`{"token": "garbage"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "TOKEN_INVALID", resp.Error.Code)
}

func TestDocsEndpoints(t *testing.T) {
	h := NewDocsHandler()
	r := gin.New()
	r.GET("/processing", h.Processing)
	r.GET("/risk", h.Risk)
	r.GET("/primary", h.Primary)
	r.GET("/categories", h.Categories)

	for _, path := range []string{"/processing", "/risk", "/primary"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)

		var resp struct {
			Success bool              `json:"success"`
			Data    []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), path)
		assert.True(t, resp.Success, path)
		assert.NotEmpty(t, resp.Data, path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Processing []json.RawMessage `json:"processing"`
			Risk       []json.RawMessage `json:"risk"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Processing)
	assert.NotEmpty(t, resp.Data.Risk)
}

func TestDocsProcessingSortedByCode(t *testing.T) {
	r := gin.New()
	r.GET("/processing", NewDocsHandler().Processing)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/processing", nil))

	var resp struct {
		Data []struct {
			Code int `json:"code"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for i := 1; i < len(resp.Data); i++ {
		assert.Less(t, resp.Data[i-1].Code, resp.Data[i].Code)
	}
}

type stubFetchService struct {
	doc any
	err error

	gotToken     string
	gotRequestID string
}

func (s *stubFetchService) FetchResult(_ context.Context, token, requestID string) (any, error) {
	s.gotToken = token
	s.gotRequestID = requestID
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

var _ service.FetchService = (*stubFetchService)(nil)

func fetchRouter(svc service.FetchService) *gin.Engine {
	r := gin.New()
	results := r.Group("/results")
	results.Use(middleware.BearerToken())
	results.GET("/:requestId", NewFetchHandler(svc).GetResult)
	return r
}

func TestFetchEndpoint(t *testing.T) {
	stub := &stubFetchService{doc: map[string]any{
		"resultData": map[string]any{
			"DocumentStatusReport2": map[string]any{"PrimaryProcessingResult": float64(0)},
		},
	}}
	r := fetchRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/results/req-123", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "some-token", stub.gotToken)
	assert.Equal(t, "req-123", stub.gotRequestID)

	var resp struct {
		Data struct {
			RequestID string               `json:"requestId"`
			Result    *domain.ResultRecord `json:"result"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.Data.RequestID)
	require.NotNil(t, resp.Data.Result)
	assert.Equal(t, "0 - The request passed OK.", resp.Data.Result.Summary.PrimaryResult)
}

func TestFetchEndpointRequiresToken(t *testing.T) {
	r := fetchRouter(&stubFetchService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/results/req-123", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFetchEndpointUpstreamError(t *testing.T) {
	r := fetchRouter(&stubFetchService{err: domain.ErrUpstreamFailed})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/results/req-123", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UPSTREAM_FAILED", resp.Error.Code)
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNoInput, http.StatusBadRequest, "NO_INPUT"},
		{domain.ErrInvalidJSON, http.StatusBadRequest, "INVALID_JSON"},
		{domain.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
		{domain.ErrTokenRequired, http.StatusUnauthorized, "TOKEN_REQUIRED"},
		{domain.ErrTokenInvalid, http.StatusUnauthorized, "TOKEN_INVALID"},
		{domain.ErrRequestIDRequired, http.StatusBadRequest, "REQUEST_ID_REQUIRED"},
		{domain.ErrEndpointUnknown, http.StatusBadRequest, "ENDPOINT_UNKNOWN"},
		{domain.ErrUpstreamFailed, http.StatusBadGateway, "UPSTREAM_FAILED"},
		{domain.ErrUnsupportedFormat, http.StatusBadRequest, "UNSUPPORTED_FORMAT"},
		{assert.AnError, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		status, code, msg := MapDomainError(tt.err)
		assert.Equal(t, tt.status, status, tt.code)
		assert.Equal(t, tt.code, code)
		assert.NotEmpty(t, msg)
	}
}
