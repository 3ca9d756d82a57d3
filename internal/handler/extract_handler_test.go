package handler

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idvex/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func extractRouter(maxUploadBytes int64) *gin.Engine {
	h := NewExtractHandler(maxUploadBytes)
	r := gin.New()
	r.POST("/extract", h.Extract)
	r.POST("/extract/export", h.Export)
	return r
}

type extractResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Result      *domain.ResultRecord `json:"result"`
		DoubleCheck *domain.ResultRecord `json:"doubleCheck"`
	} `json:"data"`
	Error *APIError `json:"error"`
}

func doExtract(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, extractResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp extractResponse
	if strings.Contains(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestExtractEndpoint(t *testing.T) {
	r := extractRouter(1 << 20)

	w, resp := doExtract(t, r, "/extract", `{
		"resultData": {
			"DocumentStatusReport2": {
				"PrimaryProcessingResult": 0,
				"ProcessingResultRemarks": [0, 20]
			}
		}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data.Result)
	assert.Equal(t, "0 - The request passed OK.", resp.Data.Result.Summary.PrimaryResult)
	assert.Len(t, resp.Data.Result.Remarks.Processing, 2)
	assert.Nil(t, resp.Data.DoubleCheck)
}

func TestExtractEndpointEmptyBody(t *testing.T) {
	r := extractRouter(1 << 20)

	w, resp := doExtract(t, r, "/extract", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NO_INPUT", resp.Error.Code)
}

func TestExtractEndpointInvalidJSON(t *testing.T) {
	r := extractRouter(1 << 20)

	w, resp := doExtract(t, r, "/extract", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_JSON", resp.Error.Code)
}

func TestExtractEndpointPayloadTooLarge(t *testing.T) {
	r := extractRouter(16)

	w, resp := doExtract(t, r, "/extract", `{"resultData": {"ProcessingResultRemarks": [0]}}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", resp.Error.Code)
}

func TestExtractEndpointDoubleCheck(t *testing.T) {
	r := extractRouter(1 << 20)

	w, resp := doExtract(t, r, "/extract", `{
		"resultData": {"ProcessingResultRemarks": [140]},
		"idvResultData": {
			"DocumentStatusReport2": {"PrimaryProcessingResult": 0}
		}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Data.Result)
	require.NotNil(t, resp.Data.DoubleCheck)
	assert.Equal(t, "idvResultData", resp.Data.DoubleCheck.Metadata.ExtractionRootPath)
	assert.Equal(t, "0 - The request passed OK.", resp.Data.DoubleCheck.Summary.PrimaryResult)
}

func TestExtractEndpointForceKeyDisablesDoubleCheck(t *testing.T) {
	r := extractRouter(1 << 20)

	w, resp := doExtract(t, r, "/extract?force_result_key=resultData", `{
		"resultData": {"ProcessingResultRemarks": [140]},
		"idvResultData": {"DocumentStatusReport2": {"PrimaryProcessingResult": 0}}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, resp.Data.DoubleCheck)
}

func TestExportEndpointCSV(t *testing.T) {
	r := extractRouter(1 << 20)

	w, _ := doExtract(t, r, "/extract/export", `{
		"resultData": {
			"DocumentStatusReport2": {
				"PrimaryProcessingResult": 0,
				"ProcessingResultRemarks": [20]
			}
		}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=extraction-")

	body := w.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}))

	rows, err := csv.NewReader(bytes.NewReader(body[3:])).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Section", rows[0][0])
}

func TestExportEndpointXLSX(t *testing.T) {
	r := extractRouter(1 << 20)

	w, _ := doExtract(t, r, "/extract/export?format=xlsx", `{
		"resultData": {"DocumentStatusReport2": {"PrimaryProcessingResult": 0}}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestExportEndpointUnsupportedFormat(t *testing.T) {
	r := extractRouter(1 << 20)

	w, resp := doExtract(t, r, "/extract/export?format=pdf", `{"resultData": {"a": 1}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNSUPPORTED_FORMAT", resp.Error.Code)
}
