package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"idvex/internal/domain"
	"idvex/internal/export"
	"idvex/internal/extractor"
)

// ExtractHandler handles report extraction endpoints.
type ExtractHandler struct {
	maxUploadBytes int64
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(maxUploadBytes int64) *ExtractHandler {
	return &ExtractHandler{maxUploadBytes: maxUploadBytes}
}

// ExtractResult is the extraction response payload. DoubleCheck is set when
// the page-mismatch remark triggered a second pass over the document's
// idvResultData sub-tree.
type ExtractResult struct {
	Result      *domain.ResultRecord `json:"result"`
	DoubleCheck *domain.ResultRecord `json:"doubleCheck,omitempty"`
}

// Extract handles POST /api/v1/extract
func (h *ExtractHandler) Extract(c *gin.Context) {
	doc, err := h.readDocument(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, h.run(doc, c.Query("force_result_key")))
}

// Export handles POST /api/v1/extract/export
func (h *ExtractHandler) Export(c *gin.Context) {
	doc, err := h.readDocument(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	rec := extractor.Extract(doc, extractor.Options{ForceResultKey: c.Query("force_result_key")})
	stamp := time.Now().UTC().Format("20060102-150405")

	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=extraction-%s.csv", stamp))
		c.Writer.WriteHeader(http.StatusOK)
		_, _ = c.Writer.Write(export.BOM)
		w := export.NewWriter(c.Writer)
		if err := w.WriteHeader(); err != nil {
			return
		}
		if err := w.WriteRecord(rec); err != nil {
			return
		}
		w.Flush()
	case "xlsx":
		data, err := export.WriteXLSX(rec)
		if err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=extraction-%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		HandleError(c, domain.ErrUnsupportedFormat)
	}
}

// run performs the extraction and, for documents flagged with the
// page-mismatch remark that also carry an idvResultData sibling, the second
// verification pass over that sub-tree. A caller-forced key disables the
// second pass.
func (h *ExtractHandler) run(doc any, forceResultKey string) ExtractResult {
	rec := extractor.Extract(doc, extractor.Options{ForceResultKey: forceResultKey})
	out := ExtractResult{Result: rec}

	if forceResultKey == "" && hasRemarkCode(rec, extractor.PageMismatchCode) {
		if root, ok := doc.(map[string]any); ok {
			if _, present := root["idvResultData"]; present {
				out.DoubleCheck = extractor.Extract(doc, extractor.Options{ForceResultKey: "idvResultData"})
			}
		}
	}
	return out
}

func hasRemarkCode(rec *domain.ResultRecord, code int) bool {
	for _, remark := range rec.Remarks.Processing {
		if remark.Code == code {
			return true
		}
	}
	return false
}

// readDocument decodes the request body with the upload size cap applied.
func (h *ExtractHandler) readDocument(c *gin.Context) (any, error) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.ErrPayloadTooLarge
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}
	if len(data) == 0 {
		return nil, domain.ErrNoInput
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}
	if doc == nil {
		return nil, domain.ErrNoInput
	}
	return doc, nil
}
