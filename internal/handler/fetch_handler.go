package handler

import (
	"github.com/gin-gonic/gin"

	"idvex/internal/extractor"
	"idvex/internal/middleware"
	"idvex/internal/service"
)

// FetchHandler handles upstream result retrieval endpoints.
type FetchHandler struct {
	fetchService service.FetchService
}

// NewFetchHandler creates a new FetchHandler.
func NewFetchHandler(fetchService service.FetchService) *FetchHandler {
	return &FetchHandler{fetchService: fetchService}
}

// GetResult handles GET /api/v1/results/:requestId. It fetches the raw
// result document from the regional API the caller's token routes to, then
// runs extraction on it.
func (h *FetchHandler) GetResult(c *gin.Context) {
	requestID := c.Param("requestId")
	token := middleware.GetToken(c)

	doc, err := h.fetchService.FetchResult(c.Request.Context(), token, requestID)
	if err != nil {
		HandleError(c, err)
		return
	}

	rec := extractor.Extract(doc, extractor.Options{ForceResultKey: c.Query("force_result_key")})
	RespondOK(c, gin.H{
		"requestId": requestID,
		"result":    rec,
	})
}
