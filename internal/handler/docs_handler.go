package handler

import (
	"sort"

	"github.com/gin-gonic/gin"

	"idvex/internal/taxonomy"
)

// DocsHandler serves the static remark taxonomy tables.
type DocsHandler struct{}

// NewDocsHandler creates a new DocsHandler.
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

type remarkDoc struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

type primaryDoc struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Processing handles GET /api/v1/documentation/processing
func (h *DocsHandler) Processing(c *gin.Context) {
	docs := make([]remarkDoc, 0, len(taxonomy.ProcessingRemarks))
	for code, msg := range taxonomy.ProcessingRemarks {
		docs = append(docs, remarkDoc{Code: code, Message: msg, Category: taxonomy.ProcessingCategory(code)})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Code < docs[j].Code })
	RespondOK(c, docs)
}

// Risk handles GET /api/v1/documentation/risk
func (h *DocsHandler) Risk(c *gin.Context) {
	docs := make([]remarkDoc, 0, len(taxonomy.RiskRemarks))
	for code, msg := range taxonomy.RiskRemarks {
		docs = append(docs, remarkDoc{Code: code, Message: msg, Category: taxonomy.RiskCategory(code)})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Code < docs[j].Code })
	RespondOK(c, docs)
}

// Primary handles GET /api/v1/documentation/primary
func (h *DocsHandler) Primary(c *gin.Context) {
	docs := make([]primaryDoc, 0, len(taxonomy.PrimaryResults))
	for code, msg := range taxonomy.PrimaryResults {
		docs = append(docs, primaryDoc{Code: code, Message: msg})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Code < docs[j].Code })
	RespondOK(c, docs)
}

// Categories handles GET /api/v1/documentation/categories
func (h *DocsHandler) Categories(c *gin.Context) {
	RespondOK(c, gin.H{
		"processing": taxonomy.ProcessingCategories,
		"risk":       taxonomy.RiskCategories,
	})
}
