package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/service"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/summarizer"
)

// Pinger is the summarizer's connection-test surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

type AnalyzeHandler struct {
	analyzeService *service.AnalyzeService
	ingestService  *service.IngestService
	pinger         Pinger
}

func NewAnalyzeHandler(analyzeService *service.AnalyzeService, ingestService *service.IngestService, pinger Pinger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzeService: analyzeService,
		ingestService:  ingestService,
		pinger:         pinger,
	}
}

// Analyze handles POST /analyze: synchronous full analysis of one email.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var email model.EmailRecord
	if err := c.ShouldBindJSON(&email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rec, err := h.analyzeService.Analyze(c.Request.Context(), &email)
	if err != nil {
		status, msg := summarizerErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Enqueue handles POST /emails: queue an email for asynchronous analysis.
func (h *AnalyzeHandler) Enqueue(c *gin.Context) {
	var email model.EmailRecord
	if err := c.ShouldBindJSON(&email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.ingestService.Enqueue(c.Request.Context(), &email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue email"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

// PingSummarizer handles GET /summarizer/ping: validates the configured
// credential against the model.
func (h *AnalyzeHandler) PingSummarizer(c *gin.Context) {
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		status, msg := summarizerErrorStatus(err)
		c.JSON(status, gin.H{"ok": false, "error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// summarizerErrorStatus maps summarizer failures onto HTTP statuses. The
// error text is passed through; the caller owns user-visible phrasing.
func summarizerErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, summarizer.ErrNotConfigured):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, summarizer.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, summarizer.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, summarizer.ErrModelWarming):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusBadGateway, err.Error()
	}
}
