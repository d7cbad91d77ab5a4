package api

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Leckan/real-estate-analyzer/internal/analyzer"
	"github.com/Leckan/real-estate-analyzer/internal/models"
)

const (
	msgFieldsRequired = "All fields are required"
	msgInvalidBody    = "Invalid request body"
	msgAnalysisFailed = "Failed to analyze property. Please try again."
)

// PropertyAnalyzer is the part of analyzer.Analyzer the handler needs.
type PropertyAnalyzer interface {
	CheckConfig() error
	Analyze(ctx context.Context, p models.PropertyInput) (*models.PropertyAnalysis, error)
}

type Handler struct {
	analyzer PropertyAnalyzer
	logger   *logrus.Logger
}

func NewHandler(a PropertyAnalyzer, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		analyzer: a,
		logger:   logger,
	}
}

// AnalyzeProperty handles POST /api/analyze
func (h *Handler) AnalyzeProperty(c *gin.Context) {
	if err := h.analyzer.CheckConfig(); err != nil {
		h.logger.WithError(err).Error("Completion service is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var input models.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Warn("Failed to parse analysis request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var analysisErr *analyzer.AnalysisError

	switch {
	case errors.Is(err, analyzer.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFieldsRequired})
		return
	case errors.Is(err, analyzer.ErrConfiguration):
		h.logger.WithError(err).Error("Completion service is not configured")
	case errors.As(err, &analysisErr):
		h.logger.WithError(err).Error("Failed to analyze property")
	default:
		h.logger.WithError(err).Error("Unexpected analysis error")
	}

	msg := err.Error()
	if msg == "" {
		msg = msgAnalysisFailed
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// Health handles GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
