package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an ID and logs it once it completes.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}

// CORS allows the dashboard to call the API from the given origins. A "*"
// entry allows every origin.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range allowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = allowedOrigins
	}

	return cors.New(cfg)
}
