package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adanyl0v/go-todo-tasks/internal/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDCtxKey = "request_id"
)

func (h *handlerImpl) HandleRequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Set(requestIDCtxKey, requestID)
	c.Header(requestIDHeader, requestID)
	c.Next()
}

func (h *handlerImpl) HandleLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	requestID, _ := getStringFromContext(c, requestIDCtxKey)
	status := c.Writer.Status()

	event := h.logger.Info()
	if status >= 500 {
		event = h.logger.Error()
	} else if status >= 400 {
		event = h.logger.Warn()
	}
	event.
		Str("request_id", requestID).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Str("client_ip", c.ClientIP()).
		Msg("handled request")
}

func (h *handlerImpl) HandleMetricsMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	// The route template keeps the label set bounded.
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	metrics.RecordHTTPRequestDuration(
		c.Request.Method,
		path,
		strconv.Itoa(c.Writer.Status()),
		time.Since(start),
	)
}

func getStringFromContext(c *gin.Context, key string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}
