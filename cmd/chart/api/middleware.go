package api

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id, an incoming value is kept
const RequestIDHeader = "X-Request-Id"

func (s Server) logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestURL := c.Request.URL.String()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		fields := []zap.Field{
			zap.String("type", "logger"),
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("url", requestURL),
			zap.String("viewer_ip", c.ClientIP()),
		}

		zap.L().Info(fmt.Sprintf("[START] %s %s", c.Request.Method, requestURL), fields...)

		c.Next()

		duration := time.Since(start)
		fields = append(fields,
			zap.Int("size", c.Writer.Size()),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration", duration.Milliseconds()))

		fn := zap.L().Info
		if duration > time.Second*10 || c.Writer.Status() >= http.StatusBadRequest {
			fn = zap.L().Warn
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			fn = zap.L().Error
		}

		fn(fmt.Sprintf("[END] %s %s (%d) in %s", c.Request.Method, requestURL, c.Writer.Status(), duration.String()), fields...)
	}
}

// recovery returns a middleware that recovers from any panics and writes a 500 if there was one.
func (s Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// A broken connection is not really a condition that warrants a panic stack trace.
				var brokenPipe bool
				var ne *net.OpError
				if e, ok := err.(error); ok && errors.As(e, &ne) {
					var se *os.SyscallError
					if errors.As(ne.Err, &se) {
						message := strings.ToLower(se.Error())
						brokenPipe = strings.Contains(message, "broken pipe") || strings.Contains(message, "connection reset by peer")
					}
				}

				zap.L().Error("[Recovery] panic recovered",
					zap.Stack("stack"),
					zap.Any("panic", err),
					zap.String("type", "recovery"),
					zap.String("request_id", c.Writer.Header().Get(RequestIDHeader)),
					zap.String("method", c.Request.Method),
					zap.String("url", c.Request.URL.String()),
					zap.Int64("content_length", c.Request.ContentLength),
					zap.String("viewer_ip", c.ClientIP()),
				)

				// If the connection is dead, we can't write a status to it.
				if brokenPipe {
					c.Error(ne) // nolint: errcheck
					c.Abort()
				} else {
					c.AbortWithStatus(http.StatusInternalServerError)
				}
			}
		}()
		c.Next()
	}
}
