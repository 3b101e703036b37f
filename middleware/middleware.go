// File: /middleware/middleware.go
package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"boardgames-api/models"
	"boardgames-api/utils"
)

// Postgres error codes the classifier recognises.
const (
	pgInvalidTextRepresentation = "22P02"
	pgForeignKeyViolation       = "23503"
)

// ErrorClassifier is the single translation step between failures raised
// during request handling and HTTP responses. Handlers attach errors via
// c.Error and never derive status codes themselves.
func ErrorClassifier() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// Domain rejections carry their intended status and message.
		var apiErr *models.APIError
		if errors.As(err, &apiErr) {
			utils.SendError(c, apiErr.Status, apiErr.Msg)
			return
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgInvalidTextRepresentation:
				utils.SendError(c, models.ErrBadRequest.Status, models.ErrBadRequest.Msg)
				return
			case pgForeignKeyViolation:
				// A failed comment insert is classified post-hoc by which
				// reference was violated.
				if strings.Contains(pgErr.ConstraintName, "author") {
					utils.SendError(c, models.ErrUserNotFound.Status, models.ErrUserNotFound.Msg)
					return
				}
				if strings.Contains(pgErr.ConstraintName, "review") {
					utils.SendError(c, models.ErrInvalidReviewRef.Status, models.ErrInvalidReviewRef.Msg)
					return
				}
			}
		}

		// Unclassified failures leak nothing to the caller.
		fmt.Printf("Unhandled request error: %v\n", err)
		utils.SendError(c, 500, "Internal server error")
	}
}

// RequestID tags every request with an identifier for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger middleware for detailed request logging
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method

		if raw != "" {
			path = path + "?" + raw
		}

		// Log format: [REQUEST_ID] IP METHOD PATH STATUS LATENCY
		fmt.Printf("[%s] %s %s %s %d %v\n",
			c.GetString("request_id"),
			clientIP,
			method,
			path,
			status,
			latency,
		)
	}
}

// SetupCORS allows browser clients from any origin to use the read and
// mutation endpoints.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// ValidateJSON rejects mutation requests whose body does not declare a
// JSON content type. Bodyless requests pass through so that an empty
// PATCH body is still classified by payload validation.
func ValidateJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "POST", "PATCH", "PUT":
		default:
			c.Next()
			return
		}

		if c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if !strings.Contains(contentType, "application/json") {
			utils.SendError(c, models.ErrBadRequest.Status, models.ErrBadRequest.Msg)
			return
		}

		c.Next()
	}
}

// SecurityHeaders middleware adds security headers
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
