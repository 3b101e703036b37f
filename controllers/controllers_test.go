package controllers

import (
	"io"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"boardgames-api/middleware"
)

// newTestRouter builds a router with the same error pipeline the real
// server uses, so handler tests exercise classification end to end.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorClassifier())
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
