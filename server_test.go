package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitbucket.org/mmdatafocus/factory_backend/config"
	"bitbucket.org/mmdatafocus/factory_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestCorrelationIdMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(correlationIdMiddleware)
	r.GET("/ping", func(c *gin.Context) {
		correlationId, ok := utils.GetCorrelationIdFromContext(c.Request.Context())
		if !ok {
			t.Fatalf("correlation id missing from request context")
		}
		c.String(http.StatusOK, correlationId)
	})

	// An incoming id is carried through to the context and the response.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("x-correlation-id", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("x-correlation-id"); got != "abc-123" {
		t.Fatalf("response header = %q, want abc-123", got)
	}
	if w.Body.String() != "abc-123" {
		t.Fatalf("context id = %q, want abc-123", w.Body.String())
	}

	// Without one, a fresh uuid is minted and still echoed.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get("x-correlation-id")
	if generated == "" {
		t.Fatalf("no correlation id generated")
	}
	if _, err := uuid.Parse(generated); err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", generated, err)
	}
	if w.Body.String() != generated {
		t.Fatalf("context id %q != response header %q", w.Body.String(), generated)
	}
}

func TestRespondErrorLogsCorrelationId(t *testing.T) {
	logger := config.GetLogger()
	var buf bytes.Buffer
	prevOut := logger.Out
	logger.SetOutput(&buf)
	defer logger.SetOutput(prevOut)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/reports/dashboard", nil)
	c.Request = req.WithContext(utils.SetCorrelationIdInContext(req.Context(), "cid-42"))

	respondError(c, "dashboardHandler", errors.New("boom"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Fatalf("body = %s, want error envelope", w.Body.String())
	}
	logged := buf.String()
	if !strings.Contains(logged, "cid-42") {
		t.Fatalf("log output %q does not carry the correlation id", logged)
	}
	if !strings.Contains(logged, "boom") {
		t.Fatalf("log output %q does not carry the error", logged)
	}
}
