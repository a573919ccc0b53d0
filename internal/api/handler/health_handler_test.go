package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubKVStore struct {
	pingErr error
}

func (s *stubKVStore) Get(context.Context, string) ([]byte, error) { return nil, nil }
func (s *stubKVStore) Set(context.Context, string, []byte) error   { return nil }
func (s *stubKVStore) Delete(context.Context, string) error        { return nil }
func (s *stubKVStore) Ping(context.Context) error                  { return s.pingErr }

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	if err := h.Liveness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestReadinessHandler_StorageHealthy(t *testing.T) {
	h := NewReadinessHandler(&stubKVStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp readinessResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Status != "ok" || resp.Dependencies["storage"].Status != "ok" {
		t.Errorf("readiness response wrong: %+v", resp)
	}
}

func TestReadinessHandler_StorageDown(t *testing.T) {
	h := NewReadinessHandler(&stubKVStore{pingErr: errors.New("connection refused")})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body)
	}

	var resp readinessResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Status != "degraded" || resp.Dependencies["storage"].Error == "" {
		t.Errorf("readiness response wrong: %+v", resp)
	}
}
