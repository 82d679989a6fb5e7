package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   map[string]interface{}
	}{
		{"healthy", nil, http.StatusOK, map[string]interface{}{"status": "ok", "database": "ok"}},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable,
			map[string]interface{}{"status": "degraded", "database": "unreachable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(pingerFunc(func(ctx context.Context) error {
				if _, ok := ctx.Deadline(); !ok {
					t.Error("expected ping to carry a deadline")
				}
				return tt.pingErr
			}))
			r := gin.New()
			r.GET("/health", h.Health)

			rec := doRequest(r, "GET", "/health", "")

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			result := parseJSON(t, rec)
			for k, v := range tt.wantBody {
				if result[k] != v {
					t.Errorf("expected %s=%v, got %v", k, v, result[k])
				}
			}
		})
	}
}
