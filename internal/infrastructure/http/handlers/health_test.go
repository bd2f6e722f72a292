package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func serve(t *testing.T, fn echo.HandlerFunc) (*httptest.ResponseRecorder, readinessResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	if err := fn(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp readinessResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestLiveness(t *testing.T) {
	rec, _ := serve(t, NewHealthHandler().Liveness)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_NoChecks(t *testing.T) {
	rec, resp := serve(t, NewReadinessHandler().Readiness)
	if rec.Code != http.StatusOK || resp.Status != "ok" {
		t.Fatalf("expected ready, got %d %+v", rec.Code, resp)
	}
}

func TestReadiness_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	rec, resp := serve(t, NewReadinessHandler(RedisCheck(rdb)).Readiness)
	if rec.Code != http.StatusOK || resp.Dependencies["redis"].Status != "ok" {
		t.Fatalf("expected redis ok, got %d %+v", rec.Code, resp)
	}

	mr.Close()
	rec, resp = serve(t, NewReadinessHandler(RedisCheck(rdb)).Readiness)
	if rec.Code != http.StatusServiceUnavailable || resp.Dependencies["redis"].Status != "unhealthy" {
		t.Fatalf("expected redis unhealthy, got %d %+v", rec.Code, resp)
	}
}

func TestReadiness_FailingCheckDegrades(t *testing.T) {
	failing := Check{Name: "mongodb", Probe: func(context.Context) error { return errors.New("no route") }}
	passing := Check{Name: "other", Probe: func(context.Context) error { return nil }}

	rec, resp := serve(t, NewReadinessHandler(passing, failing).Readiness)
	if rec.Code != http.StatusServiceUnavailable || resp.Status != "degraded" {
		t.Fatalf("expected degraded, got %d %+v", rec.Code, resp)
	}
	if resp.Dependencies["mongodb"].Error != "no route" || resp.Dependencies["other"].Status != "ok" {
		t.Fatalf("unexpected dependencies: %+v", resp.Dependencies)
	}
}
