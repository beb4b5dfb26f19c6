package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kaosom/zipquote/internal/adapter/http/handlers"
	"github.com/kaosom/zipquote/internal/adapter/http/handlers/mocks"
	"github.com/kaosom/zipquote/internal/adapter/http/middleware"
	"github.com/kaosom/zipquote/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	estimates := mocks.NewMockIEstimateUseCase(ctrl)
	auth := middleware.NewJWTAuth("secret", time.Hour)
	r := NewRouter(Handlers{
		Estimates: handlers.NewEstimateHandler(estimates),
		Accounts:  handlers.NewAccountHandler(mocks.NewMockIAccountUseCase(ctrl)),
		Auth:      auth,
	})

	serve := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := serve(http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("expected ping 200, got %d", w.Code)
	}
	if w := serve(http.MethodGet, "/v1/estimates", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	token, err := auth.Generate("u1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	estimates.EXPECT().Quota(gomock.Any(), "u1").Return(entities.NewQuotaStatus(0, false), nil)

	w := serve(http.MethodGet, "/v1/quota", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected cors headers")
	}
}

func TestCorsConfig(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	cfg := corsConfig()
	if cfg.AllowAllOrigins || len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors config: %+v", cfg)
	}
}

func TestRun_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ALLOW_DEV_SECRET", "")

	err := Run()
	if !errors.Is(err, middleware.ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}
