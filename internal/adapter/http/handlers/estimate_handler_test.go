package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kaosom/zipquote/internal/adapter/http/handlers/mocks"
	"github.com/kaosom/zipquote/internal/adapter/http/middleware"
	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// asUser stands in for the JWT middleware.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetUserID(c, userID)
		c.Next()
	}
}

func newEstimateRouter(h *EstimateHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/v1", asUser("u1"))
	g.GET("/estimates", h.ListEstimates)
	g.GET("/estimates/:id", h.GetEstimate)
	g.POST("/estimates", h.UpsertEstimate)
	g.DELETE("/estimates/:id", h.DeleteEstimate)
	g.GET("/quota", h.GetQuota)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

const validEstimateBody = `{"id":"e1","contractor":{"name":"Ana"},"client":{"name":"Bob"},"items":[{"name":"Paint","quantity":2,"unit_price":50}],"tax_rate":10}`

func TestEstimateHandler_UpsertEstimate(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newEstimateRouter(NewEstimateHandler(mocks.NewMockIEstimateUseCase(ctrl)))

		w := doRequest(r, http.MethodPost, "/v1/estimates", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("field validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newEstimateRouter(NewEstimateHandler(mocks.NewMockIEstimateUseCase(ctrl)))

		w := doRequest(r, http.MethodPost, "/v1/estimates", `{"contractor":{"name":"Ana"},"client":{"name":"Bob"},"items":[{"quantity":-1}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		fields := decodeBody(t, w)["fields"].(map[string]any)
		if fields["Items[0].Quantity"] != "gte" {
			t.Fatalf("unexpected fields: %v", fields)
		}
	})

	t.Run("domain validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Save(gomock.Any(), "u1", gomock.Any()).Return(entities.Estimate{}, false, &entities.ValidationError{Reason: entities.ValidationMissingClientName})

		w := doRequest(r, http.MethodPost, "/v1/estimates", `{"contractor":{"name":"Ana"},"client":{"name":" "}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "missing_client_name" {
			t.Fatalf("unexpected message: %v", msg)
		}
	})

	t.Run("quota exceeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Save(gomock.Any(), "u1", gomock.Any()).Return(entities.Estimate{}, false, entities.ErrFreeQuotaExceeded)

		w := doRequest(r, http.MethodPost, "/v1/estimates", validEstimateBody)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "FREE_QUOTA_EXCEEDED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("foreign estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Save(gomock.Any(), "u1", gomock.Any()).Return(entities.Estimate{}, false, entities.NewRemoteError(entities.RemoteUnauthorized, "upsert", nil))

		w := doRequest(r, http.MethodPost, "/v1/estimates", validEstimateBody)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("created and updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		echo := func(created bool) func(context.Context, string, entities.Estimate) (entities.Estimate, bool, error) {
			return func(_ context.Context, _ string, e entities.Estimate) (entities.Estimate, bool, error) {
				return e, created, nil
			}
		}
		gomock.InOrder(
			uc.EXPECT().Save(gomock.Any(), "u1", gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(echo(true)),
			uc.EXPECT().Save(gomock.Any(), "u1", gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(echo(false)),
		)

		w := doRequest(r, http.MethodPost, "/v1/estimates", validEstimateBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "e1" || body["total"] != 110.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}

		w = doRequest(r, http.MethodPost, "/v1/estimates", validEstimateBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := newEstimateRouter(NewEstimateHandler(uc))

	now := time.Now().UTC()
	uc.EXPECT().ListByUser(gomock.Any(), "u1").Return([]entities.Estimate{{ID: "e1", CreatedAt: now}}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "u1", "missing").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)
	uc.EXPECT().GetByID(gomock.Any(), "u1", "e1").Return(entities.Estimate{ID: "e1", CreatedAt: now}, nil)
	uc.EXPECT().Quota(gomock.Any(), "u1").Return(entities.NewQuotaStatus(2, false), nil)

	w := doRequest(r, http.MethodGet, "/v1/estimates", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 1 || list[0]["id"] != "e1" {
		t.Fatalf("unexpected list: %s", w.Body.String())
	}

	if w := doRequest(r, http.MethodGet, "/v1/estimates/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/v1/estimates/e1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/v1/quota", "")
	body := decodeBody(t, w)
	if w.Code != http.StatusOK || body["count"] != 2.0 || body["can_create"] != true || body["limit"] != 5.0 {
		t.Fatalf("unexpected quota: %s", w.Body.String())
	}
}

func TestEstimateHandler_DeleteEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := newEstimateRouter(NewEstimateHandler(uc))

	gomock.InOrder(
		uc.EXPECT().Delete(gomock.Any(), "u1", "e1").Return(nil),
		uc.EXPECT().Delete(gomock.Any(), "u1", "e2").Return(entities.NewRemoteError(entities.RemoteUnreachable, "delete", errors.New("timeout"))),
		uc.EXPECT().Delete(gomock.Any(), "u1", "e3").Return(errors.New("boom")),
	)

	if w := doRequest(r, http.MethodDelete, "/v1/estimates/e1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, "/v1/estimates/e2", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	w := doRequest(r, http.MethodDelete, "/v1/estimates/e3", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("boom")) {
		t.Fatalf("internal cause leaked: %s", w.Body.String())
	}
}
