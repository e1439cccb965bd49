package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func requestWithID(method, target, id string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestTaskHandlerRejectsMalformedID(t *testing.T) {
	h := NewTaskHandler(nil)

	rec := httptest.NewRecorder()
	h.Delete(rec, requestWithID(http.MethodDelete, "/api/v1/tasks/not-a-uuid", "not-a-uuid"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
