package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveHandlerRejectsMalformedID(t *testing.T) {
	h := NewLeaveHandler(nil)

	t.Run("decide", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.DecideRequest(rec, requestWithID(http.MethodPut, "/api/v1/requests/not-a-uuid", "not-a-uuid"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.DeleteRequest(rec, requestWithID(http.MethodDelete, "/api/v1/requests/not-a-uuid", "not-a-uuid"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
