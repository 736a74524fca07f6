//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/handler/middleware"
	"hotelcore/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.Use(middleware.ErrorHandler())
	router.GET("/reservations/abc", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reservations/abc", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	t.Run("prepared envelope is rendered as-is", func(t *testing.T) {
		w := serve(t, func(c *gin.Context) {
			httperr.Domain(c, errs.NotFound("Reservation", "abc"))
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Reservation abc not found")
	})

	t.Run("bare attached error falls back to the taxonomy", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"missing entity", errs.NotFound("Invoice", "inv-1"), http.StatusNotFound},
			{"duplicate invoice", errs.ErrDuplicateInvoice, http.StatusConflict},
			{"closed invoice", errs.ErrInvoiceClosed, http.StatusUnprocessableEntity},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := serve(t, func(c *gin.Context) {
					_ = c.Error(tt.err)
				})
				assert.Equal(t, tt.wantStatus, w.Code)
			})
		}
	})

	t.Run("unrecognized error hides its message", func(t *testing.T) {
		w := serve(t, func(c *gin.Context) {
			_ = c.Error(assert.AnError)
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestCustomRecovery(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		panic("boom")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "boom")
}
