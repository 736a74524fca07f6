//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	httperr.Domain(c, err)
	return w
}

func TestDomainStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing entity", errs.NotFound("Reservation", "abc"), http.StatusNotFound},
		{"missing rate", &errs.RateNotFoundError{RatePlanID: "p", CategoryID: "c"}, http.StatusNotFound},
		{"booking overlap", &errs.ConflictError{RoomID: "r", CheckIn: "2025-03-01", CheckOut: "2025-03-04"}, http.StatusConflict},
		{"duplicate invoice", errs.ErrDuplicateInvoice, http.StatusConflict},
		{"already paid", errs.ErrAlreadyPaid, http.StatusConflict},
		{"plan still referenced", &errs.InUseError{Entity: "RatePlan", ID: "p", Referrers: 3}, http.StatusConflict},
		{"refused transition", &errs.InvalidTransitionError{Entity: "Reservation", ID: "abc", From: "CHECKED_OUT"}, http.StatusUnprocessableEntity},
		{"closed invoice", errs.ErrInvoiceClosed, http.StatusUnprocessableEntity},
		{"invalid input", errs.Validation("guests", "must be positive"), http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := render(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestDomainHidesInfrastructureErrors(t *testing.T) {
	w := render(t, infra.WrapRepoErr(infra.KindDBFailure, "query failed", assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.NotContains(t, w.Body.String(), "query failed")
}

func TestDomainDetailPayloads(t *testing.T) {
	t.Run("conflict carries the contested window", func(t *testing.T) {
		w := render(t, &errs.ConflictError{RoomID: "room-1", CheckIn: "2025-03-01", CheckOut: "2025-03-04"})

		var body struct {
			Detail map[string]any `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "room-1", body.Detail["roomId"])
		assert.Equal(t, "2025-03-01", body.Detail["checkIn"])
		assert.Equal(t, "2025-03-04", body.Detail["checkOut"])
	})

	t.Run("validation carries field and reason", func(t *testing.T) {
		w := render(t, errs.Validation("stay", "check-out must be after check-in"))

		var body struct {
			Detail map[string]any `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "stay", body.Detail["field"])
		assert.Equal(t, "check-out must be after check-in", body.Detail["reason"])
	})

	t.Run("plain sentinel has no detail", func(t *testing.T) {
		w := render(t, errs.ErrDuplicateInvoice)
		assert.NotContains(t, w.Body.String(), "detail")
	})
}
