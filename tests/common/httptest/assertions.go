//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"hotelcore/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// decodeErrorEnvelope reads the booking API error envelope produced by
// httperr: {"error":{"message":...}} with an optional "detail" payload.
func decodeErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder) httperr.Response {
	t.Helper()

	var resp httperr.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	return resp
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	resp := decodeErrorEnvelope(t, w)
	if expectedErrorMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertErrorDetail checks one field of the structured detail payload that
// typed booking errors carry, such as the contested stay window on a 409.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, key string, want any) {
	t.Helper()

	resp := decodeErrorEnvelope(t, w)
	detail, ok := resp.Detail.(map[string]any)
	require.True(t, ok, fmt.Sprintf("Error response carries no detail payload: %s", w.Body.String()))
	assert.Equal(t, want, detail[key])
}
