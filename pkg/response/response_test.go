package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Forbidden(rec, "Cannot update appointments of other patients")

	assert.Equal(t, 403, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"error": "Cannot update appointments of other patients"}, body)
}

func TestMessageBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, "Logged out successfully")

	assert.Equal(t, 200, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"message": "Logged out successfully"}, body)
}

func TestDefaultMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	InternalServerError(rec, "")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Something went wrong!", body["error"])
}
