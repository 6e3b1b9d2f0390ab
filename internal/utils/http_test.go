package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Run("writes payload with status and content type", func(t *testing.T) {
		w := httptest.NewRecorder()

		written, err := WriteJSON(w, map[string]string{"status": "ok"}, http.StatusCreated)
		require.NoError(t, err)
		assert.NotZero(t, written)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("unmarshalable payload responds with 500", func(t *testing.T) {
		w := httptest.NewRecorder()

		_, err := WriteJSON(w, func() {}, http.StatusOK)
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
