package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"showcase/internal/lib/response"
	"showcase/internal/models"
)

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	response.Error(w, http.StatusNotFound, "Project not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Project not found"}`, w.Body.String())
}

func TestToast(t *testing.T) {
	w := httptest.NewRecorder()
	response.Toast(w, http.StatusCreated, models.Toast{BgColor: "success", Msg: "ok", DelayMs: 10000})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"toast":{"bgColor":"success","msg":"ok","delayMs":10000}}`, w.Body.String())
}

func TestAlert(t *testing.T) {
	w := httptest.NewRecorder()
	response.Alert(w, http.StatusUnauthorized, models.Alert{Variant: "danger", Message: "no"})

	assert.JSONEq(t, `{"alert":{"variant":"danger","message":"no"}}`, w.Body.String())
}

func TestJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	response.JSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "Failed to encode JSON response\n", w.Body.String())
}
