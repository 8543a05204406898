package apperror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAbort_AppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Abort(c, NotFound("Requested thing was not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"errors":["Requested thing was not found"]}`, w.Body.String())
}

func TestAbort_MasksUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Abort(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"errors":["An unknown error happened."]}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestError_Message(t *testing.T) {
	err := New(http.StatusBadRequest, "first", "second")
	assert.Equal(t, "first; second", err.Error())

	assert.Equal(t, []string{"An unknown error happened."}, New(http.StatusTeapot).Messages)
}
