package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req sampleRequest
	return c.ShouldBindJSON(&req)
}

func TestToDetails_UsesJSONFieldNames(t *testing.T) {
	Init()

	err := bind(t, `{"username":""}`)
	require.Error(t, err)

	assert.Equal(t, map[string]string{"username": "is required", "email": "is required"}, ToDetails(err))
}

func TestToDetails_Payloads(t *testing.T) {
	Init()

	assert.Equal(t, map[string]string{"payload": "empty body"}, ToDetails(bind(t, "")))
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(bind(t, `{"username":`+"\x01")))
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(bind(t, `{"username":42}`)))
	assert.Nil(t, ToDetails(nil))
}
