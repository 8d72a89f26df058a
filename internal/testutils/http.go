package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response envelope with the data left raw
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing with the given middleware installed
func SetupHTTPTest(middleware ...gin.HandlerFunc) *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware...)
	return &HTTPTestSuite{Router: router}
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers.
// A string body is sent verbatim, anything else is JSON encoded.
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBytes, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// ParseEnvelope decodes the response envelope
func ParseEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) Envelope {
	var envelope Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope), recorder.Body.String())
	return envelope
}

// AssertSuccessResponse asserts a successful envelope and decodes its data into target when given
func AssertSuccessResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string, target interface{}) {
	require.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	envelope := ParseEnvelope(t, recorder)
	assert.True(t, envelope.Success)
	assert.Equal(t, expectedMessage, envelope.Message)
	if target != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, target))
	}
}

// AssertErrorResponse asserts a failure envelope whose message contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())

	envelope := ParseEnvelope(t, recorder)
	assert.False(t, envelope.Success)
	if expectedMessage != "" {
		assert.Contains(t, envelope.Message, expectedMessage)
	}
}
