package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoResponse struct {
	Greeting string `json:"greeting"`
}

func TestDoPostSync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "Bearer key-1", request.Header.Get("Authorization"))
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
		assert.Equal(t, "custom", request.Header.Get("X-Extra"))

		fmt.Fprint(writer, `{"greeting": "hello"}`)
	}))
	defer server.Close()

	httpResponse, result, err := DoPostSync[echoResponse](
		context.Background(), server.Client(), server.URL, "key-1",
		map[string]string{"ping": "pong"},
		HeaderOption{Key: "X-Extra", Value: "custom"},
	)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, httpResponse.StatusCode)
	require.NotNil(t, result)
	assert.Equal(t, "hello", result.Greeting)
}

func TestDoPostSync_NonOKReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(writer, `{"error": {"message": "bad request"}}`)
	}))
	defer server.Close()

	_, _, err := DoPostSync[echoResponse](context.Background(), server.Client(), server.URL, "", nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, string(statusErr.Body), "bad request")
}

func TestDoPostSync_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		<-request.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := DoPostSync[echoResponse](ctx, server.Client(), server.URL, "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDoPostStream_LeavesBodyOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "text/event-stream", request.Header.Get("Accept"))
		fmt.Fprint(writer, "data: {\"a\":1}\n\ndata: [DONE]\n\n")
	}))
	defer server.Close()

	response, err := DoPostStream(context.Background(), server.Client(), server.URL, "key-1", nil)
	require.NoError(t, err)
	defer CloseWithLog(response.Body)

	scanner := NewSSEScanner(response.Body)
	payload, err := scanner.Next()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, payload)
}

func TestDoPostStream_NonOKDrainsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(writer, `{"error": {"message": "down"}}`)
	}))
	defer server.Close()

	_, err := DoPostStream(context.Background(), server.Client(), server.URL, "", nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Contains(t, string(statusErr.Body), "down")
}
