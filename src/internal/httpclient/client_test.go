// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := Retry(context.Background(), 3, time.Millisecond, func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryReturnsLastError(t *testing.T) {
	attempts := 0
	err := Retry(context.Background(), 3, time.Millisecond, func(context.Context) error {
		attempts++
		return errors.New("persistent")
	})
	require.EqualError(t, err, "persistent")
	assert.Equal(t, 3, attempts)
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := Retry(ctx, 10, time.Second, func(context.Context) error {
		attempts++
		return errors.New("keep going")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestGetJSONRetriesNonOKStatus(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "upstream busy", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(Config{MaxAttempts: 3, BaseDelay: time.Millisecond})
	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.GetJSON(context.Background(), srv.URL, nil, &out))
	assert.True(t, out.OK)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGetJSONSurfacesUpstreamBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid address"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(Config{MaxAttempts: 2, BaseDelay: time.Millisecond})
	err := c.GetJSON(context.Background(), srv.URL, nil, nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "invalid address")
}

func TestPostJSONSendsHeadersAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"received":true}`))
	}))
	defer srv.Close()

	c := New(Config{MaxAttempts: 1, BaseDelay: time.Millisecond, UserAgent: "agoric-dev-mcp/test"})
	var out struct {
		Received bool `json:"received"`
	}
	err := c.PostJSON(context.Background(), srv.URL,
		map[string]string{"Authorization": "Bearer test-token"},
		map[string]any{"size": 1}, &out)
	require.NoError(t, err)
	assert.True(t, out.Received)
}
