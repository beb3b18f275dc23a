// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agoric/agoric-dev-mcp/src/internal/httpclient"
	"github.com/Agoric/agoric-dev-mcp/src/internal/trace"
)

// callRequest builds a tool call request with the given arguments.
func callRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func TestHandleTraceFundingTxUsesConfiguredPageSize(t *testing.T) {
	var gotTake string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTake = r.URL.Query().Get("take")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transactions": []}`))
	}))
	defer ts.Close()

	svc := trace.NewService(
		httpclient.New(httpclient.Config{MaxAttempts: 1}),
		trace.Config{
			MintscanBaseURL: ts.URL,
			MintscanToken:   "test-token",
			DefaultPageSize: 5,
		},
	)

	result, err := handleTraceFundingTx(context.Background(), callRequest(map[string]any{
		"agoricAddress": "agoric1sender",
		"nobleAddress":  "noble1fwd",
	}), svc)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	// No pageSize argument, so the configured default reaches the provider.
	assert.Equal(t, "5", gotTake)
}

func TestHandleTraceFundingTxExplicitPageSizeWins(t *testing.T) {
	var gotTake string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTake = r.URL.Query().Get("take")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transactions": []}`))
	}))
	defer ts.Close()

	svc := trace.NewService(
		httpclient.New(httpclient.Config{MaxAttempts: 1}),
		trace.Config{
			MintscanBaseURL: ts.URL,
			MintscanToken:   "test-token",
			DefaultPageSize: 5,
		},
	)

	result, err := handleTraceFundingTx(context.Background(), callRequest(map[string]any{
		"agoricAddress": "agoric1sender",
		"nobleAddress":  "noble1fwd",
		"pageSize":      12,
	}), svc)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "12", gotTake)
}

func TestHandleTraceFundingTxMissingParameter(t *testing.T) {
	svc := trace.NewService(httpclient.New(httpclient.Config{}), trace.Config{})

	result, err := handleTraceFundingTx(context.Background(), callRequest(map[string]any{
		"agoricAddress": "agoric1sender",
	}), svc)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
