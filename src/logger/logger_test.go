// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLILoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewCLILogger()
	l.SetOutput(&buf)

	l.Printf("resolved %d chains", 6)
	assert.Equal(t, "resolved 6 chains\n", buf.String())
}

func TestMCPLoggerSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := NewMCPLogger(&buf, true)

	l.Println("should not appear")
	assert.Empty(t, buf.String())
}

func TestMCPLoggerStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewMCPLogger(&buf, false)

	l.Printf("trace step %d complete", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "trace step 3 complete", entry["message"])
	assert.NotEmpty(t, entry["time"])
}

func TestMCPLoggerNilWriter(t *testing.T) {
	l := NewMCPLogger(nil, false)
	assert.NotPanics(t, func() { l.Println("dropped") })

	l.SetOutput(nil)
	assert.NotPanics(t, func() { l.Printf("still dropped") })
}
