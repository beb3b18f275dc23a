// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventAttrUnquotes(t *testing.T) {
	ev := TxEvent{
		Type: "test",
		Attributes: []TxAttribute{
			{Key: "quoted", Value: `"4"`},
			{Key: "plain", Value: "channel-21"},
		},
	}

	v, ok := eventAttr(ev, "quoted")
	assert.True(t, ok)
	assert.Equal(t, "4", v)

	v, ok = eventAttr(ev, "plain")
	assert.True(t, ok)
	assert.Equal(t, "channel-21", v)

	_, ok = eventAttr(ev, "absent")
	assert.False(t, ok)
}

func TestTxMessagesTotal(t *testing.T) {
	assert.Nil(t, txMessages(nil))
	assert.Nil(t, txMessages(json.RawMessage(`not json`)))
	assert.Nil(t, txMessages(json.RawMessage(`{"body":"wrong shape"}`)))

	msgs := txMessages(json.RawMessage(`{"body":{"messages":[{"@type":"/a.b.MsgC","x":1}]}}`))
	assert.Len(t, msgs, 1)

	msg, ok := findMessage(msgs, "/a.b.MsgC")
	assert.True(t, ok)
	assert.NotNil(t, msg)

	_, ok = findMessage(msgs, "/a.b.MsgD")
	assert.False(t, ok)
}

func TestStringFieldToleratesNumbers(t *testing.T) {
	m := map[string]any{
		"str": "42",
		"num": float64(42),
		"obj": map[string]any{},
	}
	assert.Equal(t, "42", stringField(m, "str"))
	assert.Equal(t, "42", stringField(m, "num"))
	assert.Equal(t, "", stringField(m, "obj"))
	assert.Equal(t, "", stringField(m, "missing"))
}
