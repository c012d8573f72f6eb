package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkuma18/currency-agent/core"
)

func TestMockModelReplaysScripts(t *testing.T) {
	m := NewMockModel("scripted")
	m.EnqueueToolCalls(core.FunctionCall{ID: "1", Name: "convert", Arguments: `{"amount":1}`})
	m.EnqueueText("done")

	resp, err := m.Generate(context.Background(), Request{Contents: []core.Content{core.NewUserContent("hi")}})
	require.NoError(t, err)
	require.Len(t, resp.Content.FunctionCalls(), 1)
	assert.Equal(t, "tool_calls", resp.FinishReason)

	resp, err = m.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "done", resp.Content.Text())

	// Last script repeats once the queue is exhausted.
	resp, err = m.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "done", resp.Content.Text())

	assert.Len(t, m.Requests(), 3)
}

func TestMockModelError(t *testing.T) {
	m := NewMockModel("scripted")
	m.EnqueueError(errors.New("boom"))

	_, err := m.Generate(context.Background(), Request{})
	require.Error(t, err)
}

func TestMockModelEmptyQueue(t *testing.T) {
	m := NewMockModel("scripted")
	_, err := m.Generate(context.Background(), Request{})
	require.Error(t, err)
}
