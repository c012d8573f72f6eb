package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHelpers(t *testing.T) {
	c := Content{
		Role: "assistant",
		Parts: []Part{
			TextPart{Text: "Let me check"},
			FunctionCallPart{FunctionCall: FunctionCall{ID: "1", Name: "get_conversion_factor"}},
			TextPart{Text: " that rate."},
			FunctionCallPart{FunctionCall: FunctionCall{ID: "2", Name: "convert"}},
		},
	}

	assert.Equal(t, "Let me check that rate.", c.Text())

	calls := c.FunctionCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "get_conversion_factor", calls[0].Name)
	assert.Equal(t, "convert", calls[1].Name)
}

func TestConversationAppendOnly(t *testing.T) {
	conv := NewConversation("convert 100 USD to EUR")
	require.Equal(t, 1, conv.Len())
	assert.Equal(t, "user", conv.Contents()[0].Role)
	assert.Equal(t, "convert 100 USD to EUR", conv.Contents()[0].Text())

	conv.Append(NewAssistantText("Sure."))
	conv.Append(NewToolResultContent("call-1", "convert", "100 USD = 92.00 EUR"))

	require.Equal(t, 3, conv.Len())
	last := conv.Contents()[2]
	assert.Equal(t, "tool", last.Role)
	fr := last.Parts[0].(FunctionResponsePart).FunctionResponse
	assert.Equal(t, "call-1", fr.ID)
	assert.Equal(t, "convert", fr.Name)
	assert.Equal(t, "100 USD = 92.00 EUR", fr.Content)
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
