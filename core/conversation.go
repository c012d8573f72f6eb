package core

import "github.com/google/uuid"

// Conversation is the ordered message sequence for a single exchange. It is
// mutated only by appending; messages are never reordered or deleted. A
// conversation is owned by exactly one driver invocation and discarded after
// the exchange completes.
type Conversation struct {
	contents []Content
}

// NewConversation seeds a conversation with one user message.
func NewConversation(userText string) *Conversation {
	return &Conversation{contents: []Content{NewUserContent(userText)}}
}

// Append adds a message to the end of the conversation.
func (c *Conversation) Append(content Content) {
	c.contents = append(c.contents, content)
}

// Contents returns the ordered messages. Callers must not mutate the slice.
func (c *Conversation) Contents() []Content {
	return c.contents
}

// Len returns the number of messages.
func (c *Conversation) Len() int { return len(c.contents) }

// NewID generates a unique identifier used to correlate exchanges and
// synthesized messages across log entries.
func NewID() string { return uuid.NewString() }
