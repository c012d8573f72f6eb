// Package core provides the conversation domain types shared by the model
// adapters, the rate tools and the chat driver:
//
//   - Part / Content (role-tagged, ordered heterogeneous message segments)
//   - FunctionCall / FunctionResponse (tool call requests and their results)
//   - Conversation (the append-only transcript of a single exchange)
//
// The package intentionally keeps provider specifics, tool implementations
// and orchestration out of scope so the content model stays transport
// independent.
package core
