// Package model defines the provider-agnostic abstraction for the language
// model boundary.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Normalize tool / function call representation (ToolDefinition)
//   - Facilitate lightweight scripting for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package so the chat driver remains decoupled from vendor SDKs.
package model
