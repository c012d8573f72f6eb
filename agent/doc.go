// Package agent contains the tool-augmented chat driver and the response
// synthesizer. The driver owns one exchange at a time: it seeds a
// conversation with the user's text, iterates the language model up to a
// fixed cap, executes requested rate tools strictly in order, accumulates
// their harvested values in a Record, and finally renders a single display
// string.
//
// Error tiers:
//   - provider errors are encoded inside tool result text and fed back to
//     the model as conversation
//   - unexpected per-call faults (unknown tool, malformed arguments) become
//     synthesized tool-role error messages so the model can self-correct
//   - model invocation failures and the iteration cap are fatal for the
//     exchange and surface as a literal error display string
//
// Nothing escapes Run as a Go error; the worst case is a textual apology.
package agent
