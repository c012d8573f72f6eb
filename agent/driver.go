package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rkuma18/currency-agent/core"
	"github.com/rkuma18/currency-agent/internal/numeric"
	"github.com/rkuma18/currency-agent/logging"
	"github.com/rkuma18/currency-agent/model"
	"github.com/rkuma18/currency-agent/tool"
)

// DefaultMaxIterations bounds the model round trips per exchange.
const DefaultMaxIterations = 5

// DefaultInstructions is the system prompt handed to the model.
const DefaultInstructions = "You are a currency conversion assistant. " +
	"Use the provided tools to look up live fiat and cryptocurrency rates and answer the user's question."

// capExceededResponse is rendered when the model keeps requesting tool calls
// until the iteration cap; partial results are deliberately not rendered.
const capExceededResponse = "Error: the conversation exceeded the tool call limit before producing an answer. Please try again."

// DriverOptions configure a Driver instance.
type DriverOptions struct {
	Logger        logging.Logger
	MaxIterations int
	Instructions  string
}

// Driver runs the tool-augmented chat loop for one user exchange at a time.
// It is single-threaded and strictly sequential: no parallel tool execution,
// no retries, no cancellation mid-iteration beyond the caller's context.
type Driver struct {
	llm           model.Model
	tools         *tool.Set
	logger        logging.Logger
	maxIterations int
	instructions  string
}

// NewDriver wires a Driver with sensible defaults (5 iterations, no-op logger).
func NewDriver(llm model.Model, tools *tool.Set, optFns ...func(o *DriverOptions)) *Driver {
	opts := DriverOptions{
		MaxIterations: DefaultMaxIterations,
		Instructions:  DefaultInstructions,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	return &Driver{
		llm:           llm,
		tools:         tools,
		logger:        logging.OrNoOp(opts.Logger),
		maxIterations: opts.MaxIterations,
		instructions:  opts.Instructions,
	}
}

// Outcome is the caller-facing result of one exchange: the display string
// plus the structured fields a presentation layer uses to choose styling.
type Outcome struct {
	Text   string `json:"text"`
	Style  Style  `json:"style"`
	Record Record `json:"record"`
}

// Run processes raw user text to a final display string. It never returns an
// error: every failure tier ends in a textual result.
func (d *Driver) Run(ctx context.Context, userText string) Outcome {
	exchangeID := core.NewID()
	conv := core.NewConversation(userText)
	rec := Record{}
	done := false

	for iteration := 0; iteration < d.maxIterations && !done; iteration++ {
		resp, err := d.llm.Generate(ctx, model.Request{
			Instructions: d.instructions,
			Contents:     conv.Contents(),
			Tools:        tool.Definitions(),
		})
		if err != nil {
			// Driver-fatal: missing/invalid credentials, network, deadline.
			d.logger.Error("driver.model.error", "exchange_id", exchangeID, "iteration", iteration, "error", err.Error())
			rec.FinalResponse = fmt.Sprintf("Error: %v. Please check your API keys.", err)
			done = true
			break
		}

		calls := resp.Content.FunctionCalls()
		if len(calls) == 0 {
			// Empty text counts as "no final response"; the record decides.
			if text := resp.Content.Text(); text != "" {
				rec.FinalResponse = text
			}
			done = true
			break
		}

		conv.Append(resp.Content)
		for _, fc := range calls {
			d.executeCall(ctx, exchangeID, conv, &rec, fc)
		}
	}

	if !done {
		d.logger.Warn("driver.iteration_cap", "exchange_id", exchangeID, "max_iterations", d.maxIterations)
		rec.FinalResponse = capExceededResponse
	}

	text, style := Synthesize(rec)
	d.logger.Info("driver.exchange.complete",
		"exchange_id", exchangeID,
		"style", style.String(),
		"messages", conv.Len(),
	)
	return Outcome{Text: text, Style: style, Record: rec}
}

// executeCall dispatches one tool call request: it records the call's
// argument-derived fields before checking the outcome, invokes the matching
// tool variant, harvests a numeric value from the result text and appends a
// tool-role message keyed to the call identifier. A fault here never stops
// the exchange; it becomes conversational content.
func (d *Driver) executeCall(ctx context.Context, exchangeID string, conv *core.Conversation, rec *Record, fc core.FunctionCall) {
	kind, ok := tool.ParseKind(fc.Name)
	if !ok {
		d.logger.Warn("driver.tool.unknown", "exchange_id", exchangeID, "tool", fc.Name)
		d.appendToolResult(conv, fc, fmt.Sprintf("Error: unknown tool %q", fc.Name))
		return
	}

	var resultText string
	switch kind {
	case tool.KindConversionFactor:
		var args tool.ConversionFactorArgs
		if !d.decodeArgs(conv, fc, &args) {
			return
		}
		rec.FromCurrency = args.FromCurrency
		rec.ToCurrency = args.ToCurrency
		resultText = d.tools.GetConversionFactor(ctx, args)
		if v, ok := numeric.Extract(resultText); ok {
			rec.ConversionRate = floatPtr(v)
		}

	case tool.KindConvert:
		var args tool.ConvertArgs
		if !d.decodeArgs(conv, fc, &args) {
			return
		}
		rec.Amount = floatPtr(args.Amount)
		rec.FromCurrency = args.FromCurrency
		rec.ToCurrency = args.ToCurrency
		resultText = d.tools.Convert(ctx, args)
		if !tool.IsError(resultText) {
			if v, ok := numeric.Extract(resultText); ok {
				rec.ConversionResult = floatPtr(v)
			}
		}

	case tool.KindCryptoRate:
		var args tool.CryptoRateArgs
		if !d.decodeArgs(conv, fc, &args) {
			return
		}
		rec.FromCurrency = args.BaseCurrency
		rec.ToCurrency = args.TargetCurrency
		resultText = d.tools.GetCryptoRate(ctx, args)
		if v, ok := numeric.Extract(resultText); ok {
			rec.CryptoRate = floatPtr(v)
		}

	case tool.KindFiatToBTC:
		var args tool.FiatToBTCArgs
		if !d.decodeArgs(conv, fc, &args) {
			return
		}
		if args.BaseCurrency == "" {
			args.BaseCurrency = "BTC"
		}
		rec.Amount = floatPtr(args.Amount)
		rec.FromCurrency = args.FiatCurrency
		rec.ToCurrency = args.BaseCurrency
		resultText = d.tools.ConvertFiatToBTC(ctx, args)
		if v, ok := numeric.Extract(resultText); ok {
			rec.BTCEquivalent = floatPtr(v)
		}
	}

	d.appendToolResult(conv, fc, resultText)
}

// decodeArgs unmarshals the call's JSON arguments. On failure it appends a
// synthesized error result so the model sees what went wrong.
func (d *Driver) decodeArgs(conv *core.Conversation, fc core.FunctionCall, out any) bool {
	raw := fc.Arguments
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		d.logger.Warn("driver.tool.bad_args", "tool", fc.Name, "error", err.Error())
		d.appendToolResult(conv, fc, fmt.Sprintf("Error: invalid arguments for %s: %v", fc.Name, err))
		return false
	}
	return true
}

func (d *Driver) appendToolResult(conv *core.Conversation, fc core.FunctionCall, text string) {
	conv.Append(core.NewToolResultContent(fc.ID, fc.Name, text))
}
