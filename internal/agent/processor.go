// Package agent implements the query processor: the orchestration that
// round-trips a user query through the chat model and any tools the model
// requests, producing a final natural-language answer.
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dileep-u-k/hotel-concierge/internal/api"
	"github.com/dileep-u-k/hotel-concierge/internal/llm"
	"github.com/dileep-u-k/hotel-concierge/internal/tools"
)

// Processor executes the two-round tool protocol for a single query.
// It holds no per-query state; one Processor serves every request.
type Processor struct {
	client      llm.LLMClient
	toolManager *tools.ToolManager
	config      *llm.GenerationConfig
}

func NewProcessor(client llm.LLMClient, toolManager *tools.ToolManager, config *llm.GenerationConfig) *Processor {
	return &Processor{
		client:      client,
		toolManager: toolManager,
		config:      config,
	}
}

// Result is the outcome of one processed query.
type Result struct {
	// ToolResults holds each executed tool call in the order the model
	// requested them. Empty when the model answered directly.
	ToolResults []api.ToolResult
	// FinalText is the model's natural-language answer.
	FinalText string
	// Usage is the summed token accounting across both model turns.
	Usage api.Usage
}

// Text renders the result as the original console contract: each raw tool
// result first, then the model's answer, separated by blank lines.
func (r *Result) Text() string {
	if len(r.ToolResults) == 0 {
		return r.FinalText
	}
	parts := make([]string, 0, len(r.ToolResults)+1)
	for _, tr := range r.ToolResults {
		parts = append(parts, fmt.Sprintf("Tool: %s\nResult: %s", tr.Tool, tr.Result))
	}
	if r.FinalText != "" {
		parts = append(parts, "AI Response: "+r.FinalText)
	}
	return strings.Join(parts, "\n\n")
}

// Process runs the query through the chat model.
//
// The protocol is a strict two-round exchange:
//  1. Send the user's text with the registry's tool schemas attached.
//  2. If the model answers with no tool calls, that text is terminal.
//  3. Otherwise execute each requested call in model order. A name missing
//     from the registry is skipped silently; an execution failure becomes an
//     error string in the tool turn so the model can relay it.
//  4. One synthesis turn over the augmented conversation produces FinalText.
//
// Remote failures are returned as an error for this query only; no state is
// touched and the next query proceeds normally.
func (p *Processor) Process(ctx context.Context, query string) (*Result, error) {
	messages := []llm.Message{{Role: llm.RoleUser, Content: query}}
	definitions := p.toolManager.GetDefinitions()

	first, err := p.client.Generate(ctx, messages, p.config, definitions)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	result := &Result{Usage: first.Usage}

	if len(first.ToolCalls) == 0 {
		result.FinalText = first.Content
		return result, nil
	}

	messages = append(messages, llm.Message{
		Role:      llm.RoleAssistant,
		Content:   first.Content,
		ToolCalls: first.ToolCalls,
	})

	for _, toolCall := range first.ToolCalls {
		name := strings.ToLower(toolCall.Function.Name)
		if _, ok := p.toolManager.Lookup(name); !ok {
			log.Printf("⚠️ Model requested unknown tool '%s', skipping.", toolCall.Function.Name)
			continue
		}

		log.Printf("🛠️ Executing tool: %s (ID: %s) with args: %s", name, toolCall.ID, toolCall.Function.Arguments)
		toolResult, err := p.toolManager.Execute(name, toolCall.Function.Arguments)
		if err != nil {
			toolResult = fmt.Sprintf("Error executing tool %s: %v", name, err)
		}

		result.ToolResults = append(result.ToolResults, api.ToolResult{
			Tool:   name,
			CallID: toolCall.ID,
			Result: toolResult,
		})
		messages = append(messages, llm.Message{
			Role:       llm.RoleTool,
			ToolCallID: toolCall.ID,
			Content:    toolResult,
		})
	}

	final, err := p.client.Generate(ctx, messages, p.config, definitions)
	if err != nil {
		return nil, fmt.Errorf("LLM synthesis failed: %w", err)
	}
	result.Usage.Add(final.Usage)
	result.FinalText = final.Content

	return result, nil
}

// ProcessText is the string-in, string-out convenience form: any failure is
// folded into the returned text instead of an error value.
func (p *Processor) ProcessText(ctx context.Context, query string) string {
	result, err := p.Process(ctx, query)
	if err != nil {
		return fmt.Sprintf("Error processing query: %v", err)
	}
	return result.Text()
}
