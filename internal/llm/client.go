// Package llm contains the chat-model clients the concierge talks to. The
// model is treated as an opaque collaborator: it receives a conversation and
// the declared tool schemas, and answers with either text or tool calls.
package llm

import (
	"context"

	"github.com/dileep-u-k/hotel-concierge/internal/api"
	"github.com/dileep-u-k/hotel-concierge/internal/tools"
)

// Role represents the originator of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single turn in a conversation history. Tool-result turns set
// ToolCallID to the id of the call they answer; assistant turns that request
// tools carry them in ToolCalls.
type Message struct {
	Role       Role              `json:"role"`
	Content    string            `json:"content"`
	ToolCallID string            `json:"tool_call_id,omitempty"`
	ToolCalls  []*tools.ToolCall `json:"tool_calls,omitempty"`
}

// GenerationConfig controls the model's generation behavior. Pointer fields
// distinguish "unset" from an explicit zero.
type GenerationConfig struct {
	Model       string
	Temperature *float32
	MaxTokens   int
	TopP        *float32
	Stream      bool
}

// GenerationResult is the complete, non-streamed output of one model call.
type GenerationResult struct {
	Content   string
	ToolCalls []*tools.ToolCall
	Usage     api.Usage
}

// StreamingResult is one chunk of a streamed response.
type StreamingResult struct {
	ContentDelta  string
	ToolCallChunk *tools.ToolCall
	Usage         *api.Usage
	Err           error
}

// LLMClient is the universal interface every provider client implements.
type LLMClient interface {
	// Generate performs a standard, blocking request with the full
	// conversation history and the declared tool schemas.
	Generate(
		ctx context.Context,
		messages []Message,
		config *GenerationConfig,
		availableTools []tools.Tool,
	) (*GenerationResult, error)

	// GenerateStream performs a streaming request, delivering results
	// token-by-token over the returned channel.
	GenerateStream(
		ctx context.Context,
		messages []Message,
		config *GenerationConfig,
		availableTools []tools.Tool,
	) (<-chan *StreamingResult, error)
}
