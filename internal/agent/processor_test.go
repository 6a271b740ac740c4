package agent_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dileep-u-k/hotel-concierge/internal/agent"
	"github.com/dileep-u-k/hotel-concierge/internal/api"
	"github.com/dileep-u-k/hotel-concierge/internal/catalog"
	"github.com/dileep-u-k/hotel-concierge/internal/llm"
	"github.com/dileep-u-k/hotel-concierge/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a scripted LLMClient: each Generate call pops the next
// response (or error) and records the conversation it was given.
type mockClient struct {
	responses []*llm.GenerationResult
	errs      []error
	calls     [][]llm.Message
	toolDefs  [][]tools.Tool
}

func (m *mockClient) Generate(ctx context.Context, messages []llm.Message, config *llm.GenerationConfig, availableTools []tools.Tool) (*llm.GenerationResult, error) {
	i := len(m.calls)
	m.calls = append(m.calls, append([]llm.Message(nil), messages...))
	m.toolDefs = append(m.toolDefs, availableTools)
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	if i >= len(m.responses) {
		return nil, errors.New("mock: unexpected extra call")
	}
	return m.responses[i], nil
}

func (m *mockClient) GenerateStream(ctx context.Context, messages []llm.Message, config *llm.GenerationConfig, availableTools []tools.Tool) (<-chan *llm.StreamingResult, error) {
	return nil, errors.New("mock: streaming not supported")
}

func newProcessor(client llm.LLMClient) *agent.Processor {
	c := catalog.Default()
	tm := tools.NewToolManager()
	tm.Register(tools.NewSearchTool(c))
	tm.Register(tools.NewDetailsTool(c))
	tm.Register(tools.NewCostTool())
	tm.Register(tools.NewLocationsTool(c))
	return agent.NewProcessor(client, tm, &llm.GenerationConfig{Model: "gpt-4o"})
}

func toolCall(id, name, args string) *tools.ToolCall {
	return &tools.ToolCall{
		ID:   id,
		Type: tools.ToolTypeFunction,
		Function: tools.ToolCallFunction{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestProcess_DirectAnswer(t *testing.T) {
	client := &mockClient{
		responses: []*llm.GenerationResult{
			{Content: "I can help with hotel bookings.", Usage: api.Usage{TotalTokens: 12}},
		},
	}
	processor := newProcessor(client)

	result, err := processor.Process(context.Background(), "Hello!")
	require.NoError(t, err)

	assert.Equal(t, "I can help with hotel bookings.", result.FinalText)
	assert.Empty(t, result.ToolResults)
	assert.Equal(t, "I can help with hotel bookings.", result.Text())
	assert.Equal(t, 12, result.Usage.TotalTokens)

	// Direct answers are terminal: exactly one model turn.
	require.Len(t, client.calls, 1)
	require.Len(t, client.calls[0], 1)
	assert.Equal(t, llm.RoleUser, client.calls[0][0].Role)

	// The tool schemas were attached to the request.
	require.Len(t, client.toolDefs[0], 4)
	assert.Equal(t, "search_hotels", client.toolDefs[0][0].Function.Name)
}

func TestProcess_ToolRoundAndSynthesis(t *testing.T) {
	client := &mockClient{
		responses: []*llm.GenerationResult{
			{
				ToolCalls: []*tools.ToolCall{
					toolCall("call_1", "search_hotels", `{"location": "tokyo", "max_price": 300}`),
				},
				Usage: api.Usage{PromptTokens: 50, TotalTokens: 60},
			},
			{
				Content: "The Shibuya Excel Hotel Tokyu fits your budget.",
				Usage:   api.Usage{PromptTokens: 90, TotalTokens: 100},
			},
		},
	}
	processor := newProcessor(client)

	result, err := processor.Process(context.Background(), "What hotels are available in Tokyo under $300 per night?")
	require.NoError(t, err)

	require.Len(t, result.ToolResults, 1)
	assert.Equal(t, "search_hotels", result.ToolResults[0].Tool)
	assert.Equal(t, "call_1", result.ToolResults[0].CallID)

	var res struct {
		TotalAvailable int `json:"total_available"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.ToolResults[0].Result), &res))
	assert.Equal(t, 1, res.TotalAvailable)

	assert.Equal(t, "The Shibuya Excel Hotel Tokyu fits your budget.", result.FinalText)
	assert.Equal(t, 160, result.Usage.TotalTokens)

	// The synthesis turn saw the full augmented conversation:
	// user, assistant (tool calls), tool result keyed by the call id.
	require.Len(t, client.calls, 2)
	synthesis := client.calls[1]
	require.Len(t, synthesis, 3)
	assert.Equal(t, llm.RoleUser, synthesis[0].Role)
	assert.Equal(t, llm.RoleAssistant, synthesis[1].Role)
	require.Len(t, synthesis[1].ToolCalls, 1)
	assert.Equal(t, llm.RoleTool, synthesis[2].Role)
	assert.Equal(t, "call_1", synthesis[2].ToolCallID)
	assert.Equal(t, result.ToolResults[0].Result, synthesis[2].Content)
}

func TestProcess_MultipleToolCallsInModelOrder(t *testing.T) {
	client := &mockClient{
		responses: []*llm.GenerationResult{
			{
				ToolCalls: []*tools.ToolCall{
					toolCall("call_1", "get_hotel_details", `{"location": "london", "hotel_name": "The Savoy"}`),
					toolCall("call_2", "calculate_booking_cost", `{"price_per_night": 590, "nights": 5}`),
				},
			},
			{Content: "Five nights at The Savoy come to $3304."},
		},
	}
	processor := newProcessor(client)

	result, err := processor.Process(context.Background(), "Show me details for The Savoy hotel in London and calculate the cost for 5 nights")
	require.NoError(t, err)

	require.Len(t, result.ToolResults, 2)
	assert.Equal(t, "get_hotel_details", result.ToolResults[0].Tool)
	assert.Equal(t, "calculate_booking_cost", result.ToolResults[1].Tool)

	text := result.Text()
	assert.Contains(t, text, "Tool: get_hotel_details")
	assert.Contains(t, text, "Tool: calculate_booking_cost")
	assert.Contains(t, text, "AI Response: Five nights at The Savoy come to $3304.")
	// Tool results precede the model's answer.
	assert.Less(t,
		strings.Index(text, "Tool: get_hotel_details"),
		strings.Index(text, "AI Response:"))
}

func TestProcess_UnknownToolSkippedSilently(t *testing.T) {
	client := &mockClient{
		responses: []*llm.GenerationResult{
			{
				ToolCalls: []*tools.ToolCall{
					toolCall("call_1", "book_flight", `{"destination": "tokyo"}`),
					toolCall("call_2", "get_available_locations", `{}`),
				},
			},
			{Content: "We cover five cities."},
		},
	}
	processor := newProcessor(client)

	result, err := processor.Process(context.Background(), "Book me a flight and list your locations")
	require.NoError(t, err)

	// Only the known tool ran; the unknown one left no trace in the
	// conversation either.
	require.Len(t, result.ToolResults, 1)
	assert.Equal(t, "get_available_locations", result.ToolResults[0].Tool)

	synthesis := client.calls[1]
	require.Len(t, synthesis, 3) // user, assistant, one tool turn
	assert.Equal(t, "call_2", synthesis[2].ToolCallID)
}

func TestProcess_ToolNameLowercased(t *testing.T) {
	client := &mockClient{
		responses: []*llm.GenerationResult{
			{ToolCalls: []*tools.ToolCall{toolCall("call_1", "Get_Available_Locations", `{}`)}},
			{Content: "Done."},
		},
	}
	processor := newProcessor(client)

	result, err := processor.Process(context.Background(), "locations?")
	require.NoError(t, err)
	require.Len(t, result.ToolResults, 1)
	assert.Equal(t, "get_available_locations", result.ToolResults[0].Tool)
}

func TestProcess_ToolExecutionErrorFedBack(t *testing.T) {
	client := &mockClient{
		responses: []*llm.GenerationResult{
			{ToolCalls: []*tools.ToolCall{toolCall("call_1", "search_hotels", `{"location": `)}},
			{Content: "Sorry, something went wrong with that search."},
		},
	}
	processor := newProcessor(client)

	result, err := processor.Process(context.Background(), "hotels in tokyo")
	require.NoError(t, err)

	require.Len(t, result.ToolResults, 1)
	assert.Contains(t, result.ToolResults[0].Result, "Error executing tool search_hotels")

	// The error string is what the model received for the synthesis turn.
	synthesis := client.calls[1]
	assert.Contains(t, synthesis[2].Content, "Error executing tool search_hotels")
}

func TestProcess_RemoteFailure(t *testing.T) {
	client := &mockClient{errs: []error{errors.New("status 500")}}
	processor := newProcessor(client)

	_, err := processor.Process(context.Background(), "hotels in tokyo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM generation failed")

	text := newProcessor(&mockClient{errs: []error{errors.New("status 500")}}).
		ProcessText(context.Background(), "hotels in tokyo")
	assert.Contains(t, text, "Error processing query")
}

func TestProcess_SynthesisFailure(t *testing.T) {
	client := &mockClient{
		responses: []*llm.GenerationResult{
			{ToolCalls: []*tools.ToolCall{toolCall("call_1", "get_available_locations", `{}`)}},
		},
		errs: []error{nil, errors.New("timeout")},
	}
	processor := newProcessor(client)

	_, err := processor.Process(context.Background(), "locations?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM synthesis failed")
}
