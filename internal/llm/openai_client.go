package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dileep-u-k/hotel-concierge/internal/api"
	"github.com/dileep-u-k/hotel-concierge/internal/tools"
)

const openAIAPIURL = "https://api.openai.com/v1/chat/completions"

// openAIRequest is the top-level structure for an OpenAI chat-completions call.
type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Tools       []openAITool    `json:"tools,omitempty"`
	ToolChoice  string          `json:"tool_choice,omitempty"`
	Stream      bool            `json:"stream,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature *float32        `json:"temperature,omitempty"`
	TopP        *float32        `json:"top_p,omitempty"`
}

type openAIMessage struct {
	Role       string           `json:"role"`
	Content    string           `json:"content"`
	ToolCalls  []tools.ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type openAITool struct {
	Type     string         `json:"type"`
	Function tools.Function `json:"function"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Usage api.Usage `json:"usage"`
}

type openAIStreamChunk struct {
	Choices []struct {
		Delta struct {
			Content   string           `json:"content"`
			ToolCalls []tools.ToolCall `json:"tool_calls"`
		} `json:"delta"`
	} `json:"choices"`
}

// OpenAIClient talks to the OpenAI chat-completions API over plain HTTP.
type OpenAIClient struct {
	apiKey     string
	httpClient *http.Client
}

var _ LLMClient = (*OpenAIClient)(nil)

// NewOpenAIClient creates a configured client. The model is chosen per
// request via GenerationConfig, not on the client.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key cannot be empty")
	}
	return &OpenAIClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// Generate performs a standard, blocking request to the OpenAI API.
func (c *OpenAIClient) Generate(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	payload, err := c.buildRequestPayload(messages, config, availableTools, false)
	if err != nil {
		return nil, fmt.Errorf("failed to build openai request payload: %w", err)
	}

	respBody, err := c.doRequest(ctx, payload)
	if err != nil {
		return nil, err
	}

	return parseOpenAIResponse(respBody)
}

// GenerateStream performs a streaming request to the OpenAI API.
func (c *OpenAIClient) GenerateStream(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (<-chan *StreamingResult, error) {
	payload, err := c.buildRequestPayload(messages, config, availableTools, true)
	if err != nil {
		return nil, fmt.Errorf("failed to build openai stream payload: %w", err)
	}

	respBody, err := c.doRequestStream(ctx, payload)
	if err != nil {
		return nil, err
	}

	outChan := make(chan *StreamingResult)
	go c.processStream(respBody, outChan)
	return outChan, nil
}

func (c *OpenAIClient) buildRequestPayload(messages []Message, config *GenerationConfig, availableTools []tools.Tool, stream bool) (*bytes.Buffer, error) {
	openAITools := toOpenAITools(availableTools)

	req := openAIRequest{
		Model:    config.Model,
		Messages: toOpenAIMessages(messages),
		Tools:    openAITools,
		Stream:   stream,
	}

	if config.MaxTokens > 0 {
		req.MaxTokens = config.MaxTokens
	}
	if config.Temperature != nil {
		req.Temperature = config.Temperature
	}
	if config.TopP != nil {
		req.TopP = config.TopP
	}
	if len(openAITools) > 0 {
		req.ToolChoice = "auto"
	}

	payloadBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}
	return bytes.NewBuffer(payloadBytes), nil
}

// doRequest performs the HTTP call with retries for non-streaming requests.
// Client errors (4xx) are not retried.
func (c *OpenAIClient) doRequest(ctx context.Context, payload *bytes.Buffer) ([]byte, error) {
	var lastErr error
	delay := initialRetryDelay

	for i := 0; i < maxRetries; i++ {
		// bytes.Reader so the request body can be re-read on retry.
		req, err := c.createRequest(ctx, bytes.NewReader(payload.Bytes()))
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", i+1, maxRetries, err)
			time.Sleep(delay)
			delay *= 2
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read response body: %w", readErr)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}

		lastErr = fmt.Errorf("openai API error (attempt %d/%d): status %d, body: %s", i+1, maxRetries, resp.StatusCode, string(body))

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, lastErr
		}

		time.Sleep(delay)
		delay *= 2
	}
	return nil, lastErr
}

func (c *OpenAIClient) doRequestStream(ctx context.Context, payload *bytes.Buffer) (io.ReadCloser, error) {
	req, err := c.createRequest(ctx, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to start stream request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("openai API stream error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return resp.Body, nil
}

func (c *OpenAIClient) createRequest(ctx context.Context, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", openAIAPIURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

// processStream reads the SSE stream and forwards chunks to outChan.
func (c *OpenAIClient) processStream(body io.ReadCloser, outChan chan<- *StreamingResult) {
	defer body.Close()
	defer close(outChan)

	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}

		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			return
		}

		var chunk openAIStreamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			outChan <- &StreamingResult{Err: fmt.Errorf("error unmarshalling stream chunk: %w", err)}
			return
		}

		if len(chunk.Choices) > 0 {
			delta := chunk.Choices[0].Delta
			result := &StreamingResult{ContentDelta: delta.Content}

			// Tool calls are streamed progressively.
			if len(delta.ToolCalls) > 0 {
				tcChunk := delta.ToolCalls[0]
				result.ToolCallChunk = &tools.ToolCall{
					ID:   tcChunk.ID,
					Type: tools.ToolTypeFunction,
					Function: tools.ToolCallFunction{
						Name:      tcChunk.Function.Name,
						Arguments: tcChunk.Function.Arguments,
					},
				}
			}
			outChan <- result
		}
	}

	if err := scanner.Err(); err != nil {
		outChan <- &StreamingResult{Err: fmt.Errorf("error reading stream: %w", err)}
	}
}

func toOpenAIMessages(messages []Message) []openAIMessage {
	openAIMsgs := make([]openAIMessage, 0, len(messages))
	for _, msg := range messages {
		m := openAIMessage{Role: string(msg.Role)}

		switch msg.Role {
		case RoleTool:
			m.ToolCallID = msg.ToolCallID
			m.Content = msg.Content
		case RoleAssistant:
			m.Content = msg.Content
			if len(msg.ToolCalls) > 0 {
				m.ToolCalls = make([]tools.ToolCall, len(msg.ToolCalls))
				for i, tc := range msg.ToolCalls {
					m.ToolCalls[i] = *tc
				}
			}
		default: // RoleUser and RoleSystem
			m.Content = msg.Content
		}
		openAIMsgs = append(openAIMsgs, m)
	}
	return openAIMsgs
}

func toOpenAITools(availableTools []tools.Tool) []openAITool {
	if len(availableTools) == 0 {
		return nil
	}
	openAITools := make([]openAITool, 0, len(availableTools))
	for _, tool := range availableTools {
		openAITools = append(openAITools, openAITool{
			Type:     tools.ToolTypeFunction,
			Function: tool.Function,
		})
	}
	return openAITools
}

func parseOpenAIResponse(body []byte) (*GenerationResult, error) {
	var openAIResp openAIResponse
	if err := json.Unmarshal(body, &openAIResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal openai response: %w", err)
	}
	if len(openAIResp.Choices) == 0 {
		return nil, errors.New("no choices returned from OpenAI")
	}

	choice := openAIResp.Choices[0]
	result := &GenerationResult{
		Content: choice.Message.Content,
		Usage:   openAIResp.Usage,
	}

	if len(choice.Message.ToolCalls) > 0 {
		result.ToolCalls = make([]*tools.ToolCall, 0, len(choice.Message.ToolCalls))
		for _, tc := range choice.Message.ToolCalls {
			result.ToolCalls = append(result.ToolCalls, &tools.ToolCall{
				ID:   tc.ID,
				Type: tools.ToolTypeFunction,
				Function: tools.ToolCallFunction{
					Name:      tc.Function.Name,
					Arguments: tc.Function.Arguments,
				},
			})
		}
	}

	return result, nil
}
