// Package api defines the public request/response types of the concierge
// HTTP surface, plus the token accounting shared with the llm package.
package api

// Usage holds token statistics for one or more LLM calls.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another Usage into this one. Used to sum token counts
// across the tool round and the synthesis turn of a single query.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// QueryRequest is the body of POST /api/v1/query.
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// ToolResult reports one executed tool call back to the API caller.
type ToolResult struct {
	Tool   string `json:"tool"`
	CallID string `json:"call_id"`
	Result string `json:"result"`
}

// QueryResponse is the body returned for a processed query.
type QueryResponse struct {
	Answer      string       `json:"answer"`
	ToolResults []ToolResult `json:"tool_results,omitempty"`
	ModelUsed   string       `json:"model_used"`
	Usage       Usage        `json:"usage"`
	LatencyMS   int64        `json:"latency_ms"`
	CacheStatus string       `json:"cache_status"`
}
