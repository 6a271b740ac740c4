// Package tools defines the function-calling surface of the hotel concierge.
// These types are a provider-agnostic representation of a tool: the same
// definitions are translated into the specific format each LLM API expects
// (OpenAI, Gemini), and the same ToolCall shape is produced back from each.
package tools

// ToolTypeFunction is the standard type for function-based tools.
const ToolTypeFunction = "function"

// Tool is the schema for a function that can be described to an LLM.
// This is what the model sees when deciding whether to call a tool.
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function holds a tool's name, description, and parameter schema.
// The description matters: the model uses it to decide when the tool applies.
type Function struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  JSONSchema `json:"parameters"`
}

// JSONSchema is a structured subset of JSON Schema sufficient for declaring
// tool parameters. Keeping this typed instead of map[string]interface{}
// catches schema mistakes at compile time.
type JSONSchema struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

// ToolCall is a request from the model to execute one tool. The ID ties the
// eventual tool result back to this request in the conversation history.
type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction names the function the model wants and carries its
// arguments as a JSON string to be unmarshaled by the tool itself.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// NewFunctionTool builds a Tool with the correct "function" type set.
func NewFunctionTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}
