package tools

import "fmt"

// ToolManager holds the registry of available tools. Registration order is
// preserved so the schema list sent to the model is identical across runs.
type ToolManager struct {
	names []string
	tools map[string]ToolExecutor
}

func NewToolManager() *ToolManager {
	return &ToolManager{
		tools: make(map[string]ToolExecutor),
	}
}

// Register adds a tool to the registry under its declared function name.
func (tm *ToolManager) Register(tool ToolExecutor) {
	name := tool.Definition().Function.Name
	if _, exists := tm.tools[name]; !exists {
		tm.names = append(tm.names, name)
	}
	tm.tools[name] = tool
}

// GetDefinitions returns all registered tool definitions in registration order.
func (tm *ToolManager) GetDefinitions() []Tool {
	defs := make([]Tool, 0, len(tm.names))
	for _, name := range tm.names {
		defs = append(defs, tm.tools[name].Definition())
	}
	return defs
}

// Lookup returns the tool registered under name, if any.
func (tm *ToolManager) Lookup(name string) (ToolExecutor, bool) {
	tool, ok := tm.tools[name]
	return tool, ok
}

// Execute runs a tool by name with the given arguments.
func (tm *ToolManager) Execute(name, arguments string) (string, error) {
	tool, ok := tm.tools[name]
	if !ok {
		return "", fmt.Errorf("tool '%s' not found", name)
	}
	return tool.Execute(arguments)
}

// ToolCount returns the number of registered tools.
func (tm *ToolManager) ToolCount() int {
	return len(tm.tools)
}
