package tools

// ToolExecutor is the contract every concierge tool implements.
//
// Tools are pure with respect to process state: they read the injected
// catalog and their arguments, nothing else, so invoking one twice with the
// same arguments yields a byte-identical result.
type ToolExecutor interface {
	// Definition returns the tool's schema as presented to the LLM.
	Definition() Tool

	// Execute runs the tool. Arguments arrive as the JSON string the model
	// generated against the tool's schema. Domain misses (unknown location,
	// unknown hotel) come back as a structured {"error": ...} payload in the
	// result string, not as a Go error, so the model can explain the miss to
	// the user. The error return is reserved for malformed input.
	Execute(arguments string) (string, error)
}
