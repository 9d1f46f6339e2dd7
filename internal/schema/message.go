// Package schema contains the core contracts shared across roomie packages:
// the Gemini wire types, the tool contract, and the model provider interface.
// Concrete implementations live in their respective packages; this package is
// the single canonical source of truth for every shared type.
package schema

// Roles used in conversation contents. Function responses travel back to the
// model inside a user-role content, matching the generateContent API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// FunctionCall is the model's request to invoke a local tool.
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// FunctionResponse carries a tool's result back into the conversation.
// Response is a single-key map {"result": <string>} so every tool outcome,
// including error text, is representable as one response value.
type FunctionResponse struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

// Part is one piece of a content: exactly one of the fields is set.
type Part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

// Content is one entry in the conversation transcript.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// NewUserContent builds a user-role content with a single text part.
func NewUserContent(text string) Content {
	return Content{Role: RoleUser, Parts: []Part{{Text: text}}}
}

// NewModelText builds a model-role content with a single text part.
func NewModelText(text string) Content {
	return Content{Role: RoleModel, Parts: []Part{{Text: text}}}
}

// NewModelFunctionCall builds the model-role content recording a tool request.
func NewModelFunctionCall(fc FunctionCall) Content {
	return Content{Role: RoleModel, Parts: []Part{{FunctionCall: &fc}}}
}

// NewFunctionResponse builds the user-role content that reports a tool result.
func NewFunctionResponse(name, result string) Content {
	return Content{Role: RoleUser, Parts: []Part{{
		FunctionResponse: &FunctionResponse{
			Name:     name,
			Response: map[string]any{"result": result},
		},
	}}}
}
