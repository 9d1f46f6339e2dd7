package schema

import "context"

// GenerateRequest is one model invocation: the full transcript so far, the
// current system instruction, and the complete tool catalog. The system
// instruction is rebuilt by the caller on every turn; tools never vary.
type GenerateRequest struct {
	SystemInstruction string
	Contents          []Content
	Tools             []FunctionDeclaration
}

// Candidate is one response alternative from the model.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// GenerateResponse is the normalised model response: zero or more candidates.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// FirstPart returns the first content part of c, or false when c has none.
func (c Candidate) FirstPart() (Part, bool) {
	if len(c.Content.Parts) == 0 {
		return Part{}, false
	}
	return c.Content.Parts[0], true
}

// FirstText returns the first non-empty text part of c, or "".
func (c Candidate) FirstText() string {
	for _, p := range c.Content.Parts {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// ModelProvider is the interface the conversational model backend must satisfy.
type ModelProvider interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}
