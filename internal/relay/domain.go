package relay

// ChatMessage is a single message sent to the Cohere chat API.
type ChatMessage struct {
	// Role is who sent the message. The relay only ever sends "user".
	Role string `json:"role"`
	// Content is the text of the message.
	Content string `json:"content"`
}

// ChatRequest is the body of a POST to the Cohere v2 chat endpoint.
type ChatRequest struct {
	Model     string         `json:"model"`
	Messages  []*ChatMessage `json:"messages"`
	MaxTokens int            `json:"max_tokens"`
}

// NewChatRequest builds a one-message chat request for the given prompt.
func NewChatRequest(model string, maxTokens int, prompt string) *ChatRequest {
	return &ChatRequest{
		Model: model,
		Messages: []*ChatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: maxTokens,
	}
}

// Payload is a decoded Cohere response body. Its shape depends on the API version
// that answered, so it is kept as a generic JSON object.
type Payload map[string]any
