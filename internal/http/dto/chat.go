package dto

// ChatMessage mirrors the widget's {role, content} turns.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Message string `json:"message"`
}
