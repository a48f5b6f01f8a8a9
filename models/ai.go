package models

// AIRequest is a message sent to the AI coach.
type AIRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text" binding:"required"`
}

// AIResponse is the AI coach reply.
type AIResponse struct {
	Reply string `json:"reply"`
}

// AIContext is the rolling conversation state kept per user in Redis.
type AIContext struct {
	Goal    string   `json:"goal,omitempty"`
	History []string `json:"history,omitempty"`
}
