package openai

import "encoding/json"

// Message is a single chat message sent to the API
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the chat-completions request body
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// chatResponse is the subset of the response envelope the client reads
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// contentPart is one element of an array-valued message content
type contentPart struct {
	Text json.RawMessage `json:"text"`
}
