package assistant

// ChatTurn is one prior exchange in a conversation, replayed by the client
// so the assistant stays stateless server-side
type ChatTurn struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required,max=2000"`
}

// ChatRequest is the payload for POST /assistant/chat
type ChatRequest struct {
	Message        string     `json:"message" binding:"required,min=1,max=2000"`
	ConversationID string     `json:"conversationId" binding:"omitempty,uuid"`
	History        []ChatTurn `json:"history" binding:"omitempty,max=20,dive"`
}

// ChatResponse carries the assistant's reply. ConversationID is minted on
// the first message so clients can thread follow-ups.
type ChatResponse struct {
	ConversationID string `json:"conversationId"`
	Reply          string `json:"reply"`
}
