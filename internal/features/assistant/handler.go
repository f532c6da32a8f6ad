package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/pkg/llm"
	"github.com/hamzarauf/linkora/internal/pkg/logger"
	"github.com/hamzarauf/linkora/internal/pkg/response"
)

// Handler serves the networking assistant chat endpoint
type Handler struct {
	client  llm.Client
	timeout time.Duration
	log     *logger.Logger
}

// NewHandler creates the handler over an LLM client
func NewHandler(client llm.Client, timeout time.Duration, log *logger.Logger) *Handler {
	return &Handler{client: client, timeout: timeout, log: log}
}

// Chat godoc
// @Summary Chat with the networking assistant
// @Description Sends a message to the AI assistant, grounded in the requester's profile
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatRequest true "Chat message"
// @Success 200 {object} response.SuccessResponse{data=ChatResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /assistant/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	user, ok := auth.RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "message is required", "INVALID_JSON")
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	reply, err := h.client.Generate(ctx, buildChatPrompt(user, &req))
	if err != nil {
		h.log.Warn("assistant: generation failed for user %s: %v", user.ID.Hex(), err)
		response.ServiceUnavailable(c, "Assistant is temporarily unavailable", "ASSISTANT_UNAVAILABLE")
		return
	}

	response.Success(c, ChatResponse{
		ConversationID: conversationID,
		Reply:          reply,
	})
}

func buildChatPrompt(user *auth.User, req *ChatRequest) string {
	var b strings.Builder

	b.WriteString("You are a professional networking assistant for the Linkora platform. ")
	b.WriteString("Give practical, concise advice about networking, career growth and outreach. ")
	b.WriteString("Stay on topic and do not fabricate information about other users.\n\n")

	b.WriteString("About the user:\n")
	if user.Headline != "" {
		fmt.Fprintf(&b, "- Headline: %s\n", user.Headline)
	}
	if user.Industry != "" {
		fmt.Fprintf(&b, "- Industry: %s\n", user.Industry)
	}
	if user.Location != "" {
		fmt.Fprintf(&b, "- Location: %s\n", user.Location)
	}
	if len(user.Goals) > 0 {
		fmt.Fprintf(&b, "- Goals: %s\n", strings.Join(user.Goals, ", "))
	}

	if len(req.History) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, turn := range req.History {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
	}

	fmt.Fprintf(&b, "\nUser message: %s\n", req.Message)
	return b.String()
}
