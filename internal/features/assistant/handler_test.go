package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/pkg/logger"
)

type fakeLLM struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func (f *fakeLLM) Close() error { return nil }

func setupChatRouter(t *testing.T, client *fakeLLM) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(client, time.Second, logger.New(logger.ERROR))

	user := &auth.User{
		ID:       primitive.NewObjectID(),
		Name:     "Test User",
		Email:    "user@example.com",
		Industry: "Technology",
		Goals:    []string{"mentorship"},
	}

	r := gin.New()
	r.POST("/assistant/chat", func(c *gin.Context) {
		c.Set("user", user)
	}, handler.Chat)
	return r
}

func TestChatReturnsReplyAndConversationID(t *testing.T) {
	client := &fakeLLM{reply: "Try reaching out with a short intro."}
	r := setupChatRouter(t, client)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/assistant/chat", strings.NewReader(`{"message":"How do I start?"}`)))

	require.Equal(t, 200, w.Code)
	var body struct {
		Status string       `json:"status"`
		Data   ChatResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Try reaching out with a short intro.", body.Data.Reply)
	require.NotEmpty(t, body.Data.ConversationID)

	// The prompt carries profile context and the user message.
	require.Contains(t, client.prompt, "Technology")
	require.Contains(t, client.prompt, "How do I start?")
}

func TestChatKeepsProvidedConversationID(t *testing.T) {
	r := setupChatRouter(t, &fakeLLM{reply: "ok"})

	body := `{"message":"hi","conversationId":"3f6f48a2-9a3e-4a9f-a1f2-2b8f0a4c9d11"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/assistant/chat", strings.NewReader(body)))

	require.Equal(t, 200, w.Code)
	var resp struct {
		Data ChatResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "3f6f48a2-9a3e-4a9f-a1f2-2b8f0a4c9d11", resp.Data.ConversationID)
}

func TestChatIncludesHistoryInPrompt(t *testing.T) {
	client := &fakeLLM{reply: "ok"}
	r := setupChatRouter(t, client)

	body := `{"message":"what next?","history":[{"role":"user","content":"hello"},{"role":"assistant","content":"hi there"}]}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/assistant/chat", strings.NewReader(body)))

	require.Equal(t, 200, w.Code)
	require.Contains(t, client.prompt, "user: hello")
	require.Contains(t, client.prompt, "assistant: hi there")
	require.Contains(t, client.prompt, "what next?")
}

func TestChatRequiresMessage(t *testing.T) {
	r := setupChatRouter(t, &fakeLLM{reply: "ok"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/assistant/chat", strings.NewReader(`{}`)))

	require.Equal(t, 400, w.Code)
}

func TestChatLLMFailureReturns503(t *testing.T) {
	r := setupChatRouter(t, &fakeLLM{err: errors.New("model overloaded")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/assistant/chat", strings.NewReader(`{"message":"hi"}`)))

	require.Equal(t, 503, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ASSISTANT_UNAVAILABLE", body["code"])
}
