package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spicekitchen/backend/internal/chat"
)

func chatReply(t *testing.T, env *testEnv, body any) (int, string) {
	rec, c := env.doJSONRequest(http.MethodPost, "/api/chatbot", body)
	require.NoError(t, env.Chat.Chat(c))

	var resp struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp.Reply
}

func TestChatMenuReplyDuringOpenHours(t *testing.T) {
	env := newTestEnv(t)

	code, reply := chatReply(t, env, map[string]string{"message": "What's on today's menu?"})
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, reply, "Thali, Sweets, Achar")
}

func TestChatClosedReplyWinsOverContent(t *testing.T) {
	env := newTestEnv(t)
	env.Chat.Now = func() time.Time { return time.Date(2025, 3, 14, 23, 0, 0, 0, time.Local) }

	code, reply := chatReply(t, env, map[string]string{"message": "What's on today's menu?"})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, chat.ClosedReply, reply)
}

func TestChatMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doRawRequest(http.MethodPost, "/api/chatbot", `{"message":`)
	require.NoError(t, env.Chat.Chat(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, chat.ErrorReply, resp.Reply)
}
