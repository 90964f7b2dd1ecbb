package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindsoul/server/chat"
	"mindsoul/server/model"
)

// stubCollaborator replays a canned reply or error and records the session
// it was handed.
type stubCollaborator struct {
	reply    string
	err      error
	sessions [][]chat.ModelTurn
}

func (s *stubCollaborator) Generate(_ context.Context, session []chat.ModelTurn) (string, error) {
	s.sessions = append(s.sessions, session)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func postChat(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestHandleChatPlanResponse(t *testing.T) {
	stub := &stubCollaborator{
		reply: `{"planName":"Your 10-Day Plan for Stress","startDate":"1999-01-01","days":[{"day":1,"tasks":[{"id":"d1_t1","title":"Breathe","completed":false}]}]}`,
	}

	rr := postChat(t, HandleChat(stub), `{"message":"yes, make the plan","history":[]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var plan model.Plan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
	assert.Equal(t, "Your 10-Day Plan for Stress", plan.PlanName)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), plan.StartDate, "model-produced date must be overwritten")
	require.Len(t, plan.Days, 1)
}

func TestHandleChatChatResponse(t *testing.T) {
	stub := &stubCollaborator{reply: "Hello, tell me more."}

	rr := postChat(t, HandleChat(stub), `{"message":"hi","history":[]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var reply model.ChatReply
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reply))
	assert.Equal(t, "Hello, tell me more.", reply.ChatMessage)
}

func TestHandleChatDerivesMessageFromHistory(t *testing.T) {
	stub := &stubCollaborator{reply: "I hear you."}

	rr := postChat(t, HandleChat(stub), `{"history":[{"sender":"user","text":"I smoke too much"}]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, stub.sessions, 1)
	session := stub.sessions[0]

	// persona + opening + in-flight message; the lone history turn was the
	// in-flight message, so the history segment is empty.
	require.Len(t, session, 3)
	assert.Equal(t, chat.PersonaPrompt, session[0].Text)
	assert.Equal(t, chat.OpeningLine, session[1].Text)
	assert.Equal(t, "I smoke too much", session[2].Text)
	assert.Equal(t, chat.RoleUser, session[2].Role)
}

func TestHandleChatMissingMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body fields", body: `{"history":[]}`},
		{name: "empty message and no history", body: `{"message":""}`},
		{name: "invalid JSON body", body: `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCollaborator{reply: "unused"}
			rr := postChat(t, HandleChat(stub), tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var reply model.ErrorReply
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reply))
			assert.NotEmpty(t, reply.Error)
			assert.Empty(t, stub.sessions, "collaborator must not be called")
		})
	}
}

func TestHandleChatCollaboratorFailure(t *testing.T) {
	stub := &stubCollaborator{err: errors.New("quota exceeded")}
	h := HandleChat(stub)

	rr := postChat(t, h, `{"message":"hi","history":[]}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var reply model.ErrorReply
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reply))
	assert.Equal(t, "Failed to get response from AI", reply.Error)
	assert.NotContains(t, rr.Body.String(), "quota", "underlying error stays server-side")

	// The handler keeps serving after a failure.
	stub.err = nil
	stub.reply = "back again"
	rr = postChat(t, h, `{"message":"hi","history":[]}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleChatHistoryReachesCollaborator(t *testing.T) {
	stub := &stubCollaborator{reply: "ok"}

	body := `{"message":"and now?","history":[{"sender":"user","text":"hi"},{"sender":"bot","text":"hello"},{"sender":"user","text":"and now?"}]}`
	rr := postChat(t, HandleChat(stub), body)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, stub.sessions, 1)
	session := stub.sessions[0]

	// persona, opening, two history turns (last popped), in-flight message.
	require.Len(t, session, 5)
	assert.Equal(t, chat.ModelTurn{Role: chat.RoleUser, Text: "hi"}, session[2])
	assert.Equal(t, chat.ModelTurn{Role: chat.RoleModel, Text: "hello"}, session[3])
	assert.Equal(t, chat.ModelTurn{Role: chat.RoleUser, Text: "and now?"}, session[4])
}
