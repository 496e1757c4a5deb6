package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatUsersAndMessages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/chat/users":
			_, _ = w.Write([]byte(`[{"id":1,"name":"John Smith","type":"lawyer","lastMessage":"Thanks"}]`))
		case "/api/chat/messages/1":
			_, _ = w.Write([]byte(`[
				{"id":2,"senderId":"current","message":"later","timestamp":"2024-01-10T10:05:00Z"},
				{"id":1,"senderId":1,"senderName":"John Smith","message":"first","timestamp":"2024-01-10T10:00:00Z"}
			]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}, WithTokenSource(staticToken{token: "t"}))

	convs, err := c.ChatUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Conversation{{
		ID: "1", CounterpartyID: "1", CounterpartyName: "John Smith", LastMessagePreview: "Thanks",
	}}, convs)

	msgs, err := c.ChatMessages(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "1", msgs[0].SenderID)
	assert.Equal(t, "current", msgs[1].SenderID)
	assert.Equal(t, models.MessageConfirmed, msgs[1].Status)
	assert.True(t, msgs[0].Timestamp.Equal(time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)))
}

func TestSendChatMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat/send", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"receiverId": "7", "message": "hello"}, body)
		_, _ = w.Write([]byte(`{"id": 99}`))
	}, WithTokenSource(staticToken{token: "t"}))

	id, err := c.SendChatMessage(context.Background(), "7", "hello")
	require.NoError(t, err)
	assert.Equal(t, models.ID("99"), id)
}

func TestLawyerChats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/lawyer/chats":
			_, _ = w.Write([]byte(`[{"id":1,"clientName":"Jane Doe","lastMessage":"Please review","unread":2}]`))
		case r.URL.Path == "/api/lawyer/chats/1/messages" && r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[
				{"id":1,"sender":"client","message":"Hello","time":"2024-01-10 10:00"},
				{"id":2,"sender":"lawyer","message":"Sure","time":"2024-01-10 10:05"}
			]`))
		case r.URL.Path == "/api/lawyer/chats/1/messages" && r.Method == http.MethodPost:
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "On it", body["message"])
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}, WithTokenSource(staticToken{token: "t"}))

	chats, err := c.LawyerChats(context.Background())
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "Jane Doe", chats[0].CounterpartyName)
	assert.Equal(t, 2, chats[0].UnreadCount)
	assert.Equal(t, models.ID("1"), chats[0].CounterpartyID)

	msgs, err := c.LawyerChatMessages(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "1", msgs[0].SenderID)
	assert.True(t, msgs[1].Mine())
	assert.Equal(t, 5*time.Minute, msgs[1].Timestamp.Sub(msgs[0].Timestamp))

	_, err = c.SendLawyerMessage(context.Background(), "1", "On it")
	require.NoError(t, err)
}

func TestLawyerProfileRoundTrip(t *testing.T) {
	var stored models.LawyerProfile
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&stored))
		case http.MethodGet:
			require.NoError(t, json.NewEncoder(w).Encode(stored))
		}
	}, WithTokenSource(staticToken{token: "t"}))

	want := models.LawyerProfile{Name: "John Smith", Specialization: "Criminal Law", Location: "New York, NY", Bio: "20 years"}
	require.NoError(t, c.UpdateLawyerProfile(context.Background(), want))

	got, err := c.LawyerProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseTimestamp(t *testing.T) {
	assert.True(t, parseTimestamp("garbage").IsZero())
	assert.Equal(t, 2024, parseTimestamp("2024-01-09").Year())
}
